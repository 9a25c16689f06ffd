package cli

import (
	"os"

	"github.com/toyz/routedoc/internal/errors"
)

// Cleaner removes generated output
type Cleaner struct{}

// NewCleaner creates a new cleaner
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Clean removes the properties file at path. A missing file is not an
// error; the result reports whether anything was removed.
func (c *Cleaner) Clean(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.WrapFileSystemError("check", path, err)
	}
	if info.IsDir() {
		return false, errors.FileSystemError("remove", path, "is a directory")
	}

	if err := os.Remove(path); err != nil {
		return false, errors.WrapFileSystemError("remove", path, err)
	}
	return true, nil
}
