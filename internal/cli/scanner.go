package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/toyz/routedoc/internal/errors"
	"github.com/toyz/routedoc/internal/utils"
)

// Inputs are the resolved sources of one run
type Inputs struct {
	ModelFiles  []string
	PackageDirs []string
}

// DirectoryScanner resolves input arguments into model files and Go package directories
type DirectoryScanner struct {
	fileProcessor *utils.FileProcessor
}

// NewDirectoryScanner creates a new directory scanner
func NewDirectoryScanner(fp *utils.FileProcessor) *DirectoryScanner {
	return &DirectoryScanner{
		fileProcessor: fp,
	}
}

// Resolve classifies every input. A trailing /... scans the directory tree
// for Go packages; a plain directory must itself hold Go files.
func (s *DirectoryScanner) Resolve(inputs []string) (Inputs, error) {
	var resolved Inputs
	seen := make(map[string]bool)

	addDir := func(dir string) {
		if !seen[dir] {
			seen[dir] = true
			resolved.PackageDirs = append(resolved.PackageDirs, dir)
		}
	}

	for _, input := range inputs {
		if strings.HasSuffix(input, "/...") || input == "..." {
			baseDir := strings.TrimSuffix(strings.TrimSuffix(input, "..."), "/")
			if baseDir == "" {
				baseDir = "."
			}
			cleanPath, err := filepath.Abs(baseDir)
			if err != nil {
				return Inputs{}, errors.WrapWithOperation("process", fmt.Sprintf("path resolution %s", baseDir), err)
			}
			dirs, err := s.fileProcessor.ScanDirectoriesWithGoFiles([]string{cleanPath})
			if err != nil {
				return Inputs{}, errors.WrapFileSystemError("scan", baseDir, err)
			}
			for _, dir := range dirs {
				addDir(dir)
			}
			continue
		}

		cleanPath, err := filepath.Abs(input)
		if err != nil {
			return Inputs{}, errors.WrapWithOperation("process", fmt.Sprintf("path resolution %s", input), err)
		}
		info, err := os.Stat(cleanPath)
		if err != nil {
			return Inputs{}, errors.WrapFileSystemError("access", input, err)
		}

		switch {
		case !info.IsDir() && utils.IsModelFile(cleanPath):
			resolved.ModelFiles = append(resolved.ModelFiles, cleanPath)
		case info.IsDir():
			hasGoFiles, err := s.fileProcessor.HasGoFiles(cleanPath)
			if err != nil {
				return Inputs{}, errors.WrapFileSystemError("read", input, err)
			}
			if !hasGoFiles {
				return Inputs{}, errors.ConfigurationError(input, "directory contains no Go files").
					WithSuggestion(fmt.Sprintf("Use %s/... to scan its subdirectories", strings.TrimSuffix(input, "/")))
			}
			addDir(cleanPath)
		default:
			return Inputs{}, errors.ConfigurationError(input, "unsupported input").
				WithSuggestion("Inputs are .yaml, .yml or .json model files or Go package directories")
		}
	}

	return resolved, nil
}
