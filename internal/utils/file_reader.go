package utils

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
)

// FileReader reads source and model files, caching both raw content and parsed Go ASTs
type FileReader struct {
	fileSet      *token.FileSet
	astCache     *Cache[string, *ast.File]
	contentCache *Cache[string, []byte]
}

// NewFileReader creates a new FileReader instance with caching
func NewFileReader() *FileReader {
	return &FileReader{
		fileSet:      token.NewFileSet(),
		astCache:     NewCache[string, *ast.File](),
		contentCache: NewCache[string, []byte](),
	}
}

// ParseGoFile parses a Go source file, comments included, and returns the AST with caching
func (fr *FileReader) ParseGoFile(filePath string) (*ast.File, error) {
	cleanPath, err := fr.cleanExistingPath(filePath)
	if err != nil {
		return nil, err
	}

	if cached, exists := fr.astCache.GetFresh(cleanPath, cleanPath); exists {
		return cached, nil
	}

	file, err := parser.ParseFile(fr.fileSet, cleanPath, nil, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Go file %s: %w", filepath.Base(cleanPath), err)
	}

	fr.astCache.SetFromFile(cleanPath, file, cleanPath)
	return file, nil
}

// ParseGoSource parses Go source code from a string
func (fr *FileReader) ParseGoSource(filename, source string) (*ast.File, error) {
	file, err := parser.ParseFile(fr.fileSet, filename, source, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Go source: %w", err)
	}
	return file, nil
}

// ReadFile reads a file and returns its contents with caching
func (fr *FileReader) ReadFile(filePath string) ([]byte, error) {
	cleanPath, err := fr.cleanExistingPath(filePath)
	if err != nil {
		return nil, err
	}

	if cached, exists := fr.contentCache.GetFresh(cleanPath, cleanPath); exists {
		return cached, nil
	}

	content, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filepath.Base(cleanPath), err)
	}

	fr.contentCache.SetFromFile(cleanPath, content, cleanPath)
	return content, nil
}

// FileSet returns the token.FileSet used by this reader
func (fr *FileReader) FileSet() *token.FileSet {
	return fr.fileSet
}

// Position resolves a token position against the reader's file set
func (fr *FileReader) Position(pos token.Pos) token.Position {
	return fr.fileSet.Position(pos)
}

// CacheStats returns the number of cached ASTs and raw files
func (fr *FileReader) CacheStats() (astFiles, contentFiles int) {
	return fr.astCache.Size(), fr.contentCache.Size()
}

func (fr *FileReader) cleanExistingPath(filePath string) (string, error) {
	if filePath == "" {
		return "", fmt.Errorf("file path cannot be empty")
	}

	cleanPath := filepath.Clean(filePath)
	if _, err := os.Stat(cleanPath); os.IsNotExist(err) {
		return "", fmt.Errorf("file does not exist: %s", cleanPath)
	}

	return cleanPath, nil
}
