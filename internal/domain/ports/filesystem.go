package ports

import (
	"os"
)

// FileSystem abstracts the file operations the application needs
type FileSystem interface {
	Stat(name string) (os.FileInfo, error)
	ReadFile(filename string) ([]byte, error)
	WriteFile(filename string, data []byte, perm os.FileMode) error
}

// RealFileSystem implements FileSystem using actual OS operations
type RealFileSystem struct{}

// NewRealFileSystem creates a new real file system implementation
func NewRealFileSystem() FileSystem {
	return &RealFileSystem{}
}

// Stat returns file information
func (fs *RealFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// ReadFile reads the entire file content
func (fs *RealFileSystem) ReadFile(filename string) ([]byte, error) {
	// #nosec G304 - paths come from the command line of a local CLI tool
	return os.ReadFile(filename)
}

// WriteFile writes data to a file
func (fs *RealFileSystem) WriteFile(filename string, data []byte, perm os.FileMode) error {
	return os.WriteFile(filename, data, perm)
}
