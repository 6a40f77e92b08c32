// Package file provides path lookups, size conversion, disk space queries
// and recursive deletion.
package file

import (
	"os"
	"path/filepath"
	"strings"
)

// UserDir returns the current working directory.
func UserDir() (string, error) {
	return os.Getwd()
}

// UserHomeDir returns the home directory of the current user.
func UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// TempDir returns the directory used for temporary files.
func TempDir() string {
	return os.TempDir()
}

// Root returns the filesystem root that contains path, e.g. "/" on Unix or
// "D:\" for D:\temp\2020\04\abc.jpg on Windows. Relative paths are resolved
// against the working directory first.
func Root(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	for {
		parent := filepath.Dir(abs)
		if parent == abs {
			return abs, nil
		}
		abs = parent
	}
}

// SystemRoot returns the root of the working directory's volume.
func SystemRoot() (string, error) {
	return Root(".")
}

// Ext returns the part of name from its last '.' to the end, dot included.
// The second result is false when name has no dot.
//
// Unlike filepath.Ext the dot may sit in a directory component.
func Ext(name string) (string, bool) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return "", false
	}
	return name[i:], true
}
