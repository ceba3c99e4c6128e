// Package location resolves the folder a program has been installed in.
package location

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var ErrNotDirectory = errors.New("not a directory")

// Resolver returns the folder a launch is rooted at
type Resolver func() (string, error)

// Executable returns the absolute, symlink free folder of the running
// executable, independently of the caller working directory.
func Executable() (string, error) {
	executablePath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("cannot locate executable: %w", err)
	}
	return Directory(executablePath)
}

// Directory returns the absolute, symlink free folder containing path.
func Directory(path string) (string, error) {
	resolved, err := canonical(path)
	if err != nil {
		return "", err
	}
	return existingDirectory(filepath.Dir(resolved))
}

// Fixed returns a resolver always answering with the canonical form of directory
func Fixed(directory string) Resolver {
	return func() (string, error) {
		resolved, err := canonical(directory)
		if err != nil {
			return "", err
		}
		return existingDirectory(resolved)
	}
}

// canonical returns path made absolute, with every symlink evaluated
func canonical(path string) (resolved string, err error) {
	if resolved, err = filepath.Abs(path); err != nil {
		return
	}
	if resolved, err = filepath.EvalSymlinks(resolved); err != nil {
		return "", fmt.Errorf("cannot resolve %s: %w", path, err)
	}
	return
}

func existingDirectory(directory string) (string, error) {
	info, err := os.Stat(directory)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s: %w", directory, ErrNotDirectory)
	}
	return directory, nil
}
