package utils

import (
	"os"
)

// IsFileExists checks if path points at an existing regular file.
func IsFileExists(path string) (bool, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) { // If doesn't exist, don't omit an error
			return false, nil
		}
		return false, err
	}
	return fileInfo.Mode().IsRegular(), nil
}

// CheckFileReadable verifies that path points at a readable regular file.
// Returns an UnreadableFileError otherwise.
func CheckFileReadable(path string) error {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return &UnreadableFileError{Path: path, Cause: err}
	}
	if !fileInfo.Mode().IsRegular() {
		return &UnreadableFileError{Path: path}
	}
	file, err := os.Open(path)
	if err != nil {
		return &UnreadableFileError{Path: path, Cause: err}
	}
	return file.Close()
}
