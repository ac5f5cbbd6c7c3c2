package fileutil

import (
	"errors"
	"fmt"
	"os"
)

// ErrEmptyFile is returned when the file exists but has no content.
var ErrEmptyFile = errors.New("file is empty")

// ReadFile reads the whole file at path and returns its bytes followed by a
// single null terminator, so len(result) == size+1.
// A missing or empty file yields a nil buffer and an error.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s for reading: %w", path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyFile)
	}

	buf := make([]byte, len(data)+1)
	copy(buf, data)
	return buf, nil
}

// ReadString is ReadFile returning a string, ready for gl.Strs.
func ReadString(path string) (string, error) {
	buf, err := ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}
