// Package utils holds small helpers with no better home.
package utils

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
)

// CalculateFileChecksum returns the file's SHA-256 digest in the form
// "sha256:<hex>". Content is streamed, so large files are fine.
func CalculateFileChecksum(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = file.Close()
	}()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}

	return fmt.Sprintf("sha256:%x", hash.Sum(nil)), nil
}
