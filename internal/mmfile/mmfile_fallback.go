//go:build !unix

package mmfile

import (
	"fmt"
	"os"
)

// Map reads the whole file on platforms without mmap support. The release
// func is a no-op kept for signature parity with the unix version.
func Map(path string) ([]byte, func() error, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, nil, fmt.Errorf("mmfile: %s is not a regular file", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return nil }, nil
}
