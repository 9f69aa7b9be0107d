// Package source materializes the texts that get searched. Every loader
// returns the whole input as one byte slice; nothing is streamed.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/mmap"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

var (
	ErrEmptyPath   = errors.New("source: empty path")
	ErrIsDirectory = errors.New("source: path is a directory")
	ErrShortRead   = errors.New("source: short read")
)

// Load reads the file at path into memory. With useMmap set the file is
// mapped and copied out of the mapping, which is cheaper than buffered
// reads for large files. A path of "-" reads os.Stdin.
func Load(path string, useMmap bool) ([]byte, error) {
	switch {
	case path == "":
		return nil, ErrEmptyPath
	case path == Stdin:
		return ReadAll(os.Stdin)
	}
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	if useMmap {
		return loadMapped(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	return data, nil
}

// ReadAll reads r until EOF.
func ReadAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	return data, nil
}

func loadMapped(path string) ([]byte, error) {
	ra, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source: mmap: %w", err)
	}
	defer ra.Close()
	data := make([]byte, ra.Len())
	if len(data) == 0 {
		return data, nil
	}
	n, err := ra.ReadAt(data, 0)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("source: mmap: %w", err)
	}
	if n != len(data) {
		return nil, ErrShortRead
	}
	return data, nil
}
