//go:build linux || darwin

package main

import (
	"fmt"
	"math"
	"os"

	"golang.org/x/sys/unix"
)

func openSource(filePath string) (*source, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("could not open measurements file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("file stat error: %w", err)
	}

	size := stat.Size()
	if size == 0 {
		// mmap rejects zero-length mappings
		return &source{}, nil
	}
	if size > math.MaxInt {
		return nil, fmt.Errorf("%s: file of %d bytes does not fit in address space", filePath, size)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap file error: %w", err)
	}
	// Advisory only, a failure here changes nothing but read-ahead.
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)

	return &source{
		data:   data,
		mapped: true,
		unmap:  func() error { return unix.Munmap(data) },
	}, nil
}
