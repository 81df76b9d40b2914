//go:build !(linux || darwin)

package main

import (
	"fmt"
	"os"
)

func openSource(filePath string) (*source, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("could not read measurements file: %w", err)
	}
	return &source{data: data}, nil
}
