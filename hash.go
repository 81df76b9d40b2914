package main

import (
	"encoding/binary"
	"math/bits"
)

const (
	hashSeed     uint64 = 0x517cc1b727220a95
	hashRotation        = 17
)

// hashName digests the first 8 bytes of the name in tail[:sep]. Names that
// share an 8-byte prefix collide and have to be told apart by the caller.
// The result is never 0.
func hashName(tail []byte, sep int) uint64 {
	var block uint64
	if sep >= 8 {
		block = binary.LittleEndian.Uint64(tail)
	} else {
		var buf [8]byte
		copy(buf[:], tail[:sep])
		block = binary.LittleEndian.Uint64(buf[:])
	}

	h := bits.RotateLeft64(block*hashSeed, hashRotation)
	if h == 0 {
		return 1
	}
	return h
}
