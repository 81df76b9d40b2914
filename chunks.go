package main

import "bytes"

// chunk is a record-aligned [start, end) range of the source.
type chunk struct {
	start, end int
}

// splitChunks cuts data into at most n chunks, each starting at offset 0 or
// right after a '\n'. Empty chunks are dropped. A split candidate with no
// '\n' after it lies inside the final unterminated record and snaps to the
// end of data.
func splitChunks(data []byte, n int) []chunk {
	if n < 1 {
		n = 1
	}
	size := len(data)

	offsets := make([]int, 0, n+1)
	offsets = append(offsets, 0)
	for i := 1; i < n; i++ {
		at := size * i / n
		eol := bytes.IndexByte(data[at:], '\n')
		if eol == -1 {
			offsets = append(offsets, size)
			continue
		}
		offsets = append(offsets, at+eol+1)
	}
	offsets = append(offsets, size)

	chunks := make([]chunk, 0, n)
	for i := 0; i < len(offsets)-1; i++ {
		if offsets[i] < offsets[i+1] {
			chunks = append(chunks, chunk{start: offsets[i], end: offsets[i+1]})
		}
	}
	return chunks
}
