package main

import (
	"bytes"
	"fmt"
)

const (
	tableSize  = 1 << 15
	maxNameLen = 104
)

type slot struct {
	hash     uint64
	occupied bool
	nameLen  uint8
	min      int16
	max      int16
	count    int64
	sum      int64
	name     [maxNameLen]byte
}

// table is an insert-only open-addressing hash table owned by a single
// worker. Collisions are resolved by linear probing.
type table struct {
	slots [tableSize]slot
	used  int
}

func newTable() *table {
	return new(table)
}

func (t *table) add(hash uint64, name []byte, temp int16) error {
	if len(name) > maxNameLen {
		return fmt.Errorf("%w: %d bytes, limit is %d", ErrNameTooLong, len(name), maxNameLen)
	}

	i := hash % tableSize
	for probes := 0; probes < tableSize; probes++ {
		s := &t.slots[i]
		if !s.occupied {
			s.occupied = true
			s.hash = hash
			s.nameLen = uint8(len(name))
			copy(s.name[:], name)
			s.count = 1
			s.sum = int64(temp)
			s.min = temp
			s.max = temp
			t.used++
			return nil
		}

		if s.hash == hash && int(s.nameLen) == len(name) && bytes.Equal(s.name[:s.nameLen], name) {
			s.count++
			s.sum += int64(temp)
			s.min = min(s.min, temp)
			s.max = max(s.max, temp)
			return nil
		}

		i = (i + 1) % tableSize
	}
	return fmt.Errorf("%w: limit is %d", ErrTableFull, tableSize)
}

// aggregateChunk scans every record in data[c.start:c.end] into a fresh
// table. Errors report the absolute offset of the offending record.
func aggregateChunk(data []byte, c chunk) (*table, error) {
	t := newTable()

	pos := c.start
	for pos < c.end {
		tail := data[pos:c.end]

		sep := bytes.IndexByte(tail, ';')
		if sep == -1 {
			return nil, fmt.Errorf("record at offset %d: %w", pos, ErrMissingSeparator)
		}
		name := tail[:sep]
		if bytes.IndexByte(name, '\n') != -1 {
			return nil, fmt.Errorf("record at offset %d: %w", pos, ErrMissingSeparator)
		}

		temp, n, err := parseTemperature(tail[sep+1:])
		if err != nil {
			return nil, fmt.Errorf("record at offset %d: %w", pos, err)
		}

		if err := t.add(hashName(tail, sep), name, temp); err != nil {
			return nil, fmt.Errorf("record at offset %d: %w", pos, err)
		}

		pos += sep + 1 + n
	}

	return t, nil
}
