package main

import (
	"encoding/binary"
	"math/bits"
)

// parseTemperature decodes a value of the form -?d{1,2}.d at the start of b
// as tenths. n is the number of bytes consumed, including the trailing '\n'
// when there is one.
func parseTemperature(b []byte) (temp int16, n int, err error) {
	if len(b) >= 8 {
		if t, m, ok := parseTemperatureWord(b); ok {
			return t, m, nil
		}
	}
	return parseTemperatureScalar(b)
}

// parseTemperatureWord decodes from the first 8 bytes of b without
// branching on the digits. b must hold at least 8 bytes. ok is false when
// the point or the trailing '\n' is not where one of the four shapes puts
// it; digit bytes themselves are not checked.
//
// Little-endian layouts of the four shapes, low byte on the right:
//
//	a.b\n     0A bb 2E aa
//	ab.c\n    0A cc 2E bb aa
//	-a.b\n    0A bb 2E aa 2D
//	-ab.c\n   0A cc 2E bb aa 2D
func parseTemperatureWord(b []byte) (temp int16, n int, ok bool) {
	word := int64(binary.LittleEndian.Uint64(b))
	negated := ^word

	// Digits have bit 4 set, '.' does not: the first clear bit 4 among
	// bytes 1..3 marks the point. dot is 12, 20 or 28.
	dot := bits.TrailingZeros64(uint64(negated & 0x10101000))
	if dot > 28 {
		return 0, 0, false
	}
	n = dot/8 + 3
	if b[n-1] != '\n' {
		return 0, 0, false
	}

	// -1 when byte 0 is '-' (bit 4 clear), 0 for a digit.
	sign := (negated << 59) >> 63
	if dot == 28 && sign == 0 {
		// three integer digits
		return 0, 0, false
	}

	// Drop the sign byte and align so the digits land in bytes 1, 2 and 4
	// whatever the shape, then fold d1*100 + d2*10 + d4 into bits 32..41.
	digits := ((word &^ (sign & 0xFF)) << (28 - dot)) & 0x0F000F0F00
	abs := ((digits * 0x640a0001) >> 32) & 0x3FF

	return int16((abs ^ sign) - sign), n, true
}

func parseTemperatureScalar(b []byte) (temp int16, n int, err error) {
	i := 0
	negative := false
	if i < len(b) && b[i] == '-' {
		negative = true
		i++
	}

	if i >= len(b) || !isDigit(b[i]) {
		return 0, 0, ErrMalformedValue
	}
	temp = int16(b[i] - '0')
	i++
	if i < len(b) && isDigit(b[i]) {
		temp = temp*10 + int16(b[i]-'0')
		i++
	}

	if i >= len(b) || b[i] != '.' {
		return 0, 0, ErrMalformedValue
	}
	i++
	if i >= len(b) || !isDigit(b[i]) {
		return 0, 0, ErrMalformedValue
	}
	temp = temp*10 + int16(b[i]-'0')
	i++

	if i < len(b) {
		if b[i] != '\n' {
			return 0, 0, ErrMalformedValue
		}
		i++
	}

	if negative {
		temp = -temp
	}
	return temp, i, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
