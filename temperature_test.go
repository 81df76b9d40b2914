package main

import (
	"errors"
	"testing"
)

func TestParseTemperature(t *testing.T) {
	tests := []struct {
		input string
		temp  int16
		n     int
	}{
		{"3.2\n", 32, 4},
		{"3.2", 32, 3},
		{"-12.7\n", -127, 6},
		{"-12.7", -127, 5},
		{"0.0\n", 0, 4},
		{"-0.0\n", 0, 5},
		{"99.9\n", 999, 5},
		{"-99.9\n", -999, 6},
		{"10.5\nAlpha;1.0\n", 105, 5},
		{"-5.5\nBeta;2.0\n", -55, 5},
		{"1.0\nB;2.0\n", 10, 4},
		{"-12.7\nC;3.0\n", -127, 6},
	}

	for _, tt := range tests {
		temp, n, err := parseTemperature([]byte(tt.input))
		if err != nil {
			t.Errorf("%q: %v", tt.input, err)
			continue
		}
		if temp != tt.temp || n != tt.n {
			t.Errorf("%q: got (%d, %d), want (%d, %d)", tt.input, temp, n, tt.temp, tt.n)
		}
	}
}

func TestParseTemperaturePathsAgree(t *testing.T) {
	for v := int64(-999); v <= 999; v++ {
		s := fmtTemp(v) + "\n"

		word, wn, ok := parseTemperatureWord([]byte(s + "Abcdefgh"))
		if !ok || int64(word) != v || wn != len(s) {
			t.Fatalf("word path %q: got (%d, %d, %v)", s, word, wn, ok)
		}

		scalar, sn, err := parseTemperatureScalar([]byte(s))
		if err != nil || int64(scalar) != v || sn != len(s) {
			t.Fatalf("scalar path %q: got (%d, %d, %v)", s, scalar, sn, err)
		}

		scalar, sn, err = parseTemperatureScalar([]byte(s[:len(s)-1]))
		if err != nil || int64(scalar) != v || sn != len(s)-1 {
			t.Fatalf("scalar path without terminator %q: got (%d, %d, %v)", s, scalar, sn, err)
		}
	}
}

func TestParseTemperatureWordRejects(t *testing.T) {
	for _, input := range []string{
		"123.4\nAbcd",
		"1234567\n",
		"1.23\nAbcd",
		"abcdefgh",
	} {
		if temp, n, ok := parseTemperatureWord([]byte(input)); ok {
			t.Errorf("%q: accepted as (%d, %d)", input, temp, n)
		}
	}
}

func TestParseTemperatureMalformed(t *testing.T) {
	for _, input := range []string{
		"",
		"-",
		"12",
		"1.",
		".5\n",
		"1,0\n",
		"1.x\n",
		"1.2x",
		"123.4\n",
		"123.4\nAbcdefgh",
		"--1.0\n",
	} {
		if _, _, err := parseTemperature([]byte(input)); !errors.Is(err, ErrMalformedValue) {
			t.Errorf("%q: got error %v, want %v", input, err, ErrMalformedValue)
		}
	}
}
