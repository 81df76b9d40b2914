package main

import (
	"math"
	"testing"
)

func TestFmtTemp(t *testing.T) {
	tests := map[int64]string{
		0:    "0.0",
		5:    "0.5",
		-5:   "-0.5",
		105:  "10.5",
		-120: "-12.0",
		-127: "-12.7",
		999:  "99.9",
	}
	for temp, want := range tests {
		if got := fmtTemp(temp); got != want {
			t.Errorf("fmtTemp(%d) = %q, want %q", temp, got, want)
		}
	}
}

func TestMeanTemp(t *testing.T) {
	tests := []struct {
		sum, count int64
		want       float64
	}{
		{25, 2, 13},
		{-25, 2, -13},
		{24, 2, 12},
		{-4, 10, math.Copysign(0, -1)},
		{-6, 10, -1},
		{300, 2, 150},
		{10, 3, 3},
	}
	for _, tt := range tests {
		if got := meanTemp(tt.sum, tt.count); got != tt.want || math.Signbit(got) != math.Signbit(tt.want) {
			t.Errorf("meanTemp(%d, %d) = %v, want %v", tt.sum, tt.count, got, tt.want)
		}
	}
}

func TestFmtMean(t *testing.T) {
	tests := []struct {
		sum, count int64
		want       string
	}{
		{25, 2, "1.3"},
		{-25, 2, "-1.3"},
		{300, 2, "15.0"},
		{-4, 10, "-0.0"},
		{-1, 3, "-0.0"},
		{4, 10, "0.0"},
		{0, 5, "0.0"},
		{-1998, 2, "-99.9"},
	}
	for _, tt := range tests {
		if got := fmtMean(tt.sum, tt.count); got != tt.want {
			t.Errorf("fmtMean(%d, %d) = %q, want %q", tt.sum, tt.count, got, tt.want)
		}
	}
}

func TestToLines(t *testing.T) {
	got := toLines("{a=1.0/1.0/1.0, b=2.0/2.0/2.0}\n")
	if want := "a=1.0/1.0/1.0\nb=2.0/2.0/2.0"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
