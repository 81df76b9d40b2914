package main

import "errors"

var (
	ErrMissingSeparator = errors.New("missing ';' separator")
	ErrMalformedValue   = errors.New("malformed temperature")
	ErrNameTooLong      = errors.New("station name too long")
	ErrTableFull        = errors.New("too many distinct station names")

	ErrReferenceMismatch = errors.New("summary does not match reference output")
)
