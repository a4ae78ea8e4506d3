package toon

import "errors"

var (
	ErrConversion        = errors.New("conversion error")
	ErrRoundTripMismatch = errors.New("round trip mismatch")
)
