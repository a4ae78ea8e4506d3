package token

import "errors"

var (
	ErrNumber            = errors.New("invalid number")
	ErrNumberLeadingZero = errors.New("invalid number: leading zero")
	ErrUnterminatedQuote = errors.New("unterminated quote")
	ErrInvalidEscape     = errors.New("invalid escape")
)
