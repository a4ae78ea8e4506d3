package ir

import (
	"errors"

	"github.com/toonify/toon-format/go-toon/format"
)

var (
	ErrParse     = errors.New("parse error")
	ErrBadFormat = format.ErrBadFormat
)
