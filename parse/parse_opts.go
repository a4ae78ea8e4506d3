package parse

import (
	"github.com/toonify/toon-format/go-toon/format"
)

type parseOpts struct {
	format format.Format
}

type ParseOption func(*parseOpts)

func ParseToon() ParseOption {
	return ParseFormat(format.ToonFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}

// ParseFormat selects the input format. Nesting depth in TOON blocks is
// inferred from the document itself, so there is no indent option.
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}
