// Package parse builds ir.Node trees from TOON and JSON source text.
package parse

import (
	"github.com/toonify/toon-format/go-toon/format"
	"github.com/toonify/toon-format/go-toon/ir"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.ToonFormat}
	for _, f := range opts {
		f(pOpts)
	}
	switch pOpts.format {
	case format.JSONFormat:
		return parseJSON(d)
	case format.ToonFormat:
		return parseToon(d)
	}
	return nil, format.ErrBadFormat
}
