package toon

import (
	"bytes"
	"fmt"

	"github.com/toonify/toon-format/go-toon/debug"
	"github.com/toonify/toon-format/go-toon/encode"
	"github.com/toonify/toon-format/go-toon/format"
	"github.com/toonify/toon-format/go-toon/parse"
	"github.com/toonify/toon-format/go-toon/schema"
)

// JSONToToon converts a JSON document to its TOON rendering. The
// document root must be an object.
func JSONToToon(doc []byte) (string, error) {
	return Convert(doc, format.JSONFormat, format.ToonFormat)
}

// ToonToJSON converts TOON text to a pretty-printed JSON document.
func ToonToJSON(src []byte) (string, error) {
	return Convert(src, format.ToonFormat, format.JSONFormat)
}

// Convert parses in as from and renders it as to.
func Convert(in []byte, from, to format.Format, opts ...encode.EncodeOption) (string, error) {
	y, err := parse.Parse(in, parse.ParseFormat(from))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrConversion, err)
	}
	if debug.Parse() {
		debug.Logf("parsed %s (%d bytes):\n%v", from, len(in), y)
	}
	if debug.Convert() {
		debug.Logf("convert %s -> %s:\n%v", from, to, y)
	}
	buf := bytes.NewBuffer(nil)
	opts = append([]encode.EncodeOption{encode.EncodeFormat(to)}, opts...)
	if err := encode.Encode(y, buf, opts...); err != nil {
		return "", fmt.Errorf("%w: %w", ErrConversion, err)
	}
	if debug.Encode() {
		debug.Logf("encoded %s (%d bytes)", to, buf.Len())
	}
	return buf.String(), nil
}

// ValidateToon parses TOON text and a JSON schema document, and returns
// every schema violation. The error return reports malformed inputs, not
// violations.
func ValidateToon(src, schemaDoc []byte) ([]schema.ValidationError, error) {
	y, err := parse.Parse(src, parse.ParseToon())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConversion, err)
	}
	sy, err := parse.Parse(schemaDoc, parse.ParseJSON())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", schema.ErrBadSchema, err)
	}
	s, err := schema.Parse(sy)
	if err != nil {
		return nil, err
	}
	verrs := schema.Validate(y, s)
	if debug.Validate() {
		debug.Logf("validate: %d entities, %d violations", len(s.Entities), len(verrs))
	}
	return verrs, nil
}
