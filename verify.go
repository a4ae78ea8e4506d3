package toon

import (
	"bytes"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/toonify/toon-format/go-toon/encode"
	"github.com/toonify/toon-format/go-toon/format"
	"github.com/toonify/toon-format/go-toon/ir"
	"github.com/toonify/toon-format/go-toon/parse"
)

// VerifyRoundTrip parses in, renders it in the other format, parses that
// back, and checks the two values are structurally identical, key order
// and numeric literal class included. On mismatch the returned error
// carries a diff of the two wire forms.
func VerifyRoundTrip(in []byte, from format.Format) error {
	y, err := parse.Parse(in, parse.ParseFormat(from))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConversion, err)
	}
	to := format.ToonFormat
	if from.IsToon() {
		to = format.JSONFormat
	}
	mid := bytes.NewBuffer(nil)
	if err := encode.Encode(y, mid, encode.EncodeFormat(to)); err != nil {
		return fmt.Errorf("%w: %w", ErrConversion, err)
	}
	z, err := parse.Parse(mid.Bytes(), parse.ParseFormat(to))
	if err != nil {
		return fmt.Errorf("%w: re-parse: %w", ErrRoundTripMismatch, err)
	}
	if ir.Equal(y, z) {
		return nil
	}
	aw, err := wireJSON(y)
	if err != nil {
		return err
	}
	bw, err := wireJSON(z)
	if err != nil {
		return err
	}
	// jsonpatch ignores key order and literal spelling, so it splits
	// structural loss from reordering in the report
	if wireEqual(aw, bw) {
		return fmt.Errorf("%w: values agree structurally but differ in key order or numeric class",
			ErrRoundTripMismatch)
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(aw), string(bw), false)
	return fmt.Errorf("%w:\n%s", ErrRoundTripMismatch, dmp.DiffPrettyText(diffs))
}

// wireEqual reports structural equality of two wire-form documents.
// jsonpatch.Equal dereferences nil on some null-versus-composite shapes; a
// panic counts as inequality.
func wireEqual(a, b []byte) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return jsonpatch.Equal(a, b)
}

func wireJSON(y *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	err := encode.Encode(y, buf, encode.EncodeFormat(format.JSONFormat), encode.EncodeWire(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConversion, err)
	}
	return buf.Bytes(), nil
}
