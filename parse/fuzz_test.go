package parse

import (
	"bytes"
	"testing"

	"github.com/toonify/toon-format/go-toon/encode"
	"github.com/toonify/toon-format/go-toon/format"
	"github.com/toonify/toon-format/go-toon/ir"
)

func FuzzParseToon(f *testing.F) {
	f.Add("users[1]{id,name}:\n1,Alice")
	f.Add("tags[2]:\na\nb")
	f.Add("config{debug}:\ntrue")
	f.Add("server:\n  host: localhost")
	f.Add("x: \"a, b\"")
	f.Fuzz(func(t *testing.T, in string) {
		y, err := Parse([]byte(in), ParseToon())
		if err != nil {
			return
		}
		// anything that parses must re-encode and re-parse to the same
		// value
		var buf bytes.Buffer
		if err := encode.Encode(y, &buf, encode.EncodeFormat(format.ToonFormat)); err != nil {
			return
		}
		z, err := Parse(buf.Bytes(), ParseToon())
		if err != nil {
			t.Fatalf("re-parse of %q: %v", buf.String(), err)
		}
		if !ir.Equal(y, z) {
			t.Errorf("round trip mismatch for %q", in)
		}
	})
}

func FuzzParseJSON(f *testing.F) {
	f.Add(`{"a": [1, 2.5, null, true, "x"]}`)
	f.Add(`[]`)
	f.Add(`"é"`)
	f.Fuzz(func(t *testing.T, in string) {
		y, err := Parse([]byte(in), ParseJSON())
		if err != nil {
			return
		}
		var buf bytes.Buffer
		if err := encode.Encode(y, &buf, encode.EncodeFormat(format.JSONFormat)); err != nil {
			t.Fatalf("encode: %v", err)
		}
		z, err := Parse(buf.Bytes(), ParseJSON())
		if err != nil {
			t.Fatalf("re-parse of %q: %v", buf.String(), err)
		}
		if !ir.Equal(y, z) {
			t.Errorf("round trip mismatch for %q", in)
		}
	})
}
