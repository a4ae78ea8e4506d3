package toon

import (
	"bytes"

	"github.com/toonify/toon-format/go-toon/format"
	"github.com/toonify/toon-format/go-toon/parse"
)

// DetectFormat guesses whether in is JSON or TOON from its content.
// There is no version tag or magic in either format, so detection is a
// heuristic: a brace- or bracket-led document that parses as JSON is
// JSON, a document with entity headers is TOON, and anything else falls
// to whichever parser accepts it, TOON last.
func DetectFormat(in []byte) format.Format {
	trimmed := bytes.TrimSpace(in)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		if _, err := parse.Parse(trimmed, parse.ParseJSON()); err == nil {
			return format.JSONFormat
		}
	}
	if bytes.Contains(trimmed, []byte("{")) && bytes.Contains(trimmed, []byte("}:")) {
		return format.ToonFormat
	}
	if _, err := parse.Parse(trimmed, parse.ParseJSON()); err == nil {
		return format.JSONFormat
	}
	return format.ToonFormat
}
