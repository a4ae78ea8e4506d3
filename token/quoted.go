package token

import (
	"strings"
)

// NeedsQuote reports whether a string cell value must be quoted in TOON.
// A value needs quoting if emitting it bare would change how it reads back:
// the empty string, values carrying the cell/header separators, values with
// leading or trailing whitespace, and values mistakable for a non-string
// literal.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	if strings.ContainsAny(v, ",:\"\\\n\r\t") {
		return true
	}
	if v[0] == ' ' || v[len(v)-1] == ' ' {
		return true
	}
	switch v {
	case "true", "false", "null", "[]", "{}":
		return true
	}
	if ok, _ := IsNumber(v); ok {
		return true
	}
	return false
}

// Quote returns v as a double-quoted TOON cell token.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for i := 0; i < len(v); i++ {
		switch c := v[i]; c {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			d = append(d, c)
		}
	}
	d = append(d, '"')
	return string(d)
}

// Unquote decodes a double-quoted token, including the surrounding quotes.
func Unquote(v string) (string, error) {
	if len(v) < 2 || v[0] != '"' {
		return "", ErrUnterminatedQuote
	}
	d := make([]byte, 0, len(v)-2)
	i := 1
	for i < len(v) {
		c := v[i]
		switch c {
		case '"':
			if i != len(v)-1 {
				return "", ErrUnterminatedQuote
			}
			return string(d), nil
		case '\\':
			if i == len(v)-1 {
				return "", ErrUnterminatedQuote
			}
			i++
			switch v[i] {
			case '"':
				d = append(d, '"')
			case '\\':
				d = append(d, '\\')
			case 'n':
				d = append(d, '\n')
			case 'r':
				d = append(d, '\r')
			case 't':
				d = append(d, '\t')
			default:
				return "", ErrInvalidEscape
			}
		default:
			d = append(d, c)
		}
		i++
	}
	return "", ErrUnterminatedQuote
}
