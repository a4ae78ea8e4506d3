package token

import (
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// QuoteJSON returns v as a double-quoted JSON string token.
func QuoteJSON(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				d = append(d, '\\', 'u',
					hexDigits[(r>>12)&0xf],
					hexDigits[(r>>8)&0xf],
					hexDigits[(r>>4)&0xf],
					hexDigits[r&0xf])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// UnquoteJSON decodes a double-quoted JSON string token, including the
// surrounding quotes.
func UnquoteJSON(v string) (string, error) {
	if len(v) < 2 || v[0] != '"' || v[len(v)-1] != '"' {
		return "", ErrUnterminatedQuote
	}
	b := v[1 : len(v)-1]
	d := make([]byte, 0, len(b))
	i := 0
	for i < len(b) {
		c := b[i]
		if c != '\\' {
			d = append(d, c)
			i++
			continue
		}
		if i == len(b)-1 {
			return "", ErrUnterminatedQuote
		}
		i++
		switch b[i] {
		case '"':
			d = append(d, '"')
		case '\\':
			d = append(d, '\\')
		case '/':
			d = append(d, '/')
		case 'b':
			d = append(d, '\b')
		case 'f':
			d = append(d, '\f')
		case 'n':
			d = append(d, '\n')
		case 'r':
			d = append(d, '\r')
		case 't':
			d = append(d, '\t')
		case 'u':
			r, n, err := unquoteRune(b[i+1:])
			if err != nil {
				return "", err
			}
			d = utf8.AppendRune(d, r)
			i += n
		default:
			return "", ErrInvalidEscape
		}
		i++
	}
	return string(d), nil
}

// unquoteRune decodes the 4 hex digits after \u, consuming a following
// \uXXXX surrogate pair when present.
func unquoteRune(b string) (rune, int, error) {
	u1, err := hex4(b)
	if err != nil {
		return 0, 0, err
	}
	r := rune(u1)
	if !utf16.IsSurrogate(r) {
		return r, 4, nil
	}
	if len(b) < 10 || b[4] != '\\' || b[5] != 'u' {
		return utf8.RuneError, 4, nil
	}
	u2, err := hex4(b[6:])
	if err != nil {
		return 0, 0, err
	}
	c := utf16.DecodeRune(r, rune(u2))
	if c == utf8.RuneError {
		return utf8.RuneError, 4, nil
	}
	return c, 10, nil
}

func hex4(b string) (uint32, error) {
	if len(b) < 4 {
		return 0, ErrInvalidEscape
	}
	var v uint32
	for i := 0; i < 4; i++ {
		c := b[i]
		switch {
		case c >= '0' && c <= '9':
			v = v<<4 | uint32(c-'0')
		case c >= 'a' && c <= 'f':
			v = v<<4 | uint32(c-'a'+10)
		case c >= 'A' && c <= 'F':
			v = v<<4 | uint32(c-'A'+10)
		default:
			return 0, ErrInvalidEscape
		}
	}
	return v, nil
}
