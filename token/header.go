package token

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrUnterminatedHeader = errors.New("unterminated header")
	ErrUnknownEntityKind  = errors.New("unknown entity kind")
	ErrBadCount           = errors.New("bad count")
)

// HeaderKind classifies a TOON entity header.
type HeaderKind int

const (
	// HeaderBare is `name:` optionally followed by an inline scalar.
	HeaderBare HeaderKind = iota
	// HeaderTable is `name[count]{f1,f2}:`, a counted array of uniform
	// records.
	HeaderTable
	// HeaderList is `name[count]:`, a counted array of single-cell items.
	HeaderList
	// HeaderRecord is `name{f1,f2}:`, a single record.
	HeaderRecord
)

func (k HeaderKind) String() string {
	switch k {
	case HeaderBare:
		return "bare"
	case HeaderTable:
		return "table"
	case HeaderList:
		return "list"
	case HeaderRecord:
		return "record"
	default:
		return "<unknown kind>"
	}
}

// Header is one parsed TOON entity header line.
type Header struct {
	Name   string
	Kind   HeaderKind
	Count  int
	Fields []string
	// Inline is the text after the colon for HeaderBare; empty means a
	// nested block follows.
	Inline string
}

func nameChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case asciiDigit(c):
		return true
	}
	switch c {
	case '_', '-', '@', '/', '.':
		return true
	default:
		return false
	}
}

func fieldChar(c byte) bool {
	switch c {
	case ':', ' ':
		return true
	default:
		return nameChar(c)
	}
}

// ValidEntityName reports whether v can be emitted as an entity name in a
// header line.
func ValidEntityName(v string) bool {
	if v == "" {
		return false
	}
	for i := 0; i < len(v); i++ {
		if !nameChar(v[i]) {
			return false
		}
	}
	return true
}

// ValidFieldName reports whether v can be emitted in a header field list.
// ScanHeader accepts a colon inside a field list, but IsHeaderLine scans
// to the first colon and cannot recognize such a header, so emission
// refuses it and the object falls back to the nested block form.
func ValidFieldName(v string) bool {
	if strings.TrimSpace(v) != v || v == "" {
		return false
	}
	for i := 0; i < len(v); i++ {
		if v[i] == ':' || !fieldChar(v[i]) {
			return false
		}
	}
	return true
}

// IsHeaderLine reports whether a trimmed line reads as an entity header.
// Data rows use it to tell where a block ends. It is more conservative
// than ScanHeader: a field list containing a colon scans but is not
// recognized here, which is why ValidFieldName refuses colons.
func IsHeaderLine(line string) bool {
	ci := strings.IndexByte(line, ':')
	if ci < 0 {
		return false
	}
	// colon followed by // reads as a URL inside a cell, not a header
	if strings.HasPrefix(line[ci+1:], "//") {
		return false
	}
	before := line[:ci]
	i := 0
	for i < len(before) && nameChar(before[i]) {
		i++
	}
	if i == 0 {
		return false
	}
	for i < len(before) {
		switch before[i] {
		case ' ', '\t':
			i++
		case '[':
			i++
			for i < len(before) && asciiDigit(before[i]) {
				i++
			}
			if i >= len(before) || before[i] != ']' {
				return false
			}
			i++
		case '{':
			for i < len(before) && before[i] != '}' {
				i++
			}
			if i >= len(before) {
				return false
			}
			i++
		default:
			return false
		}
	}
	return true
}

// ScanHeader parses a trimmed entity header line.
func ScanHeader(line string) (*Header, error) {
	h := &Header{Count: -1}
	i := 0
	for i < len(line) && nameChar(line[i]) {
		i++
	}
	if i == 0 {
		return nil, ErrUnterminatedHeader
	}
	h.Name = line[:i]

	counted := false
	if i < len(line) && line[i] == '[' {
		j := i + 1
		for j < len(line) && asciiDigit(line[j]) {
			j++
		}
		if j >= len(line) || line[j] != ']' {
			return nil, ErrUnterminatedHeader
		}
		if j == i+1 {
			return nil, ErrBadCount
		}
		c, err := strconv.Atoi(line[i+1 : j])
		if err != nil {
			return nil, ErrBadCount
		}
		h.Count = c
		counted = true
		i = j + 1
	}

	fielded := false
	if i < len(line) && line[i] == '{' {
		j := strings.IndexByte(line[i:], '}')
		if j < 0 {
			return nil, ErrUnterminatedHeader
		}
		if body := strings.TrimSpace(line[i+1 : i+j]); body != "" {
			for _, f := range strings.Split(body, ",") {
				f = strings.TrimSpace(f)
				if f == "" {
					return nil, ErrUnknownEntityKind
				}
				for k := 0; k < len(f); k++ {
					if !fieldChar(f[k]) {
						return nil, ErrUnknownEntityKind
					}
				}
				h.Fields = append(h.Fields, f)
			}
		} else if counted {
			// a counted table needs a field list
			return nil, ErrUnknownEntityKind
		}
		fielded = true
		i += j + 1
	}

	if i >= len(line) || line[i] != ':' {
		return nil, ErrUnterminatedHeader
	}
	i++

	switch {
	case counted && fielded:
		h.Kind = HeaderTable
	case counted:
		h.Kind = HeaderList
	case fielded:
		h.Kind = HeaderRecord
	default:
		h.Kind = HeaderBare
		h.Inline = strings.TrimSpace(line[i:])
		return h, nil
	}
	if strings.TrimSpace(line[i:]) != "" {
		return nil, ErrUnknownEntityKind
	}
	return h, nil
}

// String renders the header back to its textual form, without the trailing
// inline value.
func (h *Header) String() string {
	var sb strings.Builder
	sb.WriteString(h.Name)
	switch h.Kind {
	case HeaderTable:
		sb.WriteByte('[')
		sb.WriteString(strconv.Itoa(h.Count))
		sb.WriteString("]{")
		sb.WriteString(strings.Join(h.Fields, ","))
		sb.WriteByte('}')
	case HeaderList:
		sb.WriteByte('[')
		sb.WriteString(strconv.Itoa(h.Count))
		sb.WriteByte(']')
	case HeaderRecord:
		sb.WriteByte('{')
		sb.WriteString(strings.Join(h.Fields, ","))
		sb.WriteByte('}')
	}
	sb.WriteByte(':')
	return sb.String()
}
