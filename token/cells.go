package token

import (
	"strings"
)

// SplitCells splits one data-row line into its raw cell tokens. Commas
// inside double quotes do not split; backslash escapes one character inside
// quotes. Each cell keeps its quotes but drops surrounding whitespace.
func SplitCells(line string) ([]string, error) {
	var (
		cells    []string
		sb       strings.Builder
		inQuotes bool
	)
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch c {
		case '\\':
			if inQuotes {
				if i == len(line)-1 {
					return nil, ErrUnterminatedQuote
				}
				sb.WriteByte(c)
				i++
				sb.WriteByte(line[i])
				continue
			}
			sb.WriteByte(c)
		case '"':
			inQuotes = !inQuotes
			sb.WriteByte(c)
		case ',':
			if inQuotes {
				sb.WriteByte(c)
				continue
			}
			cells = append(cells, strings.TrimSpace(sb.String()))
			sb.Reset()
		default:
			sb.WriteByte(c)
		}
	}
	if inQuotes {
		return nil, ErrUnterminatedQuote
	}
	if sb.Len() > 0 || len(cells) > 0 {
		cells = append(cells, strings.TrimSpace(sb.String()))
	}
	return cells, nil
}

// EncodeCell renders a scalar string cell, quoting exactly when a bare token
// would read back differently.
func EncodeCell(v string) string {
	if NeedsQuote(v) {
		return Quote(v)
	}
	return v
}
