package parse

import (
	"fmt"

	"github.com/toonify/toon-format/go-toon/ir"
	"github.com/toonify/toon-format/go-toon/token"
)

var (
	ErrParse = ir.ErrParse

	ErrRowCountMismatch   = fmt.Errorf("%w: row count mismatch", ErrParse)
	ErrFieldCountMismatch = fmt.Errorf("%w: field count mismatch", ErrParse)

	ErrUnterminatedHeader = token.ErrUnterminatedHeader
	ErrUnknownEntityKind  = token.ErrUnknownEntityKind
	ErrUnterminatedQuote  = token.ErrUnterminatedQuote
	ErrInvalidEscape      = token.ErrInvalidEscape
)
