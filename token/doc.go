// Package token provides the lexical layer shared by the TOON parser and
// serializer: position tracking, the JSON token stream used by the document
// codec, TOON entity-header scanning, quote-aware cell splitting, and the
// quoting and number-scanning rules both directions must agree on.
package token
