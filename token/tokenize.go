package token

import (
	"bytes"
)

// Tokenize scans src as JSON and appends the tokens to dst.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	pd := NewPosDoc(src)
	n := len(src)
	i := 0
	for i < n {
		c := src[i]
		switch c {
		case ' ', '\t', '\r', '\n':
			i++
		case '{':
			dst = append(dst, Token{Type: TLCurl, Pos: pd.Pos(i), Bytes: src[i : i+1]})
			i++
		case '}':
			dst = append(dst, Token{Type: TRCurl, Pos: pd.Pos(i), Bytes: src[i : i+1]})
			i++
		case '[':
			dst = append(dst, Token{Type: TLSquare, Pos: pd.Pos(i), Bytes: src[i : i+1]})
			i++
		case ']':
			dst = append(dst, Token{Type: TRSquare, Pos: pd.Pos(i), Bytes: src[i : i+1]})
			i++
		case ',':
			dst = append(dst, Token{Type: TComma, Pos: pd.Pos(i), Bytes: src[i : i+1]})
			i++
		case ':':
			dst = append(dst, Token{Type: TColon, Pos: pd.Pos(i), Bytes: src[i : i+1]})
			i++
		case '"':
			end, err := scanQuoted(src, i)
			if err != nil {
				return nil, NewTokenizeErr(err, pd.Pos(i))
			}
			dst = append(dst, Token{Type: TString, Pos: pd.Pos(i), Bytes: src[i:end]})
			i = end
		case 't':
			if !bytes.HasPrefix(src[i:], []byte("true")) {
				return nil, ExpectedErr("true", pd.Pos(i))
			}
			dst = append(dst, Token{Type: TTrue, Pos: pd.Pos(i), Bytes: src[i : i+4]})
			i += 4
		case 'f':
			if !bytes.HasPrefix(src[i:], []byte("false")) {
				return nil, ExpectedErr("false", pd.Pos(i))
			}
			dst = append(dst, Token{Type: TFalse, Pos: pd.Pos(i), Bytes: src[i : i+5]})
			i += 5
		case 'n':
			if !bytes.HasPrefix(src[i:], []byte("null")) {
				return nil, ExpectedErr("null", pd.Pos(i))
			}
			dst = append(dst, Token{Type: TNull, Pos: pd.Pos(i), Bytes: src[i : i+4]})
			i += 4
		default:
			if c == '-' || asciiDigit(c) {
				m, isFloat, err := Number(src[i:])
				if err != nil {
					return nil, NewTokenizeErr(err, pd.Pos(i))
				}
				tt := TInteger
				if isFloat {
					tt = TFloat
				}
				dst = append(dst, Token{Type: tt, Pos: pd.Pos(i), Bytes: src[i : i+m]})
				i += m
				continue
			}
			return nil, UnexpectedErr("character "+string(c), pd.Pos(i))
		}
	}
	return dst, nil
}

// scanQuoted returns the offset just past the closing quote of the string
// starting at src[i].
func scanQuoted(src []byte, i int) (int, error) {
	j := i + 1
	for j < len(src) {
		switch src[j] {
		case '\\':
			if j == len(src)-1 {
				return 0, ErrUnterminatedQuote
			}
			j += 2
		case '"':
			return j + 1, nil
		case '\n':
			return 0, ErrUnterminatedQuote
		default:
			j++
		}
	}
	return 0, ErrUnterminatedQuote
}
