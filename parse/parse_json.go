package parse

import (
	"fmt"
	"strconv"

	"github.com/toonify/toon-format/go-toon/ir"
	"github.com/toonify/toon-format/go-toon/token"
)

func parseJSON(d []byte) (*ir.Node, error) {
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if len(toks) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrParse)
	}
	off := 0
	res, err := parseJSONValue(toks, nil, &off)
	if err != nil {
		return nil, err
	}
	if off != len(toks) {
		return nil, fmt.Errorf("%w: trailing content %s", ErrParse, toks[off].Pos)
	}
	return res, nil
}

func parseJSONValue(toks []token.Token, p *ir.Node, pi *int) (*ir.Node, error) {
	if *pi >= len(toks) {
		return nil, fmt.Errorf("%w: unexpected end of input", ErrParse)
	}
	t := &toks[*pi]
	switch t.Type {
	case token.TLCurl:
		*pi++
		objY := &ir.Node{Type: ir.ObjectType, Parent: p}
		return parseJSONObject(toks, objY, pi)
	case token.TLSquare:
		*pi++
		arrY := &ir.Node{Type: ir.ArrayType, Parent: p}
		return parseJSONArray(toks, arrY, pi)
	case token.TString:
		s, err := token.UnquoteJSON(string(t.Bytes))
		if err != nil {
			return nil, fmt.Errorf("%w: %w %s", ErrParse, err, t.Pos)
		}
		*pi++
		sy := ir.FromString(s)
		sy.Parent = p
		return sy, nil
	case token.TInteger:
		*pi++
		i, err := strconv.ParseInt(string(t.Bytes), 10, 64)
		if err != nil {
			// out of int64 range: keep the literal
			return ir.FromNumberLiteral(string(t.Bytes)), nil
		}
		iy := ir.FromInt(i)
		iy.Parent = p
		return iy, nil
	case token.TFloat:
		*pi++
		f, err := strconv.ParseFloat(string(t.Bytes), 64)
		if err != nil {
			return ir.FromNumberLiteral(string(t.Bytes)), nil
		}
		fy := ir.FromFloat(f)
		fy.Parent = p
		return fy, nil
	case token.TTrue:
		*pi++
		by := ir.FromBool(true)
		by.Parent = p
		return by, nil
	case token.TFalse:
		*pi++
		by := ir.FromBool(false)
		by.Parent = p
		return by, nil
	case token.TNull:
		*pi++
		ny := ir.Null()
		ny.Parent = p
		return ny, nil
	default:
		return nil, fmt.Errorf("%w: unexpected token %s", ErrParse, t.Info())
	}
}

func parseJSONObject(toks []token.Token, obj *ir.Node, pi *int) (*ir.Node, error) {
	if *pi < len(toks) && toks[*pi].Type == token.TRCurl {
		*pi++
		return obj, nil
	}
	for {
		if *pi >= len(toks) {
			return nil, fmt.Errorf("%w: unterminated object", ErrParse)
		}
		kt := &toks[*pi]
		if kt.Type != token.TString {
			return nil, fmt.Errorf("%w: object key must be a string %s", ErrParse, kt.Pos)
		}
		key, err := token.UnquoteJSON(string(kt.Bytes))
		if err != nil {
			return nil, fmt.Errorf("%w: %w %s", ErrParse, err, kt.Pos)
		}
		*pi++
		if *pi >= len(toks) || toks[*pi].Type != token.TColon {
			return nil, fmt.Errorf("%w: expected ':' %s", ErrParse, kt.Pos)
		}
		*pi++
		val, err := parseJSONValue(toks, obj, pi)
		if err != nil {
			return nil, err
		}
		ir.Set(obj, key, val)
		if *pi >= len(toks) {
			return nil, fmt.Errorf("%w: unterminated object", ErrParse)
		}
		switch toks[*pi].Type {
		case token.TComma:
			*pi++
		case token.TRCurl:
			*pi++
			return obj, nil
		default:
			return nil, fmt.Errorf("%w: expected ',' or '}' %s", ErrParse, toks[*pi].Pos)
		}
	}
}

func parseJSONArray(toks []token.Token, arr *ir.Node, pi *int) (*ir.Node, error) {
	if *pi < len(toks) && toks[*pi].Type == token.TRSquare {
		*pi++
		return arr, nil
	}
	for {
		val, err := parseJSONValue(toks, arr, pi)
		if err != nil {
			return nil, err
		}
		val.ParentIndex = len(arr.Values)
		arr.Values = append(arr.Values, val)
		if *pi >= len(toks) {
			return nil, fmt.Errorf("%w: unterminated array", ErrParse)
		}
		switch toks[*pi].Type {
		case token.TComma:
			*pi++
		case token.TRSquare:
			*pi++
			return arr, nil
		default:
			return nil, fmt.Errorf("%w: expected ',' or ']' %s", ErrParse, toks[*pi].Pos)
		}
	}
}
