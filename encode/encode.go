package encode

import (
	"io"
	"strings"

	"github.com/toonify/toon-format/go-toon/format"
	"github.com/toonify/toon-format/go-toon/ir"
	"github.com/toonify/toon-format/go-toon/token"
)

type EncState struct {
	depth, indent int
	wire          bool

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w in the format selected by opts (TOON by default).
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
		format: format.ToonFormat,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.ToonFormat:
		// TOON emission is line-oriented and writes its own trailing
		// newline
		return encodeToon(node, w, es)
	case format.JSONFormat:
		if err := encodeJSON(node, w, es); err != nil {
			return err
		}
		return writeString(w, "\n")
	default:
		return format.ErrBadFormat
	}
}

// Helper functions for writing

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func (es *EncState) indentString(depth int) string {
	return strings.Repeat(strings.Repeat(" ", es.indent), depth)
}

func (es *EncState) color(t ir.Type, attr ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, attr, s)
}

// JSON emission

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.NullType:
		return writeString(w, es.color(ir.NullType, ValueColor, "null"))
	case ir.BoolType:
		v := "false"
		if node.Bool {
			v = "true"
		}
		return writeString(w, es.color(ir.BoolType, ValueColor, v))
	case ir.NumberType:
		return writeString(w, es.color(ir.NumberType, ValueColor, node.NumberLiteral()))
	case ir.StringType:
		return writeString(w, es.color(ir.StringType, ValueColor, token.QuoteJSON(node.String)))
	case ir.ArrayType:
		return encodeJSONArray(node, w, es)
	case ir.ObjectType:
		return encodeJSONObject(node, w, es)
	}
	return ErrEncoding
}

func (es *EncState) jsonNL(w io.Writer, depth int) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n"+es.indentString(depth))
}

func encodeJSONArray(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, es.color(ir.ArrayType, SepColor, "[")); err != nil {
		return err
	}
	if len(node.Values) == 0 {
		return writeString(w, es.color(ir.ArrayType, SepColor, "]"))
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := writeString(w, es.color(ir.ArrayType, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := es.jsonNL(w, es.depth); err != nil {
			return err
		}
		if err := encodeJSON(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := es.jsonNL(w, es.depth); err != nil {
		return err
	}
	return writeString(w, es.color(ir.ArrayType, SepColor, "]"))
}

func encodeJSONObject(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, es.color(ir.ObjectType, SepColor, "{")); err != nil {
		return err
	}
	if len(node.Fields) == 0 {
		return writeString(w, es.color(ir.ObjectType, SepColor, "}"))
	}
	es.depth++
	for i := range node.Fields {
		if i > 0 {
			if err := writeString(w, es.color(ir.ObjectType, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := es.jsonNL(w, es.depth); err != nil {
			return err
		}
		key := token.QuoteJSON(node.Fields[i].String)
		if err := writeString(w, es.color(ir.ObjectType, FieldColor, key)); err != nil {
			return err
		}
		sep := ": "
		if es.wire {
			sep = ":"
		}
		if err := writeString(w, es.color(ir.ObjectType, SepColor, sep)); err != nil {
			return err
		}
		if err := encodeJSON(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := es.jsonNL(w, es.depth); err != nil {
		return err
	}
	return writeString(w, es.color(ir.ObjectType, SepColor, "}"))
}
