package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/toonify/toon-format/go-toon/ir"
	"github.com/toonify/toon-format/go-toon/token"
)

func encodeToon(root *ir.Node, w io.Writer, es *EncState) error {
	if root == nil || root.Type != ir.ObjectType {
		return ErrRootMustBeObject
	}
	for i := range root.Fields {
		if i > 0 {
			// one blank line between sibling entities
			if err := writeString(w, "\n"); err != nil {
				return err
			}
		}
		if err := encodeEntity(root.Fields[i].String, root.Values[i], 0, w, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeEntity(key string, val *ir.Node, depth int, w io.Writer, es *EncState) error {
	if !token.ValidEntityName(key) {
		return fmt.Errorf("%w: %q", ErrBadEntityName, key)
	}
	ind := es.indentString(depth)
	switch val.Type {
	case ir.NullType, ir.BoolType, ir.NumberType, ir.StringType:
		line := ind + es.color(ir.ObjectType, FieldColor, key) +
			es.color(ir.ObjectType, SepColor, ": ") +
			scalarCell(val, es)
		return writeString(w, line+"\n")
	case ir.ArrayType:
		return encodeArrayEntity(key, val, depth, w, es)
	case ir.ObjectType:
		return encodeObjectEntity(key, val, depth, w, es)
	}
	return ErrEncoding
}

func encodeArrayEntity(key string, val *ir.Node, depth int, w io.Writer, es *EncState) error {
	ind := es.indentString(depth)
	if fields := TableFields(val); fields != nil {
		h := &token.Header{
			Name:   key,
			Kind:   token.HeaderTable,
			Count:  len(val.Values),
			Fields: fields,
		}
		if err := writeHeader(w, ind, h, es); err != nil {
			return err
		}
		for _, elem := range val.Values {
			if err := writeRow(w, ind, fields, elem, es); err != nil {
				return err
			}
		}
		return nil
	}
	if allScalar(val) {
		h := &token.Header{Name: key, Kind: token.HeaderList, Count: len(val.Values)}
		if err := writeHeader(w, ind, h, es); err != nil {
			return err
		}
		for _, elem := range val.Values {
			if err := writeString(w, ind+scalarCell(elem, es)+"\n"); err != nil {
				return err
			}
		}
		return nil
	}
	h := &token.Header{Name: key, Kind: token.HeaderBare}
	if err := writeHeader(w, ind, h, es); err != nil {
		return err
	}
	return encodeArrayBlock(val, depth+1, w, es)
}

func encodeObjectEntity(key string, val *ir.Node, depth int, w io.Writer, es *EncState) error {
	ind := es.indentString(depth)
	if fields := recordFields(val); fields != nil || len(val.Fields) == 0 {
		h := &token.Header{Name: key, Kind: token.HeaderRecord, Fields: fields}
		if err := writeHeader(w, ind, h, es); err != nil {
			return err
		}
		if len(fields) == 0 {
			return nil
		}
		return writeRow(w, ind, fields, val, es)
	}
	h := &token.Header{Name: key, Kind: token.HeaderBare}
	if err := writeHeader(w, ind, h, es); err != nil {
		return err
	}
	for i := range val.Fields {
		if err := encodeEntity(val.Fields[i].String, val.Values[i], depth+1, w, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeArrayBlock(arr *ir.Node, depth int, w io.Writer, es *EncState) error {
	ind := es.indentString(depth)
	for _, elem := range arr.Values {
		if elem.Type.IsScalar() {
			line := ind + es.color(ir.ArrayType, SepColor, "- ") + scalarCell(elem, es)
			if err := writeString(w, line+"\n"); err != nil {
				return err
			}
			continue
		}
		// a memberless composite keeps an inline spelling, a bare "-"
		// item reads back as null
		if tok := emptyComposite(elem); tok != "" {
			line := ind + es.color(ir.ArrayType, SepColor, "- ") + es.color(elem.Type, ValueColor, tok)
			if err := writeString(w, line+"\n"); err != nil {
				return err
			}
			continue
		}
		if err := writeString(w, ind+es.color(ir.ArrayType, SepColor, "-")+"\n"); err != nil {
			return err
		}
		switch elem.Type {
		case ir.ArrayType:
			if err := encodeArrayBlock(elem, depth+1, w, es); err != nil {
				return err
			}
		case ir.ObjectType:
			for i := range elem.Fields {
				if err := encodeEntity(elem.Fields[i].String, elem.Values[i], depth+1, w, es); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// emptyComposite returns the inline token for a memberless array or
// object, or "".
func emptyComposite(v *ir.Node) string {
	switch {
	case v.Type == ir.ArrayType && len(v.Values) == 0:
		return "[]"
	case v.Type == ir.ObjectType && len(v.Fields) == 0:
		return "{}"
	}
	return ""
}

func writeHeader(w io.Writer, ind string, h *token.Header, es *EncState) error {
	if es.Color == nil {
		return writeString(w, ind+h.String()+"\n")
	}
	var sb strings.Builder
	sb.WriteString(ind)
	sb.WriteString(es.color(ir.ObjectType, FieldColor, h.Name))
	switch h.Kind {
	case token.HeaderTable:
		sb.WriteString(es.color(ir.ArrayType, SepColor, "["+strconv.Itoa(h.Count)+"]"))
		sb.WriteString(es.color(ir.ObjectType, SepColor, "{"+strings.Join(h.Fields, ",")+"}"))
	case token.HeaderList:
		sb.WriteString(es.color(ir.ArrayType, SepColor, "["+strconv.Itoa(h.Count)+"]"))
	case token.HeaderRecord:
		sb.WriteString(es.color(ir.ObjectType, SepColor, "{"+strings.Join(h.Fields, ",")+"}"))
	}
	sb.WriteString(es.color(ir.ObjectType, SepColor, ":"))
	sb.WriteString("\n")
	return writeString(w, sb.String())
}

func writeRow(w io.Writer, ind string, fields []string, obj *ir.Node, es *EncState) error {
	cells := make([]string, len(fields))
	for i, f := range fields {
		v := ir.Get(obj, f)
		if v == nil {
			v = ir.Null()
		}
		cells[i] = scalarCell(v, es)
	}
	sep := es.color(ir.ObjectType, SepColor, ",")
	return writeString(w, ind+strings.Join(cells, sep)+"\n")
}

func scalarCell(v *ir.Node, es *EncState) string {
	switch v.Type {
	case ir.NullType:
		return es.color(ir.NullType, ValueColor, "null")
	case ir.BoolType:
		if v.Bool {
			return es.color(ir.BoolType, ValueColor, "true")
		}
		return es.color(ir.BoolType, ValueColor, "false")
	case ir.NumberType:
		return es.color(ir.NumberType, ValueColor, v.NumberLiteral())
	case ir.StringType:
		return es.color(ir.StringType, ValueColor, token.EncodeCell(v.String))
	default:
		return ""
	}
}

// TableFields reports tabular eligibility: every element an object, all
// elements sharing the first element's non-empty field set, and every field
// value a scalar. It returns the field list in the first element's key
// order, or nil when the array must fall back to a nested form.
func TableFields(arr *ir.Node) []string {
	if arr.Type != ir.ArrayType || len(arr.Values) == 0 {
		return nil
	}
	first := arr.Values[0]
	if first.Type != ir.ObjectType || len(first.Fields) == 0 {
		return nil
	}
	fields := first.FieldNames()
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		if !token.ValidFieldName(f) {
			return nil
		}
		set[f] = true
	}
	if len(set) != len(fields) {
		return nil
	}
	for _, elem := range arr.Values {
		if elem.Type != ir.ObjectType || len(elem.Fields) != len(fields) {
			return nil
		}
		for i := range elem.Fields {
			// field set equality is order-insensitive; emission
			// order comes from the first element
			if !set[elem.Fields[i].String] {
				return nil
			}
			if !elem.Values[i].Type.IsScalar() {
				return nil
			}
		}
	}
	return fields
}

// recordFields returns the field list of an all-scalar object, or nil when
// the object needs the nested form.
func recordFields(obj *ir.Node) []string {
	if len(obj.Fields) == 0 {
		return nil
	}
	fields := make([]string, len(obj.Fields))
	for i := range obj.Fields {
		f := obj.Fields[i].String
		if !token.ValidFieldName(f) {
			return nil
		}
		if !obj.Values[i].Type.IsScalar() {
			return nil
		}
		fields[i] = f
	}
	return fields
}

func allScalar(arr *ir.Node) bool {
	for _, v := range arr.Values {
		if !v.Type.IsScalar() {
			return false
		}
	}
	return true
}
