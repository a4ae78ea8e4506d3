package schema

import (
	"fmt"

	"github.com/toonify/toon-format/go-toon/ir"
)

// Range bounds a numeric field. A nil end is unbounded.
type Range struct {
	Min, Max *float64
}

// Bounds bounds a string field's byte length. A nil end is unbounded.
type Bounds struct {
	Min, Max *int
}

// EntitySchema describes one top-level entity of a document.
type EntitySchema struct {
	Name string
	// Kind is ir.ArrayType or ir.ObjectType.
	Kind ir.Type
	// Fields lists the required field names per item.
	Fields []string

	FieldTypes map[string]ir.Type
	MinItems   *int
	MaxItems   *int
	Patterns   map[string]string
	Ranges     map[string]Range
	Lengths    map[string]Bounds
	Enums      map[string][]*ir.Node
	Formats    map[string]string
	Exprs      map[string]string
}

// Schema maps entity names to their descriptors, in document order.
type Schema struct {
	Entities []*EntitySchema
}

// Parse builds a schema from a parsed descriptor document, a root object
// mapping entity name to descriptor.
func Parse(doc *ir.Node) (*Schema, error) {
	if doc == nil || doc.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: root must be an object", ErrBadSchema)
	}
	s := &Schema{}
	for i := range doc.Fields {
		e, err := parseEntity(doc.Fields[i].String, doc.Values[i])
		if err != nil {
			return nil, err
		}
		s.Entities = append(s.Entities, e)
	}
	return s, nil
}

func parseEntity(name string, d *ir.Node) (*EntitySchema, error) {
	if d.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: descriptor for %q must be an object", ErrBadSchema, name)
	}
	e := &EntitySchema{Name: name}

	kind := ir.Get(d, "type")
	if kind == nil || kind.Type != ir.StringType {
		return nil, fmt.Errorf("%w: descriptor for %q needs a \"type\"", ErrBadSchema, name)
	}
	switch kind.String {
	case "array":
		e.Kind = ir.ArrayType
	case "object":
		e.Kind = ir.ObjectType
	default:
		return nil, fmt.Errorf("%w: entity %q has unsupported type %q", ErrBadSchema, name, kind.String)
	}

	if fields := ir.Get(d, "fields"); fields != nil {
		if fields.Type != ir.ArrayType {
			return nil, fmt.Errorf("%w: entity %q: \"fields\" must be an array", ErrBadSchema, name)
		}
		for _, f := range fields.Values {
			if f.Type != ir.StringType {
				return nil, fmt.Errorf("%w: entity %q: field names must be strings", ErrBadSchema, name)
			}
			e.Fields = append(e.Fields, f.String)
		}
	} else if e.Kind == ir.ArrayType {
		return nil, fmt.Errorf("%w: entity %q needs a \"fields\" array", ErrBadSchema, name)
	}

	var err error
	if e.MinItems, err = intField(name, d, "min_items"); err != nil {
		return nil, err
	}
	if e.MaxItems, err = intField(name, d, "max_items"); err != nil {
		return nil, err
	}

	if ft := ir.Get(d, "field_types"); ft != nil {
		if ft.Type != ir.ObjectType {
			return nil, fmt.Errorf("%w: entity %q: \"field_types\" must be an object", ErrBadSchema, name)
		}
		e.FieldTypes = map[string]ir.Type{}
		for i := range ft.Fields {
			f, v := ft.Fields[i].String, ft.Values[i]
			if v.Type != ir.StringType {
				return nil, fmt.Errorf("%w: entity %q: type of field %q must be a string", ErrBadSchema, name, f)
			}
			t, ok := fieldTypes[v.String]
			if !ok {
				return nil, fmt.Errorf("%w: entity %q: field %q has unknown type %q", ErrBadSchema, name, f, v.String)
			}
			e.FieldTypes[f] = t
		}
	}

	if e.Patterns, err = stringMap(name, d, "patterns"); err != nil {
		return nil, err
	}
	if e.Formats, err = stringMap(name, d, "formats"); err != nil {
		return nil, err
	}
	for f, fk := range e.Formats {
		if !KnownFormat(fk) {
			return nil, fmt.Errorf("%w: entity %q: field %q has unknown format %q", ErrBadSchema, name, f, fk)
		}
	}
	if e.Exprs, err = stringMap(name, d, "exprs"); err != nil {
		return nil, err
	}

	if ranges := ir.Get(d, "ranges"); ranges != nil {
		if ranges.Type != ir.ObjectType {
			return nil, fmt.Errorf("%w: entity %q: \"ranges\" must be an object", ErrBadSchema, name)
		}
		e.Ranges = map[string]Range{}
		for i := range ranges.Fields {
			f, v := ranges.Fields[i].String, ranges.Values[i]
			r := Range{}
			if r.Min, err = floatField(name, v, "min"); err != nil {
				return nil, err
			}
			if r.Max, err = floatField(name, v, "max"); err != nil {
				return nil, err
			}
			e.Ranges[f] = r
		}
	}

	lengths := ir.Get(d, "lengths")
	if lengths == nil {
		// the schema dialect historically spelled this string_lengths
		lengths = ir.Get(d, "string_lengths")
	}
	if lengths != nil {
		if lengths.Type != ir.ObjectType {
			return nil, fmt.Errorf("%w: entity %q: \"lengths\" must be an object", ErrBadSchema, name)
		}
		e.Lengths = map[string]Bounds{}
		for i := range lengths.Fields {
			f, v := lengths.Fields[i].String, lengths.Values[i]
			b := Bounds{}
			if b.Min, err = intField(name, v, "min"); err != nil {
				return nil, err
			}
			if b.Max, err = intField(name, v, "max"); err != nil {
				return nil, err
			}
			e.Lengths[f] = b
		}
	}

	if enums := ir.Get(d, "enums"); enums != nil {
		if enums.Type != ir.ObjectType {
			return nil, fmt.Errorf("%w: entity %q: \"enums\" must be an object", ErrBadSchema, name)
		}
		e.Enums = map[string][]*ir.Node{}
		for i := range enums.Fields {
			f, v := enums.Fields[i].String, enums.Values[i]
			if v.Type != ir.ArrayType {
				return nil, fmt.Errorf("%w: entity %q: enum for field %q must be an array", ErrBadSchema, name, f)
			}
			e.Enums[f] = v.Values
		}
	}
	return e, nil
}

var fieldTypes = map[string]ir.Type{
	"string":  ir.StringType,
	"number":  ir.NumberType,
	"boolean": ir.BoolType,
	"null":    ir.NullType,
}

// typeName reports a type in the schema's vocabulary.
func typeName(t ir.Type) string {
	switch t {
	case ir.NullType:
		return "null"
	case ir.NumberType:
		return "number"
	case ir.StringType:
		return "string"
	case ir.BoolType:
		return "boolean"
	case ir.ArrayType:
		return "array"
	default:
		return "object"
	}
}

func intField(entity string, d *ir.Node, key string) (*int, error) {
	v := ir.Get(d, key)
	if v == nil {
		return nil, nil
	}
	if v.Type != ir.NumberType || v.Int64 == nil {
		return nil, fmt.Errorf("%w: entity %q: %q must be an integer", ErrBadSchema, entity, key)
	}
	n := int(*v.Int64)
	return &n, nil
}

func floatField(entity string, d *ir.Node, key string) (*float64, error) {
	v := ir.Get(d, key)
	if v == nil {
		return nil, nil
	}
	if v.Type != ir.NumberType {
		return nil, fmt.Errorf("%w: entity %q: %q must be a number", ErrBadSchema, entity, key)
	}
	var f float64
	switch {
	case v.Int64 != nil:
		f = float64(*v.Int64)
	case v.Float64 != nil:
		f = *v.Float64
	default:
		return nil, fmt.Errorf("%w: entity %q: %q is out of range", ErrBadSchema, entity, key)
	}
	return &f, nil
}

func stringMap(entity string, d *ir.Node, key string) (map[string]string, error) {
	v := ir.Get(d, key)
	if v == nil {
		return nil, nil
	}
	if v.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: entity %q: %q must be an object", ErrBadSchema, entity, key)
	}
	res := make(map[string]string, len(v.Fields))
	for i := range v.Fields {
		if v.Values[i].Type != ir.StringType {
			return nil, fmt.Errorf("%w: entity %q: %q entries must be strings", ErrBadSchema, entity, key)
		}
		res[v.Fields[i].String] = v.Values[i].String
	}
	return res, nil
}
