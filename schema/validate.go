package schema

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/toonify/toon-format/go-toon/ir"
)

// Code classifies a validation violation.
type Code string

const (
	MissingEntity    Code = "MissingEntity"
	WrongKind        Code = "WrongKind"
	TooFewItems      Code = "TooFewItems"
	TooManyItems     Code = "TooManyItems"
	MissingField     Code = "MissingField"
	TypeMismatch     Code = "TypeMismatch"
	RangeViolation   Code = "RangeViolation"
	LengthViolation  Code = "LengthViolation"
	PatternViolation Code = "PatternViolation"
	EnumViolation    Code = "EnumViolation"
	FormatViolation  Code = "FormatViolation"
	ExprViolation    Code = "ExprViolation"
)

// ValidationError is one schema violation. Item is -1 when the violation
// is not tied to an array item.
type ValidationError struct {
	Entity string
	Field  string
	Item   int
	Code   Code
	Msg    string
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(string(e.Code))
	if e.Entity != "" {
		fmt.Fprintf(&sb, ": entity %q", e.Entity)
	}
	if e.Item >= 0 {
		fmt.Fprintf(&sb, " item %d", e.Item)
	}
	if e.Field != "" {
		fmt.Fprintf(&sb, " field %q", e.Field)
	}
	if e.Msg != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Msg)
	}
	return sb.String()
}

// checker holds per-call compiled constraint state.
type checker struct {
	entity   *EntitySchema
	patterns map[string]*regexp.Regexp
	programs map[string]*vm.Program
	errs     []ValidationError
}

// Validate checks doc against s and returns every violation found. It
// never stops at the first fault; an empty result means the document
// conforms.
func Validate(doc *ir.Node, s *Schema) []ValidationError {
	if doc == nil || doc.Type != ir.ObjectType {
		return []ValidationError{{
			Item: -1,
			Code: WrongKind,
			Msg:  "document root must be an object",
		}}
	}
	var errs []ValidationError
	for _, e := range s.Entities {
		c := &checker{entity: e}
		c.compile()
		c.validateEntity(ir.Get(doc, e.Name))
		errs = append(errs, c.errs...)
	}
	return errs
}

func (c *checker) add(field string, item int, code Code, format string, args ...any) {
	c.errs = append(c.errs, ValidationError{
		Entity: c.entity.Name,
		Field:  field,
		Item:   item,
		Code:   code,
		Msg:    fmt.Sprintf(format, args...),
	})
}

// compile prepares regexes and expr programs once so per-item checks
// reuse them. A constraint that fails to compile reports one violation
// and is skipped for every item.
func (c *checker) compile() {
	e := c.entity
	c.patterns = make(map[string]*regexp.Regexp, len(e.Patterns))
	for f, src := range e.Patterns {
		re, err := regexp.Compile(src)
		if err != nil {
			c.add(f, -1, PatternViolation, "invalid pattern %q: %v", src, err)
			continue
		}
		c.patterns[f] = re
	}
	c.programs = make(map[string]*vm.Program, len(e.Exprs))
	for f, src := range e.Exprs {
		prog, err := expr.Compile(src, expr.AsBool())
		if err != nil {
			c.add(f, -1, ExprViolation, "invalid expression %q: %v", src, err)
			continue
		}
		c.programs[f] = prog
	}
}

func (c *checker) validateEntity(val *ir.Node) {
	e := c.entity
	if val == nil {
		c.add("", -1, MissingEntity, "entity not present in document")
		return
	}
	if val.Type != e.Kind {
		c.add("", -1, WrongKind, "expected %s, got %s", typeName(e.Kind), typeName(val.Type))
		return
	}
	if e.Kind == ir.ObjectType {
		c.validateItem(val, -1)
		return
	}
	n := len(val.Values)
	if e.MinItems != nil && n < *e.MinItems {
		c.add("", -1, TooFewItems, "%d items, minimum is %d", n, *e.MinItems)
	}
	if e.MaxItems != nil && n > *e.MaxItems {
		c.add("", -1, TooManyItems, "%d items, maximum is %d", n, *e.MaxItems)
	}
	for i, item := range val.Values {
		if item.Type != ir.ObjectType {
			c.add("", i, WrongKind, "expected object, got %s", typeName(item.Type))
			continue
		}
		c.validateItem(item, i)
	}
}

func (c *checker) validateItem(obj *ir.Node, item int) {
	e := c.entity
	fields := ir.ToMap(obj)
	for _, f := range e.Fields {
		v := fields[f]
		if v == nil {
			c.add(f, item, MissingField, "required field missing")
			continue
		}
		if want, ok := e.FieldTypes[f]; ok && v.Type != want {
			c.add(f, item, TypeMismatch, "expected %s, got %s", typeName(want), typeName(v.Type))
			// remaining constraints assume the declared type
			continue
		}
		c.checkConstraints(f, v, item)
	}
}

func (c *checker) checkConstraints(f string, v *ir.Node, item int) {
	e := c.entity
	if r, ok := e.Ranges[f]; ok {
		if num, ok := numValue(v); !ok {
			c.add(f, item, RangeViolation, "value is not a number")
		} else {
			if r.Min != nil && num < *r.Min {
				c.add(f, item, RangeViolation, "value %v is below minimum %v", num, *r.Min)
			}
			if r.Max != nil && num > *r.Max {
				c.add(f, item, RangeViolation, "value %v exceeds maximum %v", num, *r.Max)
			}
		}
	}
	if b, ok := e.Lengths[f]; ok {
		if v.Type != ir.StringType {
			c.add(f, item, LengthViolation, "value is not a string")
		} else {
			n := len(v.String)
			if b.Min != nil && n < *b.Min {
				c.add(f, item, LengthViolation, "length %d is below minimum %d", n, *b.Min)
			}
			if b.Max != nil && n > *b.Max {
				c.add(f, item, LengthViolation, "length %d exceeds maximum %d", n, *b.Max)
			}
		}
	}
	if re, ok := c.patterns[f]; ok {
		if v.Type != ir.StringType {
			c.add(f, item, PatternViolation, "value is not a string")
		} else if !re.MatchString(v.String) {
			c.add(f, item, PatternViolation, "value %q does not match %q", v.String, re.String())
		}
	}
	if allowed, ok := e.Enums[f]; ok {
		found := false
		for _, a := range allowed {
			if ir.Equal(v, a) {
				found = true
				break
			}
		}
		if !found {
			c.add(f, item, EnumViolation, "value %s is not allowed", cellString(v))
		}
	}
	if kind, ok := e.Formats[f]; ok {
		if v.Type != ir.StringType {
			c.add(f, item, FormatViolation, "value is not a string")
		} else if !CheckFormat(kind, v.String) {
			c.add(f, item, FormatViolation, "value %q is not a valid %s", v.String, kind)
		}
	}
	if prog, ok := c.programs[f]; ok {
		out, err := expr.Run(prog, map[string]any{"value": ir.ToAny(v)})
		if err != nil {
			c.add(f, item, ExprViolation, "expression failed: %v", err)
		} else if ok, _ := out.(bool); !ok {
			c.add(f, item, ExprViolation, "value %s rejected by %q", cellString(v), e.Exprs[f])
		}
	}
}

func numValue(v *ir.Node) (float64, bool) {
	if v.Type != ir.NumberType {
		return 0, false
	}
	switch {
	case v.Int64 != nil:
		return float64(*v.Int64), true
	case v.Float64 != nil:
		return *v.Float64, true
	default:
		return 0, false
	}
}

func cellString(v *ir.Node) string {
	switch v.Type {
	case ir.ObjectType, ir.ArrayType:
		return typeName(v.Type)
	case ir.StringType:
		return fmt.Sprintf("%q", v.String)
	case ir.BoolType:
		if v.Bool {
			return "true"
		}
		return "false"
	case ir.NumberType:
		return v.NumberLiteral()
	default:
		return "null"
	}
}
