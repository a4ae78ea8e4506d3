package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/toonify/toon-format/go-toon/ir"
)

func obj(kvs ...any) *ir.Node {
	pairs := make([]ir.KeyVal, 0, len(kvs)/2)
	for i := 0; i < len(kvs); i += 2 {
		pairs = append(pairs, ir.KeyVal{
			Key: ir.FromString(kvs[i].(string)),
			Val: kvs[i+1].(*ir.Node),
		})
	}
	return ir.FromKeyVals(pairs)
}

func arr(vs ...*ir.Node) *ir.Node {
	return ir.FromSlice(vs)
}

func TestParseToon(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		want *ir.Node
	}{
		{
			name: "tabular",
			in:   "users[1]{id,name,role}:\n1,Alice,admin",
			want: obj("users", arr(
				obj("id", ir.FromInt(1), "name", ir.FromString("Alice"), "role", ir.FromString("admin")),
			)),
		},
		{
			name: "tabular multi row",
			in:   "users[2]{id,name}:\n1,Alice\n2,Bob",
			want: obj("users", arr(
				obj("id", ir.FromInt(1), "name", ir.FromString("Alice")),
				obj("id", ir.FromInt(2), "name", ir.FromString("Bob")),
			)),
		},
		{
			name: "record",
			in:   "config{debug,timeout}:\ntrue,30",
			want: obj("config", obj("debug", ir.FromBool(true), "timeout", ir.FromInt(30))),
		},
		{
			name: "empty record",
			in:   "none{}:",
			want: obj("none", obj()),
		},
		{
			name: "table then record sibling in block",
			in:   "root:\n  t[1]{a}:\n  1\n  x{b}:\n  2",
			want: obj("root", obj(
				"t", arr(obj("a", ir.FromInt(1))),
				"x", obj("b", ir.FromInt(2)),
			)),
		},
		{
			name: "wide entity name",
			in:   "foo-bar:\n  leaf.rate: 1",
			want: obj("foo-bar", obj("leaf.rate", ir.FromInt(1))),
		},
		{
			name: "empty composite items",
			in:   "mixed:\n  - []\n  - {}\n  -",
			want: obj("mixed", arr(arr(), obj(), ir.Null())),
		},
		{
			name: "scalar list",
			in:   "tags[3]:\na\nb\nc",
			want: obj("tags", arr(ir.FromString("a"), ir.FromString("b"), ir.FromString("c"))),
		},
		{
			name: "empty list",
			in:   "empty[0]:",
			want: obj("empty", arr()),
		},
		{
			name: "inline scalars",
			in:   "version: 2\n\nname: demo\n\nok: true\n\nnothing: null",
			want: obj(
				"version", ir.FromInt(2),
				"name", ir.FromString("demo"),
				"ok", ir.FromBool(true),
				"nothing", ir.Null(),
			),
		},
		{
			name: "quoted cells",
			in:   "notes[2]{id,text}:\n1,\"hello, world\"\n2,\"say \\\"hi\\\"\"",
			want: obj("notes", arr(
				obj("id", ir.FromInt(1), "text", ir.FromString("hello, world")),
				obj("id", ir.FromInt(2), "text", ir.FromString(`say "hi"`)),
			)),
		},
		{
			name: "empty cell is empty string",
			in:   "rows[1]{a,b}:\n,x",
			want: obj("rows", arr(obj("a", ir.FromString(""), "b", ir.FromString("x")))),
		},
		{
			name: "null keyword cell",
			in:   "rows[1]{a,b}:\nnull,x",
			want: obj("rows", arr(obj("a", ir.Null(), "b", ir.FromString("x")))),
		},
		{
			name: "nested object block",
			in:   "server:\n  host: localhost\n  port: 8080",
			want: obj("server", obj("host", ir.FromString("localhost"), "port", ir.FromInt(8080))),
		},
		{
			name: "nested table",
			in:   "db:\n  conns[2]{host,port}:\n  a,1\n  b,2",
			want: obj("db", obj("conns", arr(
				obj("host", ir.FromString("a"), "port", ir.FromInt(1)),
				obj("host", ir.FromString("b"), "port", ir.FromInt(2)),
			))),
		},
		{
			name: "nested array block",
			in:   "mixed:\n  - 1\n  - two\n  -\n    a: 1",
			want: obj("mixed", arr(
				ir.FromInt(1),
				ir.FromString("two"),
				obj("a", ir.FromInt(1)),
			)),
		},
		{
			name: "bare header no block is null",
			in:   "nothing:",
			want: obj("nothing", ir.Null()),
		},
		{
			name: "numeric classes",
			in:   "nums[4]:\n42\n-1.5\n1e14\n123456789012345678901234567890",
			want: obj("nums", arr(
				ir.FromInt(42),
				ir.FromFloat(-1.5),
				ir.FromFloat(1e14),
				ir.FromNumberLiteral("123456789012345678901234567890"),
			)),
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse([]byte(tc.in), ParseToon())
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if !ir.Equal(got, tc.want) {
				t.Errorf("parse mismatch:\n got %s\nwant %s", dump(got), dump(tc.want))
			}
		})
	}
}

func TestParseToonErrs(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		e    error
	}{
		{"too few rows", "users[2]{id,name}:\n1,Alice", ErrRowCountMismatch},
		{"too many rows", "users[1]{id,name}:\n1,Alice\n2,Bob", ErrRowCountMismatch},
		{"blank line splits rows", "users[2]{id,name}:\n1,Alice\n\n2,Bob", ErrRowCountMismatch},
		{"missing record row", "config{debug}:", ErrRowCountMismatch},
		{"cell count", "users[1]{id,name}:\n1,Alice,extra", ErrFieldCountMismatch},
		{"list item cells", "tags[1]:\na,b", ErrFieldCountMismatch},
		{"missing colon", "users[1]{id,name}\n1,Alice", ErrUnterminatedHeader},
		{"unterminated quote", "users[1]{id}:\n\"open", ErrUnterminatedQuote},
		{"invalid escape", "users[1]{id}:\n\"bad\\q\"", ErrInvalidEscape},
		{"trailing junk", "users[1]{id}: junk", ErrUnknownEntityKind},
		{"top level data", "1,2,3", ErrUnterminatedHeader},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.in), ParseToon())
			if !errors.Is(err, tc.e) {
				t.Errorf("err = %v, want %v", err, tc.e)
			}
			if err != nil && !errors.Is(err, ErrParse) && !errors.Is(err, tc.e) {
				t.Errorf("err %v should carry context", err)
			}
		})
	}
}

func TestParseErrLineNumbers(t *testing.T) {
	_, err := Parse([]byte("ok[1]{a}:\n1\n\nbad[2]{a}:\n1"), ParseToon())
	if !errors.Is(err, ErrRowCountMismatch) {
		t.Fatalf("err = %v, want %v", err, ErrRowCountMismatch)
	}
	if !strings.Contains(err.Error(), "bad") {
		t.Errorf("error should name the entity: %v", err)
	}
	if !strings.Contains(err.Error(), "line 4") {
		t.Errorf("error should carry the header line: %v", err)
	}
}

func TestParseJSON(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		want *ir.Node
	}{
		{
			name: "object order preserved",
			in:   `{"z": 1, "a": 2}`,
			want: obj("z", ir.FromInt(1), "a", ir.FromInt(2)),
		},
		{
			name: "nested",
			in:   `{"users": [{"id": 1, "name": "Alice"}]}`,
			want: obj("users", arr(obj("id", ir.FromInt(1), "name", ir.FromString("Alice")))),
		},
		{
			name: "scalars",
			in:   `[null, true, false, 42, -1.5, "x"]`,
			want: arr(ir.Null(), ir.FromBool(true), ir.FromBool(false),
				ir.FromInt(42), ir.FromFloat(-1.5), ir.FromString("x")),
		},
		{
			name: "big integer keeps digits",
			in:   `{"n": 123456789012345678901234567890}`,
			want: obj("n", ir.FromNumberLiteral("123456789012345678901234567890")),
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse([]byte(tc.in), ParseJSON())
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if !ir.Equal(got, tc.want) {
				t.Errorf("parse mismatch:\n got %s\nwant %s", dump(got), dump(tc.want))
			}
		})
	}
}

func TestParseJSONErrs(t *testing.T) {
	for _, in := range []string{
		``,
		`{`,
		`{"a"}`,
		`{"a": 1,}`,
		`[1, 2`,
		`{"a": 1} trailing`,
		`{1: 2}`,
	} {
		if _, err := Parse([]byte(in), ParseJSON()); !errors.Is(err, ErrParse) {
			t.Errorf("Parse(%q) err = %v, want %v", in, err, ErrParse)
		}
	}
}

func dump(y *ir.Node) string {
	var sb strings.Builder
	dumpNode(&sb, y)
	return sb.String()
}

func dumpNode(sb *strings.Builder, y *ir.Node) {
	switch y.Type {
	case ir.NullType:
		sb.WriteString("null")
	case ir.BoolType:
		if y.Bool {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case ir.NumberType:
		sb.WriteString(y.NumberLiteral())
	case ir.StringType:
		sb.WriteString("\"" + y.String + "\"")
	case ir.ArrayType:
		sb.WriteString("[")
		for i, v := range y.Values {
			if i > 0 {
				sb.WriteString(",")
			}
			dumpNode(sb, v)
		}
		sb.WriteString("]")
	case ir.ObjectType:
		sb.WriteString("{")
		for i := range y.Fields {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(y.Fields[i].String + ":")
			dumpNode(sb, y.Values[i])
		}
		sb.WriteString("}")
	}
}
