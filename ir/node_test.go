package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNumberLiteral(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   *Node
		want string
	}{
		{"int", FromInt(42), "42"},
		{"negative int", FromInt(-7), "-7"},
		{"float", FromFloat(2.5), "2.5"},
		{"whole float keeps class", FromFloat(100), "100.0"},
		{"exponent float", FromFloat(1e14), "1e+14"},
		{"negative whole float", FromFloat(-3), "-3.0"},
		{"big literal", FromNumberLiteral("123456789012345678901234567890"), "123456789012345678901234567890"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.NumberLiteral(); got != tc.want {
				t.Errorf("NumberLiteral() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestToMap(t *testing.T) {
	obj := &Node{Type: ObjectType}
	Set(obj, "a", FromInt(1))
	Set(obj, "b", FromString("x"))

	m := ToMap(obj)
	if len(m) != 2 {
		t.Fatalf("len = %d, want 2", len(m))
	}
	if v := m["a"]; v == nil || *v.Int64 != 1 {
		t.Errorf("m[a] = %v", v)
	}
	if v := m["missing"]; v != nil {
		t.Errorf("m[missing] = %v", v)
	}
	if ToMap(FromInt(1)) != nil {
		t.Error("ToMap of a scalar should be nil")
	}
}

func TestGetSet(t *testing.T) {
	obj := &Node{Type: ObjectType}
	Set(obj, "a", FromInt(1))
	Set(obj, "b", FromInt(2))
	Set(obj, "a", FromInt(3))

	if got := Get(obj, "a"); got == nil || *got.Int64 != 3 {
		t.Errorf("Get(a) = %v", got)
	}
	if got := Get(obj, "missing"); got != nil {
		t.Errorf("Get(missing) = %v", got)
	}
	// overwrite keeps the original position
	if d := cmp.Diff([]string{"a", "b"}, obj.FieldNames()); d != "" {
		t.Errorf("field order (-want +got):\n%s", d)
	}
}

func TestClone(t *testing.T) {
	orig := FromKeyVals([]KeyVal{
		{Key: FromString("nums"), Val: FromSlice([]*Node{FromInt(1), FromFloat(2.5)})},
		{Key: FromString("name"), Val: FromString("x")},
	})
	cp := orig.Clone()
	if !Equal(orig, cp) {
		t.Fatalf("clone not equal")
	}
	*Get(cp, "nums").Values[0].Int64 = 99
	if Equal(orig, cp) {
		t.Errorf("clone shares number storage")
	}
}

func TestFromMapSorted(t *testing.T) {
	y := FromMap(map[string]*Node{
		"z": FromInt(1),
		"a": FromInt(2),
		"m": FromInt(3),
	})
	if d := cmp.Diff([]string{"a", "m", "z"}, y.FieldNames()); d != "" {
		t.Errorf("FromMap order (-want +got):\n%s", d)
	}
}

func TestAnyRoundTrip(t *testing.T) {
	orig := FromKeyVals([]KeyVal{
		{Key: FromString("a"), Val: FromSlice([]*Node{FromInt(1), FromString("x"), Null()})},
		{Key: FromString("b"), Val: FromBool(true)},
		{Key: FromString("c"), Val: FromFloat(2.5)},
	})
	back, err := FromAny(ToAny(orig))
	if err != nil {
		t.Fatalf("FromAny: %v", err)
	}
	// FromAny sorts map keys, so compare field by field
	for _, f := range orig.FieldNames() {
		if !Equal(Get(orig, f), Get(back, f)) {
			t.Errorf("field %q did not survive", f)
		}
	}
}
