package ir

import "testing"

func TestCompare(t *testing.T) {
	for _, tc := range []struct {
		name string
		a, b *Node
		want int
	}{
		{"nil nodes", nil, nil, 0},
		{"nil vs null", nil, Null(), -1},
		{"nulls", Null(), Null(), 0},
		{"type rank", FromBool(true), FromInt(0), -1},
		{"ints", FromInt(1), FromInt(2), -1},
		{"floats", FromFloat(2.5), FromFloat(2.5), 0},
		{"int before float", FromInt(1), FromFloat(1), -1},
		{"float before literal", FromFloat(1), FromNumberLiteral("1"), -1},
		{"strings", FromString("a"), FromString("b"), -1},
		{"bools", FromBool(false), FromBool(true), -1},
		{
			"arrays by element",
			FromSlice([]*Node{FromInt(1), FromInt(2)}),
			FromSlice([]*Node{FromInt(1), FromInt(3)}),
			-1,
		},
		{
			"array prefix shorter",
			FromSlice([]*Node{FromInt(1)}),
			FromSlice([]*Node{FromInt(1), FromInt(2)}),
			-1,
		},
		{
			"objects by key order",
			FromKeyVals([]KeyVal{
				{Key: FromString("a"), Val: FromInt(1)},
				{Key: FromString("b"), Val: FromInt(2)},
			}),
			FromKeyVals([]KeyVal{
				{Key: FromString("b"), Val: FromInt(2)},
				{Key: FromString("a"), Val: FromInt(1)},
			}),
			-1,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := Compare(tc.a, tc.b); got != tc.want {
				t.Errorf("Compare = %d, want %d", got, tc.want)
			}
			if got := Compare(tc.b, tc.a); got != -tc.want {
				t.Errorf("reversed Compare = %d, want %d", got, -tc.want)
			}
		})
	}
}

func TestEqualKeyOrderSensitive(t *testing.T) {
	a := FromKeyVals([]KeyVal{
		{Key: FromString("x"), Val: FromInt(1)},
		{Key: FromString("y"), Val: FromInt(2)},
	})
	b := FromKeyVals([]KeyVal{
		{Key: FromString("y"), Val: FromInt(2)},
		{Key: FromString("x"), Val: FromInt(1)},
	})
	if Equal(a, b) {
		t.Errorf("key order must be significant")
	}
	if !Equal(a, a.Clone()) {
		t.Errorf("clone must be equal")
	}
}

func TestEqualNumericClass(t *testing.T) {
	if Equal(FromInt(100), FromFloat(100)) {
		t.Errorf("100 and 100.0 are different literal classes")
	}
}
