package token

import (
	"errors"
	"reflect"
	"testing"
)

func TestSplitCells(t *testing.T) {
	for _, tc := range []struct {
		in    string
		cells []string
	}{
		{"1,Alice,admin", []string{"1", "Alice", "admin"}},
		{"1, Alice , admin", []string{"1", "Alice", "admin"}},
		{`1,"hello, world",x`, []string{"1", `"hello, world"`, "x"}},
		{`"say \"hi\"",2`, []string{`"say \"hi\""`, "2"}},
		{"a,,c", []string{"a", "", "c"}},
		{"a,b,", []string{"a", "b", ""}},
		{"solo", []string{"solo"}},
		{"", nil},
	} {
		cells, err := SplitCells(tc.in)
		if err != nil {
			t.Fatalf("SplitCells(%q): %v", tc.in, err)
		}
		if !reflect.DeepEqual(cells, tc.cells) {
			t.Errorf("SplitCells(%q) = %#v, want %#v", tc.in, cells, tc.cells)
		}
	}
}

func TestSplitCellsErrs(t *testing.T) {
	for _, in := range []string{
		`1,"unterminated`,
		`"trailing\`,
	} {
		if _, err := SplitCells(in); !errors.Is(err, ErrUnterminatedQuote) {
			t.Errorf("SplitCells(%q) err = %v, want %v", in, err, ErrUnterminatedQuote)
		}
	}
}

func TestEncodeCell(t *testing.T) {
	for _, tc := range []struct {
		in  string
		out string
	}{
		{"Alice", "Alice"},
		{"hello, world", `"hello, world"`},
		{"", `""`},
		{"true", `"true"`},
		{"42", `"42"`},
	} {
		if got := EncodeCell(tc.in); got != tc.out {
			t.Errorf("EncodeCell(%q) = %s, want %s", tc.in, got, tc.out)
		}
	}
}
