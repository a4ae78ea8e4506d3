package token

import (
	"errors"
	"reflect"
	"testing"
)

func TestScanHeader(t *testing.T) {
	for _, tc := range []struct {
		in string
		h  Header
	}{
		{
			in: "users[2]{id,name,role}:",
			h:  Header{Name: "users", Kind: HeaderTable, Count: 2, Fields: []string{"id", "name", "role"}},
		},
		{
			in: "tags[3]:",
			h:  Header{Name: "tags", Kind: HeaderList, Count: 3},
		},
		{
			in: "config{debug,timeout}:",
			h:  Header{Name: "config", Kind: HeaderRecord, Count: -1, Fields: []string{"debug", "timeout"}},
		},
		{
			in: "version: 2",
			h:  Header{Name: "version", Kind: HeaderBare, Count: -1, Inline: "2"},
		},
		{
			in: "nested:",
			h:  Header{Name: "nested", Kind: HeaderBare, Count: -1},
		},
		{
			in: "empty[0]:",
			h:  Header{Name: "empty", Kind: HeaderList, Count: 0},
		},
		{
			in: "none{}:",
			h:  Header{Name: "none", Kind: HeaderRecord, Count: -1},
		},
		{
			in: "foo-bar{x}:",
			h:  Header{Name: "foo-bar", Kind: HeaderRecord, Count: -1, Fields: []string{"x"}},
		},
		{
			in: "a.b/c@d: 1",
			h:  Header{Name: "a.b/c@d", Kind: HeaderBare, Count: -1, Inline: "1"},
		},
	} {
		h, err := ScanHeader(tc.in)
		if err != nil {
			t.Fatalf("ScanHeader(%q): %v", tc.in, err)
		}
		if !reflect.DeepEqual(*h, tc.h) {
			t.Errorf("ScanHeader(%q) = %+v, want %+v", tc.in, *h, tc.h)
		}
	}
}

func TestScanHeaderErrs(t *testing.T) {
	for _, tc := range []struct {
		in string
		e  error
	}{
		{"users[2]{id,name}", ErrUnterminatedHeader},
		{"users[2{id}:", ErrUnterminatedHeader},
		{"users[]{id}:", ErrBadCount},
		{"users[2]{}:", ErrUnknownEntityKind},
		{"users{a,}:", ErrUnknownEntityKind},
		{"users[1]{id}: extra", ErrUnknownEntityKind},
		{"[2]:", ErrUnterminatedHeader},
	} {
		if _, err := ScanHeader(tc.in); !errors.Is(err, tc.e) {
			t.Errorf("ScanHeader(%q) err = %v, want %v", tc.in, err, tc.e)
		}
	}
}

func TestIsHeaderLine(t *testing.T) {
	for _, tc := range []struct {
		in string
		ok bool
	}{
		{"users[2]{id,name}:", true},
		{"version: 2", true},
		{"nested:", true},
		{"1,Alice,admin", false},
		{"http://example.com", false},
		{"note: see https://x", true},
		{"a,b,c", false},
		{"", false},
	} {
		if got := IsHeaderLine(tc.in); got != tc.ok {
			t.Errorf("IsHeaderLine(%q) = %v, want %v", tc.in, got, tc.ok)
		}
	}
}

func TestValidNames(t *testing.T) {
	for _, tc := range []struct {
		v           string
		name, field bool
	}{
		{"users", true, true},
		{"foo-bar", true, true},
		{"a.b/c@d", true, true},
		{"", false, false},
		{"a b", false, true},
		{"b:c", false, false},
		{" pad", false, false},
	} {
		if got := ValidEntityName(tc.v); got != tc.name {
			t.Errorf("ValidEntityName(%q) = %v, want %v", tc.v, got, tc.name)
		}
		if got := ValidFieldName(tc.v); got != tc.field {
			t.Errorf("ValidFieldName(%q) = %v, want %v", tc.v, got, tc.field)
		}
	}
}

// ScanHeader tolerates a colon inside a field list, but the header scan
// that ends data rows does not, so emission must never produce one.
func TestHeaderFieldColon(t *testing.T) {
	h, err := ScanHeader("x{b:c}:")
	if err != nil {
		t.Fatalf("ScanHeader: %v", err)
	}
	if !reflect.DeepEqual(h.Fields, []string{"b:c"}) {
		t.Errorf("fields = %v, want [b:c]", h.Fields)
	}
	if IsHeaderLine("x{b:c}:") {
		t.Error("IsHeaderLine accepted a field list containing a colon")
	}
	if ValidFieldName("b:c") {
		t.Error("ValidFieldName accepted a colon")
	}
}

func TestHeaderString(t *testing.T) {
	for _, in := range []string{
		"users[2]{id,name,role}:",
		"tags[3]:",
		"config{debug,timeout}:",
		"nested:",
	} {
		h, err := ScanHeader(in)
		if err != nil {
			t.Fatalf("ScanHeader(%q): %v", in, err)
		}
		if got := h.String(); got != in {
			t.Errorf("Header.String() = %q, want %q", got, in)
		}
	}
}
