package token

import (
	"errors"
	"testing"
)

func tokTypes(t *testing.T, src string) []TokenType {
	t.Helper()
	toks, err := Tokenize(nil, []byte(src))
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", src, err)
	}
	res := make([]TokenType, len(toks))
	for i := range toks {
		res[i] = toks[i].Type
	}
	return res
}

func TestTokenizeJSON(t *testing.T) {
	for _, tc := range []struct {
		in    string
		types []TokenType
	}{
		{`{}`, []TokenType{TLCurl, TRCurl}},
		{`[]`, []TokenType{TLSquare, TRSquare}},
		{`null`, []TokenType{TNull}},
		{`true`, []TokenType{TTrue}},
		{`false`, []TokenType{TFalse}},
		{`42`, []TokenType{TInteger}},
		{`-1.5e3`, []TokenType{TFloat}},
		{`"hi"`, []TokenType{TString}},
		{
			`{"a": [1, "x"]}`,
			[]TokenType{TLCurl, TString, TColon, TLSquare, TInteger, TComma, TString, TRSquare, TRCurl},
		},
	} {
		got := tokTypes(t, tc.in)
		if len(got) != len(tc.types) {
			t.Fatalf("Tokenize(%q) = %v, want %v", tc.in, got, tc.types)
		}
		for i := range got {
			if got[i] != tc.types[i] {
				t.Errorf("Tokenize(%q)[%d] = %v, want %v", tc.in, i, got[i], tc.types[i])
			}
		}
	}
}

func TestTokenizeErrs(t *testing.T) {
	for _, tc := range []struct {
		in string
		e  error
	}{
		{`"open`, ErrUnterminatedQuote},
		{`tru`, nil},
		{`01`, ErrNumberLeadingZero},
		{`@`, nil},
	} {
		_, err := Tokenize(nil, []byte(tc.in))
		if err == nil {
			t.Errorf("Tokenize(%q): expected error", tc.in)
			continue
		}
		if tc.e != nil && !errors.Is(err, tc.e) {
			t.Errorf("Tokenize(%q) err = %v, want %v", tc.in, err, tc.e)
		}
	}
}

func TestTokenPos(t *testing.T) {
	toks, err := Tokenize(nil, []byte("{\n  \"a\": 1\n}"))
	if err != nil {
		t.Fatal(err)
	}
	// the "a" token sits on line 1 (0-based)
	if got := toks[1].Pos.Line(); got != 1 {
		t.Errorf("token line = %d, want 1", got)
	}
}

func TestUnquoteJSON(t *testing.T) {
	for _, tc := range []struct {
		in  string
		out string
	}{
		{`"hi"`, "hi"},
		{`"a\"b"`, `a"b`},
		{`"aéb"`, "aéb"},
		{`"😀"`, "\U0001F600"},
		{`"tab\there"`, "tab\there"},
		{`"A"`, "A"},
		{`"aéb"`, "aéb"},
		{`"😀"`, "\U0001F600"},
		{`"\ud800"`, "�"},
	} {
		out, err := UnquoteJSON(tc.in)
		if err != nil {
			t.Fatalf("UnquoteJSON(%s): %v", tc.in, err)
		}
		if out != tc.out {
			t.Errorf("UnquoteJSON(%s) = %q, want %q", tc.in, out, tc.out)
		}
	}
}

func TestUnquoteJSONErrs(t *testing.T) {
	for _, tc := range []struct {
		in string
		e  error
	}{
		{`"\uzz11"`, ErrInvalidEscape},
		{`"\u12"`, ErrInvalidEscape},
		{`"\q"`, ErrInvalidEscape},
		{`"open`, ErrUnterminatedQuote},
	} {
		if _, err := UnquoteJSON(tc.in); !errors.Is(err, tc.e) {
			t.Errorf("UnquoteJSON(%s) err = %v, want %v", tc.in, err, tc.e)
		}
	}
}

func TestQuoteJSONRoundTrip(t *testing.T) {
	for _, in := range []string{
		"",
		"hello",
		"line1\nline2",
		"\x01control",
		"unicode é 😀",
		`quote " and \ backslash`,
	} {
		q := QuoteJSON(in)
		out, err := UnquoteJSON(q)
		if err != nil {
			t.Fatalf("UnquoteJSON(%s): %v", q, err)
		}
		if out != in {
			t.Errorf("round trip %q -> %s -> %q", in, q, out)
		}
	}
}
