package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"12,50 €", "12.5"},
		{"3.2€", "3.2"},
		{"1 234,00", "1234"},
		{" 7 ", "7"},
		{"-0,5", "-0.5"},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", c.in, err)
		}
		if !got.Equal(decimal.RequireFromString(c.want)) {
			t.Fatalf("Parse(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "€", "abc", "1,2,3"} {
		if _, err := Parse(in); err == nil {
			t.Fatalf("Parse(%q) should fail", in)
		}
		if ParseNull(in).Valid {
			t.Fatalf("ParseNull(%q) should be null", in)
		}
	}
}

func TestRound2(t *testing.T) {
	got := Round2(decimal.RequireFromString("3.14159"))
	if got.StringFixed(2) != "3.14" {
		t.Fatalf("unexpected rounding: %s", got)
	}
	if Round2Null(decimal.NullDecimal{}).Valid {
		t.Fatalf("null should stay null")
	}
	if Float(decimal.NullDecimal{}) != nil {
		t.Fatalf("null should export as nil")
	}
	if f := Float(decimal.NewNullDecimal(decimal.RequireFromString("2.5"))); f == nil || *f != 2.5 {
		t.Fatalf("unexpected float export: %v", f)
	}
}
