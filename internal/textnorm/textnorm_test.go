package textnorm

import "testing"

func TestFold(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Crème Brûlée", "creme brulee"},
		{"GÂTEAU Basque", "gateau basque"},
		{"bœuf bourguignon", "boeuf bourguignon"},
		{"Anti-Gaspi Desserts", "anti-gaspi desserts"},
		{"ice tea pêche 33cl", "ice tea peche 33cl"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Fold(c.in); got != c.want {
			t.Fatalf("Fold(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
