package catalog

import "testing"

func TestDecodeLabel(t *testing.T) {
	table := []struct {
		in                                   string
		category, name, container, shelfLife string
	}{
		// last segment carries the marker
		{"2 | Lasagnes | Barquette | j+3", "2", "lasagnes", "barquette", "j+3"},
		// several container segments are joined
		{"Plat | Wok Poulet | Bol | Kraft | j+2", "plat", "wok poulet", "bol kraft", "j+2"},
		// no marker: everything after the name is container
		{"Dessert | Cookie | Sachet", "dessert", "cookie", "sachet", ""},
		// the whole last segment is the shelf life when it carries the marker
		{"Entree | Taboulé | Pot 250g j+4", "entree", "taboulé", "", "pot 250g j+4"},
		// marker left inside the container: its last word becomes the shelf life
		{"Plat | Chili | Bol j+2 | Kraft", "plat", "chili", "bol j+2", "kraft"},
		{"3 | Brownie", "3", "brownie", "", ""},
		{"Pepsi Max", "pepsi max", "", "", ""},
		{"", "", "", "", ""},
	}
	for _, c := range table {
		got := DecodeLabel(c.in)
		want := Label{Category: c.category, Name: c.name, Container: c.container, ShelfLife: c.shelfLife}
		if got != want {
			t.Fatalf("DecodeLabel(%q) = %+v, want %+v", c.in, got, want)
		}
	}
}

func TestExcluded(t *testing.T) {
	for _, in := range []string{"TEST SOLANID", "1 | Solanid Pomme | sac", "Arena test"} {
		if !Excluded(in) {
			t.Fatalf("%q should be excluded", in)
		}
	}
	for _, in := range []string{"2 | Lasagnes", "", "Salade Solaire"} {
		if Excluded(in) {
			t.Fatalf("%q should not be excluded", in)
		}
	}
}
