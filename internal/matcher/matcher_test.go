package matcher

import (
	"context"
	"reflect"
	"testing"
)

func TestRatio(t *testing.T) {
	table := []struct {
		a, b string
		want int
	}{
		{"pepsi max", "pepsi max", 100},
		{"pepsi max 33cl", "pepsi max", 78},
		{"pepsi max 50cl", "pepsi max 33cl", 86},
		// 87.5 and 12.5 round to the even neighbour
		{"abcdefgh", "abcdefgx", 88},
		{"abcdefgh", "aijklmno", 12},
		{"", "pepsi max", 0},
		{"", "", 0},
	}
	for _, c := range table {
		if got := Ratio(c.a, c.b); got != c.want {
			t.Fatalf("Ratio(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestBest(t *testing.T) {
	catalog := []string{"pepsi max", "coca cola"}

	if got, ok := Best("pepsi max", catalog); !ok || got != "pepsi max" {
		t.Fatalf("expected exact hit, got %q %v", got, ok)
	}
	if got, ok := Best("xyzxyz", catalog); ok || got != "" {
		t.Fatalf("expected no match, got %q", got)
	}

	// equal scores keep the first candidate
	got, ok := Best("salade cesar", []string{"salade cesar!", "salade cesar?"})
	if !ok || got != "salade cesar!" {
		t.Fatalf("expected first maximal candidate, got %q", got)
	}
}

func TestResolve(t *testing.T) {
	table := []struct {
		name    string
		catalog []string
		key     string
		hit     bool
	}{
		{"pepsi max", []string{"pepsi max", "coca cola"}, "pepsi max", true},
		{"pepsi max 33cl", []string{"pepsi max", "coca cola"}, "pepsi max", false},
		{"pepsi max 50cl", []string{"pepsi max 33cl"}, "pepsi max", true},
		{"xyzxyz", []string{"pepsi max", "coca cola"}, "xyzxyz", false},
		{"eau 50 cl", nil, "eau", false},
	}
	for _, c := range table {
		key, hit := Resolve(c.name, c.catalog)
		if key != c.key || hit != c.hit {
			t.Fatalf("Resolve(%q) = %q %v, want %q %v", c.name, key, hit, c.key, c.hit)
		}
	}
}

func TestStripVolume(t *testing.T) {
	table := map[string]string{
		"pepsi max 33cl":   "pepsi max",
		"cristaline 50 cl": "cristaline",
		"eau 1cl":          "eau 1cl",
		"coca cola":        "coca cola",
	}
	for in, want := range table {
		if got := StripVolume(in); got != want {
			t.Fatalf("StripVolume(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMatchIndependentOfWorkers(t *testing.T) {
	names := []string{"pepsi max 33cl", "salade cesar", "xyzxyz", "pepsi max 33cl", "cookie", "coca cola 50cl"}
	catalog := []string{"pepsi max", "salade cesar", "cookie", "coca cola", "cookie"}

	ref, err := Match(context.Background(), names, catalog, 1)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if len(ref.Names) != 5 {
		t.Fatalf("expected 5 distinct names, got %v", ref.Names)
	}
	for _, w := range []int{0, 2, 3, 16} {
		got, err := Match(context.Background(), names, catalog, w)
		if err != nil {
			t.Fatalf("match with %d workers: %v", w, err)
		}
		if !reflect.DeepEqual(got.Keys, ref.Keys) || !reflect.DeepEqual(got.Hits, ref.Hits) {
			t.Fatalf("%d workers: got %v %v, want %v %v", w, got.Keys, got.Hits, ref.Keys, ref.Hits)
		}
	}

	if key, hit := ref.Key("salade cesar"); key != "salade cesar" || !hit {
		t.Fatalf("unexpected key %q %v", key, hit)
	}
	if key, hit := ref.Key("pepsi max 33cl"); key != "pepsi max" || hit {
		t.Fatalf("unexpected key %q %v", key, hit)
	}
	if ref.Matched() != 2 {
		t.Fatalf("expected 2 catalog hits, got %d", ref.Matched())
	}
	if got := ref.Unmatched(); !reflect.DeepEqual(got, []string{"pepsi max 33cl", "xyzxyz", "coca cola 50cl"}) {
		t.Fatalf("unexpected unmatched list %v", got)
	}
	want := map[string]string{"pepsi max 33cl": "pepsi max", "coca cola 50cl": "coca cola"}
	if got := ref.Rewritten(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected rewrites %v", got)
	}
}

func TestMatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Match(ctx, []string{"cookie"}, []string{"cookie"}, 2); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestMatchEmpty(t *testing.T) {
	res, err := Match(context.Background(), nil, []string{"cookie"}, 4)
	if err != nil || len(res.Names) != 0 {
		t.Fatalf("expected empty result, got %+v %v", res, err)
	}
}
