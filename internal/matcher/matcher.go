// Package matcher maps POS product names onto catalog product names with a
// Levenshtein similarity ratio.
package matcher

import (
	"context"
	"math"
	"regexp"
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"
	"golang.org/x/sync/errgroup"
)

// Threshold is the minimum ratio a catalog name needs to be accepted.
const Threshold = 80

var volume = regexp.MustCompile(`\s*(\d{2,3}\s?cl)\b`)

// Ratio scores a against b on a 0-100 scale: the share of runes that
// survive an insert/delete-only edit, rounded half to even.
func Ratio(a, b string) int {
	r := levenshtein.RatioForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	return int(math.RoundToEven(r * 100))
}

// Best returns the first candidate with the highest ratio at or above
// Threshold.
func Best(name string, candidates []string) (string, bool) {
	best, score := "", 0
	for _, c := range candidates {
		if s := Ratio(name, c); s > score && s >= Threshold {
			best, score = c, s
		}
	}
	return best, score > 0
}

// StripVolume removes "33cl" style volume tokens.
func StripVolume(s string) string {
	return strings.TrimSpace(volume.ReplaceAllString(s, ""))
}

// Resolve is the join key for name: the best catalog name, or name itself
// when nothing qualifies, with volumes stripped.
func Resolve(name string, candidates []string) (string, bool) {
	m, ok := Best(name, candidates)
	if !ok {
		m = name
	}
	return StripVolume(m), ok
}

// Result holds the resolution of every distinct order name.
type Result struct {
	Names  []string // distinct order names in encounter order
	Keys   []string
	Hits   []bool
	byName map[string]int
}

// Key returns the join key of an order name and whether a catalog name was
// found for it. Unknown names resolve to themselves.
func (r *Result) Key(name string) (string, bool) {
	if r == nil {
		return StripVolume(name), false
	}
	i, ok := r.byName[name]
	if !ok {
		return StripVolume(name), false
	}
	return r.Keys[i], r.Hits[i]
}

// Matched counts names resolved against the catalog.
func (r *Result) Matched() int {
	n := 0
	for _, h := range r.Hits {
		if h {
			n++
		}
	}
	return n
}

// Unmatched lists the names that fell back to themselves.
func (r *Result) Unmatched() []string {
	var out []string
	for i, h := range r.Hits {
		if !h {
			out = append(out, r.Names[i])
		}
	}
	return out
}

// Rewritten maps each name to its join key when the two differ.
func (r *Result) Rewritten() map[string]string {
	out := map[string]string{}
	for i, n := range r.Names {
		if r.Keys[i] != n {
			out[n] = r.Keys[i]
		}
	}
	return out
}

// Match resolves every distinct name against the distinct candidates. The
// names are split into contiguous chunks scored by up to workers
// goroutines; the outcome does not depend on the worker count.
func Match(ctx context.Context, names, candidates []string, workers int) (*Result, error) {
	res := &Result{byName: map[string]int{}}
	for _, n := range names {
		if _, ok := res.byName[n]; ok {
			continue
		}
		res.byName[n] = len(res.Names)
		res.Names = append(res.Names, n)
	}
	res.Keys = make([]string, len(res.Names))
	res.Hits = make([]bool, len(res.Names))
	cands := distinct(candidates)

	if workers < 1 {
		workers = 1
	}
	size := (len(res.Names) + workers - 1) / workers
	if size == 0 {
		return res, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	for lo := 0; lo < len(res.Names); lo += size {
		lo, hi := lo, min(lo+size, len(res.Names))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				res.Keys[i], res.Hits[i] = Resolve(res.Names[i], cands)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func distinct(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
