package category

import "regexp"

// Subject is the folded view of a merged line that rules look at.
type Subject struct {
	Product string // order product name
	Name    string // catalog product name, backfilled when unmatched
	Display string // catalog product name as exported
	Family  string // assigned family, category rules only
	Code    string // catalog category, category rules only
}

// Rule assigns Label when Match holds. Rules are evaluated in order and the
// first match wins.
type Rule struct {
	Name  string
	Match func(s Subject) bool
	Label func(s Subject) string
}

// Apply returns the label of the first matching rule.
func Apply(rules []Rule, s Subject) (string, string, bool) {
	for _, r := range rules {
		if r.Match(s) {
			return r.Label(s), r.Name, true
		}
	}
	return "", "", false
}

func Const(label string) func(Subject) string {
	return func(Subject) string { return label }
}

// NameMatches builds a predicate on the catalog name.
func NameMatches(expr string) func(Subject) bool {
	re := regexp.MustCompile(expr)
	return func(s Subject) bool { return re.MatchString(s.Name) }
}

// FamilyMatches builds a predicate on the assigned family.
func FamilyMatches(expr string) func(Subject) bool {
	re := regexp.MustCompile(expr)
	return func(s Subject) bool { return re.MatchString(s.Family) }
}

// ProductMatches builds a predicate on the order product name.
func ProductMatches(expr string) func(Subject) bool {
	re := regexp.MustCompile(expr)
	return func(s Subject) bool { return re.MatchString(s.Product) }
}
