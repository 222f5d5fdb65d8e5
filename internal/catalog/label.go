package catalog

import "strings"

// Label is the decoded form of a composite Sextan product name.
type Label struct {
	Category  string
	Name      string
	Container string
	ShelfLife string
}

// DecodeLabel splits "category | name | container... | j+N". When the last
// segment does not carry the shelf-life marker everything after the name is
// the container. A container still embedding the marker gives up its last
// word as the shelf life. All parts are lowercased.
func DecodeLabel(value string) Label {
	parts := strings.Split(value, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	var l Label
	l.Category = parts[0]
	if len(parts) > 1 {
		l.Name = parts[1]
	}
	if len(parts) > 2 {
		last := parts[len(parts)-1]
		if strings.Contains(last, ShelfLifeMarker) {
			l.ShelfLife = last
			l.Container = strings.Join(parts[2:len(parts)-1], " ")
		} else {
			l.Container = strings.Join(parts[2:], " ")
		}
	}

	if l.Container != "" && strings.Contains(l.Container, ShelfLifeMarker) {
		words := strings.Fields(l.Container)
		l.ShelfLife = words[len(words)-1]
		l.Container = strings.Join(words[:len(words)-1], " ")
	}

	l.Category = strings.ToLower(l.Category)
	l.Name = strings.ToLower(l.Name)
	l.Container = strings.ToLower(l.Container)
	l.ShelfLife = strings.ToLower(l.ShelfLife)
	return l
}

// Excluded reports whether a raw label names an internal SKU.
func Excluded(label string) bool {
	lower := strings.ToLower(label)
	for _, kw := range ExclusionKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
