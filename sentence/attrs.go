package sentence

import (
	"fmt"
	"strings"
)

// Attr is a name=value pair of the FEATS or MISC column.
type Attr struct {
	Name  string
	Value string

	// HasValue is false when the item carries no "=".
	HasValue bool
}

// ParseAttrs splits a FEATS or MISC cell on "|" and every item on the first
// "=". "_" yields no attributes.
func ParseAttrs(cell string) []Attr {
	if cell == Empty || cell == "" {
		return nil
	}

	items := strings.Split(cell, "|")
	attrs := make([]Attr, 0, len(items))
	for _, item := range items {
		name, value, found := strings.Cut(item, "=")
		attrs = append(attrs, Attr{Name: name, Value: value, HasValue: found})
	}
	return attrs
}

// Values splits a feature value into its comma separated parts.
func (a Attr) Values() []string {
	return strings.Split(a.Value, ",")
}

// Dep is one head:relation pair of the DEPS column.
type Dep struct {
	Head NodeID
	Rel  string

	// Raw is the text of the pair as it appears in the cell.
	Raw string
}

// ParseDeps splits a DEPS cell. Pairs are returned in input order; "_" yields
// none. The first malformed pair stops parsing.
func ParseDeps(cell string) ([]Dep, error) {
	if cell == Empty || cell == "" {
		return nil, nil
	}

	items := strings.Split(cell, "|")
	deps := make([]Dep, 0, len(items))
	for _, item := range items {
		head, rel, found := strings.Cut(item, ":")
		if !found || rel == "" {
			return deps, fmt.Errorf("pair %q is not head:relation", item)
		}
		id, err := ParseEHead(head)
		if err != nil {
			return deps, fmt.Errorf("pair %q: %w", item, err)
		}
		deps = append(deps, Dep{Head: id, Rel: rel, Raw: item})
	}
	return deps, nil
}
