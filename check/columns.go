package check

import (
	"slices"
	"strings"

	"github.com/revelaction/udcheck/langdata"
	sent "github.com/revelaction/udcheck/sentence"
)

func mwtEmptyFields(ctx *Context) {
	n := ctx.Node
	switch n.Kind {
	case sent.Range:
		for i := sent.LEMMA; i < sent.MISC; i++ {
			if n.Col(i) != sent.Empty {
				ctx.Errorf("mwt-nonempty-field", "A multi-word token line must have '_' in the column %s. Now: '%s'.", sent.ColumnNames[i], n.Col(i))
			}
		}
	case sent.EmptyNode:
		for _, i := range []int{sent.HEAD, sent.DEPREL} {
			if n.Col(i) != sent.Empty {
				ctx.Errorf("empty-node-nonempty-field", "An empty node must have '_' in the column %s. Now: '%s'.", sent.ColumnNames[i], n.Col(i))
			}
		}
	}
}

func upos(ctx *Context) {
	n := ctx.Node
	if n.Kind == sent.Range {
		return
	}
	tag := n.UPOS()
	if n.Kind == sent.EmptyNode && tag == sent.Empty {
		return
	}
	if !langdata.Universal().HasUPOS(tag) {
		ctx.Errorf("unknown-upos", "Unknown UPOS tag: '%s'.", tag)
	}
}

func feats(ctx *Context) {
	n := ctx.Node
	if n.Kind == sent.Range || n.Feats() == sent.Empty {
		return
	}

	attrs := sent.ParseAttrs(n.Feats())
	seen := map[string]bool{}
	var names []string
	for _, a := range attrs {
		if !a.HasValue || !sent.Patterns.FeatName.MatchString(a.Name) {
			ctx.Errorf("invalid-feature", "Spurious morphological feature: '%s=%s'. Should be of the form Feature=Value and must start with [A-Z0-9] and only contain [A-Za-z0-9].", a.Name, a.Value)
			continue
		}
		if seen[a.Name] {
			ctx.Errorf("repeated-feature", "Repeated features are disallowed: '%s'.", a.Name)
		}
		seen[a.Name] = true
		names = append(names, a.Name)

		values := a.Values()
		vseen := map[string]bool{}
		for _, v := range values {
			if !sent.Patterns.FeatValue.MatchString(v) {
				ctx.Errorf("invalid-feature-value", "Spurious value '%s' in '%s=%s'. Must start with [A-Z0-9] and only contain [A-Za-z0-9].", v, a.Name, a.Value)
				continue
			}
			if vseen[v] {
				ctx.Errorf("repeated-feature-value", "Repeated feature values are disallowed: '%s=%s'.", a.Name, a.Value)
			}
			vseen[v] = true
		}
		if !slices.IsSortedFunc(values, compareFold) {
			ctx.Errorf("unsorted-feature-values", "If a feature has multiple values, these must be sorted: '%s=%s'.", a.Name, a.Value)
		}
	}

	if !slices.IsSortedFunc(names, compareFold) {
		ctx.Errorf("unsorted-features", "Morphological features must be sorted: '%s'.", n.Feats())
	}
}

// compareFold orders strings case insensitively, which is how features and
// their values are sorted.
func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func deprel(ctx *Context) {
	n := ctx.Node
	if n.Kind != sent.Word {
		return
	}
	rel := n.Deprel()
	if !sent.Patterns.Deprel.MatchString(rel) {
		ctx.Errorf("invalid-deprel", "Invalid DEPREL value '%s'.", rel)
		return
	}
	if !langdata.Universal().HasDeprel(rel) {
		ctx.Errorf("unknown-deprel", "Unknown DEPREL label: '%s'.", rel)
	}
}

func deps(ctx *Context) {
	n := ctx.Node
	if n.Kind == sent.Range || n.Deps() == sent.Empty {
		return
	}

	pairs, err := sent.ParseDeps(n.Deps())
	if err != nil {
		ctx.Errorf("invalid-deps", "Failed to parse DEPS: %v.", err)
		return
	}

	seen := map[sent.NodeID]int{}
	unsorted := false
	for i, d := range pairs {
		if !sent.Patterns.Edeprel.MatchString(d.Rel) {
			ctx.Errorf("invalid-edeprel", "Invalid enhanced relation type: '%s'.", d.Raw)
		}

		// one report per repeated head, wherever the repeat sits
		seen[d.Head]++
		if seen[d.Head] == 2 {
			ctx.Errorf("repeated-deps", "DEPS contain multiple instances of the same head '%s': '%s'.", d.Head, n.Deps())
		}

		if i > 0 && d.Head.Less(pairs[i-1].Head) {
			unsorted = true
		}
	}

	if unsorted {
		ctx.Errorf("unsorted-deps", "DEPS not sorted by head index: '%s'.", n.Deps())
	}
}

func misc(ctx *Context) {
	n := ctx.Node
	cell := n.Misc()
	if cell == sent.Empty {
		return
	}

	seen := map[string]bool{}
	for _, a := range sent.ParseAttrs(cell) {
		item := a.Name
		if a.HasValue {
			item += "=" + a.Value
		}
		switch {
		case item == "":
			ctx.Errorf("empty-misc", "Empty attribute in MISC; possibly misinterpreted vertical bar.")
			continue
		case a.HasValue && a.Name == "":
			ctx.Errorf("empty-misc-key", "Empty MISC attribute name in '%s'.", item)
			continue
		case strings.TrimSpace(item) != item:
			ctx.Errorf("misc-extra-space", "MISC attribute: leading or trailing extra space in '%s'.", item)
		}

		if !a.HasValue {
			continue
		}
		if seen[a.Name] {
			ctx.Warnf("repeated-misc", "MISC attribute '%s' not supposed to occur twice.", a.Name)
		}
		seen[a.Name] = true

		switch a.Name {
		case "SpaceAfter":
			if a.Value != "No" {
				ctx.Warnf("invalid-spaceafter", "'SpaceAfter=%s' is not a valid value, only 'SpaceAfter=No' is.", a.Value)
			}
		case "Lang":
			if !sent.Patterns.LangCode.MatchString(a.Value) {
				ctx.Errorf("invalid-lang", "Invalid language code in 'Lang=%s'.", a.Value)
			}
		}
	}
}

// root checks both directions of HEAD 0 <=> DEPREL root.
func root(ctx *Context) {
	n := ctx.Node
	if n.Kind != sent.Word {
		return
	}
	head, _ := n.Head()
	isRoot := n.UDeprel() == "root"
	switch {
	case head == 0 && !isRoot:
		ctx.Errorf("0-is-not-root", "DEPREL must be 'root' if HEAD is 0. Now: '%s'.", n.Deprel())
	case head != 0 && isRoot:
		ctx.Errorf("root-is-not-0", "DEPREL cannot be 'root' if HEAD is not 0. Now HEAD is %d.", head)
	}
}
