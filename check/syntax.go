package check

import (
	"slices"
	"strconv"
	"strings"

	"github.com/revelaction/udcheck/graph"
	"github.com/revelaction/udcheck/tree"
)

// buildTree builds the basic tree. Node checks run only when it succeeds.
func buildTree(ctx *Context) {
	t, problems := tree.Build(ctx.Sentence)
	reportProblems(ctx, problems)
	ctx.Tree = t
}

// current returns the tree index of the node being checked.
func current(ctx *Context) int {
	return ctx.Node.ID.Major
}

// uposDeprel checks that relation and part of speech agree.
func uposDeprel(ctx *Context) {
	n := ctx.Node
	tag := n.UPOS()
	rel := n.UDeprel()
	i := current(ctx)

	// ExtPos, fixed and goeswith let a word act as another category
	_, hasExtPos := n.Feat("ExtPos")
	if hasExtPos || len(ctx.Tree.ChildrenWith(i, "fixed", "goeswith")) > 0 {
		if rel == "punct" && tag != "PUNCT" {
			ctx.Errorf("rel-upos-punct", "'punct' must be 'PUNCT' but it is '%s'.", tag)
		}
		return
	}

	allowed := map[string][]string{
		"det":    {"DET", "PRON"},
		"nummod": {"NUM"},
		"advmod": {"ADV", "ADJ", "CCONJ", "DET", "PART", "SYM"},
		"expl":   {"PRON", "DET", "PART"},
		"aux":    {"AUX"},
		"cop":    {"AUX", "PRON", "DET", "SYM"},
		"punct":  {"PUNCT"},
	}
	if tags, ok := allowed[rel]; ok && !slices.Contains(tags, tag) {
		ctx.Errorf("rel-upos-"+rel, "'%s' should be '%s' but it is '%s'.", rel, strings.Join(tags, "' or '"), tag)
	}

	if tag == "PUNCT" && rel != "punct" && rel != "root" {
		ctx.Errorf("upos-rel-punct", "'PUNCT' must be 'punct' but it is '%s'.", n.Deprel())
	}
}

// leftToRight checks relations whose head must precede the dependent.
func leftToRight(ctx *Context) {
	i := current(ctx)
	rel := ctx.Node.UDeprel()
	switch rel {
	case "conj", "fixed", "flat", "goeswith", "appos":
	default:
		return
	}
	if p := ctx.Tree.Parents[i]; p > i {
		ctx.Errorf("right-to-left-"+rel, "Relation '%s' must go left-to-right.", rel)
	}
}

func subjectsObjects(ctx *Context) {
	i := current(ctx)
	var subjects, objects []string
	for _, c := range ctx.Tree.Children[i] {
		// nsubj:outer and csubj:outer may co-occur with an inner subject
		if strings.HasSuffix(ctx.Tree.Deprel(c), ":outer") {
			continue
		}
		switch ctx.Tree.UDeprel(c) {
		case "nsubj", "csubj":
			subjects = append(subjects, strconv.Itoa(c))
		case "obj":
			objects = append(objects, strconv.Itoa(c))
		}
	}
	if len(subjects) > 1 {
		ctx.Errorf("too-many-subjects", "Multiple subjects [%s] not subtyped as ':outer'.", strings.Join(subjects, ", "))
	}
	if len(objects) > 1 {
		ctx.Errorf("too-many-objects", "Multiple direct objects [%s] under the predicate.", strings.Join(objects, ", "))
	}
}

func orphan(ctx *Context) {
	i := current(ctx)
	if ctx.Node.UDeprel() != "orphan" {
		return
	}
	p := ctx.Tree.Parents[i]
	prel := ctx.Tree.UDeprel(p)
	if p == 0 {
		prel = "root"
	}
	switch prel {
	case "root", "conj", "parataxis", "csubj", "ccomp", "advcl", "acl", "reparandum":
	default:
		ctx.Warnf("orphan-parent", "The parent of 'orphan' should normally be 'conj' but it is '%s'.", prel)
	}
}

// functionalLeaves checks that function words have no dependents besides a
// small set of permitted ones.
func functionalLeaves(ctx *Context) {
	i := current(ctx)
	rel := ctx.Node.UDeprel()

	var testID string
	var allowed []string
	switch rel {
	case "mark", "case":
		testID = "leaf-mark-case"
		allowed = []string{"advmod", "obl", "goeswith", "fixed", "reparandum", "conj", "cc", "punct"}
	case "aux", "cop":
		testID = "leaf-aux-cop"
		allowed = []string{"goeswith", "fixed", "reparandum", "conj", "cc", "punct", "advmod"}
	case "cc":
		testID = "leaf-cc"
		allowed = []string{"goeswith", "fixed", "reparandum", "conj", "punct"}
	case "fixed":
		testID = "leaf-fixed"
		allowed = []string{"goeswith", "reparandum", "conj", "punct"}
	case "goeswith":
		testID = "leaf-goeswith"
	case "punct":
		testID = "leaf-punct"
	default:
		return
	}

	for _, c := range ctx.Tree.Children[i] {
		crel := ctx.Tree.UDeprel(c)
		if slices.Contains(allowed, crel) {
			continue
		}
		ctx.Errorf(testID, "'%s' not expected to have children (%d:%s:%s).", rel, c, ctx.Tree.Node(c).Form(), ctx.Tree.Deprel(c))
	}
}

// headAndChildren returns i and its children attached with rel, sorted.
func headAndChildren(t *tree.Tree, i int, rel string) []int {
	ids := append([]int{i}, t.ChildrenWith(i, rel)...)
	slices.Sort(ids)
	return ids
}

func fixedSpan(ctx *Context) {
	i := current(ctx)
	if len(ctx.Tree.ChildrenWith(i, "fixed")) == 0 {
		return
	}
	if ids := headAndChildren(ctx.Tree, i, "fixed"); !graph.IsContiguous(ids) {
		ctx.Warnf("fixed-gap", "Gaps in fixed expression %s.", joinIDs(ids))
	}
}

func goeswithSpan(ctx *Context) {
	i := current(ctx)
	if len(ctx.Tree.ChildrenWith(i, "goeswith")) == 0 {
		return
	}
	ids := headAndChildren(ctx.Tree, i, "goeswith")
	if !graph.IsContiguous(ids) {
		ctx.Errorf("goeswith-gap", "Gaps in goeswith group %s.", joinIDs(ids))
	}
	for _, id := range ids[:len(ids)-1] {
		if ctx.Tree.Node(id).NoSpaceAfter() {
			ctx.Errorf("goeswith-nospace", "'goeswith' cannot connect nodes that are not separated by whitespace: %d has SpaceAfter=No.", id)
		}
	}
}

// punctProjectivity checks that punctuation neither attaches
// nonprojectively nor causes nonprojectivity of other edges.
func punctProjectivity(ctx *Context) {
	i := current(ctx)
	if ctx.Node.UDeprel() != "punct" {
		return
	}
	t := ctx.Tree

	if gap := graph.Gap(t.Parents, t.Children, i); len(gap) > 0 {
		ctx.Errorf("punct-is-nonproj", "Punctuation must not be attached non-projectively over nodes %s.", joinIDs(gap))
	}
	if crossing := graph.Crossing(t.Parents, i); len(crossing) > 0 {
		ctx.Errorf("punct-causes-nonproj", "Punctuation must not cause non-projectivity of nodes %s.", joinIDs(crossing))
	}
}

func joinIDs(ids []int) string {
	s := make([]string, len(ids))
	for i, id := range ids {
		s[i] = strconv.Itoa(id)
	}
	return "[" + strings.Join(s, ", ") + "]"
}
