package check

import (
	"strings"

	"github.com/revelaction/udcheck/langdata"
	sent "github.com/revelaction/udcheck/sentence"
	"github.com/revelaction/udcheck/tree"
)

// depsPresence checks that enhanced annotation is given for all nodes of a
// sentence or none, and for all sentences of a file or none.
func depsPresence(ctx *Context) {
	st := ctx.State
	s := ctx.Sentence

	if !ctx.Enhanced {
		if st.BasicOnlyLine == 0 {
			st.BasicOnlyLine = s.Start
		}
		if st.EnhancedLine > 0 {
			ctx.Errorf("edeps-only-sometimes", "Enhanced graph missing in this sentence although it was present in the sentence starting at line %d.", st.EnhancedLine)
		}
		for _, n := range s.EmptyNodes() {
			ctx.ErrorNode(n, "empty-node-without-deps", "Empty node %s without an enhanced graph.", n.ID)
		}
		return
	}

	if st.EnhancedLine == 0 {
		st.EnhancedLine = s.Start
	}
	if st.BasicOnlyLine > 0 {
		ctx.Errorf("edeps-only-sometimes", "Enhanced graph present in this sentence but missing in the sentence starting at line %d.", st.BasicOnlyLine)
	}

	for _, n := range s.Nodes {
		if n.Kind == sent.Range || n.Deps() != sent.Empty {
			continue
		}
		if n.Kind == sent.EmptyNode {
			ctx.ErrorNode(n, "empty-node-without-deps", "Empty node %s without DEPS.", n.ID)
			continue
		}
		ctx.ErrorNode(n, "deps-only-sometimes", "DEPS missing on node %s although other nodes of the sentence have it.", n.ID)
	}
}

// buildGraph builds the enhanced graph and checks that every node is
// reachable from the root.
func buildGraph(ctx *Context) {
	if !ctx.Enhanced {
		return
	}
	g, problems := tree.BuildGraph(ctx.Sentence)
	reportProblems(ctx, problems)
	if g == nil {
		return
	}

	for _, id := range g.Unconnected() {
		n := g.Node(id)
		ctx.ErrorNode(n, tree.UnconnectedEGraph, "Enhanced graph is not connected: node %s is not reachable from 0.", id)
	}
	ctx.Graph = g
}

func enhancedRoot(ctx *Context) {
	if ctx.Graph == nil {
		return
	}
	for _, id := range ctx.Graph.Nodes {
		n := ctx.Graph.Node(id)
		for _, a := range ctx.Graph.In[id] {
			isRoot := a.Rel == "root"
			switch {
			case a.Head == sent.Root && !isRoot:
				ctx.ErrorNode(n, "enhanced-0-is-not-root", "Enhanced relation type must be 'root' if head is 0. Now: '%s'.", a.Rel)
			case a.Head != sent.Root && isRoot:
				ctx.ErrorNode(n, "enhanced-root-is-not-0", "Enhanced relation type cannot be 'root' if head is not 0. Now head is %s.", a.Head)
			}
		}
	}
}

func edeprelUniversal(ctx *Context) {
	n := ctx.Node
	if n.Kind == sent.Range || n.Deps() == sent.Empty {
		return
	}
	pairs, _ := sent.ParseDeps(n.Deps())
	u := langdata.Universal()
	for _, d := range pairs {
		if d.Rel == "ref" {
			continue
		}
		if !u.HasDeprel(d.Rel) {
			base, _, _ := strings.Cut(d.Rel, ":")
			ctx.Errorf("unknown-edeprel", "Unknown enhanced relation type '%s' in '%s'.", base, d.Raw)
		}
	}
}

func edeprelLang(ctx *Context) {
	n := ctx.Node
	if n.Kind == sent.Range || n.Deps() == sent.Empty || !ctx.LanguageSpecific(n) {
		return
	}
	spec := ctx.SpecFor(n)
	if len(spec.Deprels) == 0 {
		return
	}
	pairs, _ := sent.ParseDeps(n.Deps())
	for _, d := range pairs {
		if !spec.HasEdeprel(d.Rel) {
			ctx.Errorf("edeprel-not-permitted", "Enhanced relation type '%s' is not permitted in language '%s'.", d.Rel, spec.Lang)
		}
	}
}
