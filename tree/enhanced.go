package tree

import (
	"fmt"

	"github.com/revelaction/udcheck/graph"
	sent "github.com/revelaction/udcheck/sentence"
)

// Arc is one enhanced edge.
type Arc struct {
	Head sent.NodeID
	Dep  sent.NodeID
	Rel  string
}

// Graph is the enhanced dependency graph over words and empty nodes. Nodes
// may have several heads and the graph may contain cycles.
type Graph struct {
	// Nodes lists words and empty nodes in input order.
	Nodes []sent.NodeID

	// In holds the incoming arcs of every node, Out the outgoing ones. The
	// root appears only in Out.
	In  map[sent.NodeID][]Arc
	Out map[sent.NodeID][]Arc

	lines map[sent.NodeID]*sent.Node
}

// Node returns the line of id, nil for the root.
func (g *Graph) Node(id sent.NodeID) *sent.Node {
	return g.lines[id]
}

// Neighbors returns the heads and dependents of id, which is the undirected
// closure used for connectivity.
func (g *Graph) Neighbors(id sent.NodeID) []sent.NodeID {
	var nb []sent.NodeID
	for _, a := range g.In[id] {
		nb = append(nb, a.Head)
	}
	for _, a := range g.Out[id] {
		nb = append(nb, a.Dep)
	}
	return nb
}

// Unconnected returns the nodes that cannot be reached from the root.
func (g *Graph) Unconnected() []sent.NodeID {
	return graph.Unreached(g.Nodes, sent.Root, g.Neighbors)
}

// BuildGraph constructs the enhanced graph from the DEPS column of words and
// empty nodes. It assumes the id sequence is valid. Problems are returned for
// heads that do not exist and for self-loops; the graph is nil if any.
func BuildGraph(s *sent.Sentence) (*Graph, []Problem) {
	g := &Graph{
		In:    map[sent.NodeID][]Arc{},
		Out:   map[sent.NodeID][]Arc{},
		lines: map[sent.NodeID]*sent.Node{},
	}

	for _, n := range s.Nodes {
		if n.Kind == sent.Word || n.Kind == sent.EmptyNode {
			g.Nodes = append(g.Nodes, n.ID)
			g.lines[n.ID] = n
		}
	}

	var problems []Problem
	for _, id := range g.Nodes {
		n := g.lines[id]
		deps, err := sent.ParseDeps(n.Deps())
		if err != nil {
			problems = append(problems, Problem{
				Line:    n.Line,
				Node:    id.String(),
				TestID:  InvalidDeps,
				Message: fmt.Sprintf("Failed to parse DEPS: %v", err),
			})
			continue
		}

		for _, d := range deps {
			if d.Head == id {
				problems = append(problems, Problem{
					Line:    n.Line,
					Node:    id.String(),
					TestID:  DepsSelfLoop,
					Message: fmt.Sprintf("Self-loop in DEPS for %s", id),
				})
				continue
			}
			if d.Head != sent.Root && g.lines[d.Head] == nil {
				problems = append(problems, Problem{
					Line:    n.Line,
					Node:    id.String(),
					TestID:  UnknownEHead,
					Message: fmt.Sprintf("Undefined enhanced head reference (no such ID): '%s'", d.Head),
				})
				continue
			}

			a := Arc{Head: d.Head, Dep: id, Rel: d.Rel}
			g.In[id] = append(g.In[id], a)
			g.Out[d.Head] = append(g.Out[d.Head], a)
		}
	}

	if len(problems) > 0 {
		return nil, problems
	}
	return g, nil
}
