// Package graph implements the graph algorithms the structural checks rely
// on.
//
// Trees are given as parent and children slices indexed by node number, with
// 0 standing for the artificial root: parents[0] is -1 and children[i] lists
// the dependents of i in ascending order. General graphs are given as a
// neighbor function over any comparable node type.
package graph

import (
	"sort"
)

// Projection returns n and every node dominated by n, in ascending order.
// Nodes reachable twice (which only happens in a malformed tree) are listed
// once.
func Projection(children [][]int, n int) []int {
	seen := map[int]bool{n: true}
	stack := []int{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur < 0 || cur >= len(children) {
			continue
		}
		for _, c := range children[cur] {
			if seen[c] {
				continue
			}
			seen[c] = true
			stack = append(stack, c)
		}
	}

	nodes := make([]int, 0, len(seen))
	for id := range seen {
		nodes = append(nodes, id)
	}
	sort.Ints(nodes)
	return nodes
}

// Descendants returns the nodes dominated by n, excluding n itself.
func Descendants(children [][]int, n int) []int {
	proj := Projection(children, n)
	out := proj[:0]
	for _, id := range proj {
		if id != n {
			out = append(out, id)
		}
	}
	return out
}

// Ancestors walks from n towards the root and returns the ancestors of n,
// nearest first, ending with 0. ok is false when the walk revisits a node
// (a cycle) or leaves the node range; the partial path is returned.
func Ancestors(parents []int, n int) (ancestors []int, ok bool) {
	visited := map[int]bool{n: true}
	cur := n
	for {
		if cur < 0 || cur >= len(parents) {
			return ancestors, false
		}
		p := parents[cur]
		if p < 0 {
			// cur is the root
			return ancestors, true
		}
		if visited[p] {
			return ancestors, false
		}
		visited[p] = true
		ancestors = append(ancestors, p)
		cur = p
	}
}

// IsAncestor reports whether a dominates n. A node does not dominate itself.
func IsAncestor(parents []int, a, n int) bool {
	anc, _ := Ancestors(parents, n)
	for _, x := range anc {
		if x == a {
			return true
		}
	}
	return false
}

// Cycle returns the nodes of a cycle reachable from n by following parents,
// in walk order, or nil when the walk reaches the root.
func Cycle(parents []int, n int) []int {
	pos := map[int]int{}
	var path []int
	cur := n
	for cur >= 0 && cur < len(parents) {
		if i, ok := pos[cur]; ok {
			return path[i:]
		}
		pos[cur] = len(path)
		path = append(path, cur)
		cur = parents[cur]
	}
	return nil
}

// Gap returns the nodes lying strictly between n and its parent that are not
// dominated by the parent. A non-empty gap means the edge is nonprojective.
func Gap(parents []int, children [][]int, n int) []int {
	if n <= 0 || n >= len(parents) {
		return nil
	}
	p := parents[n]
	if p < 0 {
		return nil
	}

	lo, hi := n, p
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi-lo < 2 {
		return nil
	}

	dominated := map[int]bool{}
	for _, id := range Projection(children, p) {
		dominated[id] = true
	}

	var gap []int
	for id := lo + 1; id < hi; id++ {
		if !dominated[id] {
			gap = append(gap, id)
		}
	}
	return gap
}

// IsProjective reports whether the edge from n to its parent has no gap.
func IsProjective(parents []int, children [][]int, n int) bool {
	return len(Gap(parents, children, n)) == 0
}

// Crossing returns the nodes whose edge to their parent crosses the edge of
// n: one end strictly inside the span of n's edge and the other strictly
// outside it. Ancestors of n are not reported; their edges can only cross
// n's edge if n's own attachment is nonprojective.
func Crossing(parents []int, n int) []int {
	if n <= 0 || n >= len(parents) || parents[n] <= 0 {
		return nil
	}

	lo, hi := n, parents[n]
	if lo > hi {
		lo, hi = hi, lo
	}

	anc := map[int]bool{}
	list, _ := Ancestors(parents, n)
	for _, a := range list {
		anc[a] = true
	}

	inside := func(x int) bool { return x > lo && x < hi }
	outside := func(x int) bool { return x < lo || x > hi }

	var crossing []int
	for x := 1; x < len(parents); x++ {
		if x == n || anc[x] {
			continue
		}
		p := parents[x]
		if p <= 0 {
			continue
		}
		if (inside(x) && outside(p)) || (outside(x) && inside(p)) {
			crossing = append(crossing, x)
		}
	}
	return crossing
}

// IsContiguous reports whether the sorted ids form an unbroken run.
func IsContiguous(ids []int) bool {
	for i := 1; i < len(ids); i++ {
		if ids[i] != ids[i-1]+1 {
			return false
		}
	}
	return true
}

// Reachable returns every node reachable from start by repeatedly following
// neighbors, start included. It tolerates cycles and nodes with many heads.
func Reachable[K comparable](start K, neighbors func(K) []K) map[K]bool {
	seen := map[K]bool{start: true}
	queue := []K{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range neighbors(cur) {
			if seen[nb] {
				continue
			}
			seen[nb] = true
			queue = append(queue, nb)
		}
	}
	return seen
}

// Unreached returns the nodes, in the given order, that cannot be reached
// from root.
func Unreached[K comparable](nodes []K, root K, neighbors func(K) []K) []K {
	seen := Reachable(root, neighbors)
	var out []K
	for _, n := range nodes {
		if !seen[n] {
			out = append(out, n)
		}
	}
	return out
}
