package graph

import (
	"slices"
	"testing"
)

// 0 -> 2, 2 -> 1, 2 -> 4, 4 -> 3, 4 -> 5
var (
	parents  = []int{-1, 2, 0, 4, 2, 4}
	children = [][]int{{2}, {}, {1, 4}, {}, {3, 5}, {}}
)

func TestProjection(t *testing.T) {
	if got := Projection(children, 4); !slices.Equal(got, []int{3, 4, 5}) {
		t.Fatalf("expected [3 4 5], got %v", got)
	}
	if got := Descendants(children, 2); !slices.Equal(got, []int{1, 3, 4, 5}) {
		t.Fatalf("expected [1 3 4 5], got %v", got)
	}
}

func TestAncestors(t *testing.T) {
	anc, ok := Ancestors(parents, 3)
	if !ok || !slices.Equal(anc, []int{4, 2, 0}) {
		t.Fatalf("expected [4 2 0] true, got %v %v", anc, ok)
	}
	if !IsAncestor(parents, 2, 5) {
		t.Fatal("expected 2 to dominate 5")
	}
	if IsAncestor(parents, 5, 5) {
		t.Fatal("a node does not dominate itself")
	}

	cyclic := []int{-1, 2, 1}
	if _, ok := Ancestors(cyclic, 1); ok {
		t.Fatal("expected the walk to fail on a cycle")
	}
}

func TestCycle(t *testing.T) {
	if c := Cycle(parents, 5); c != nil {
		t.Fatalf("expected no cycle, got %v", c)
	}

	cyclic := []int{-1, 2, 3, 1, 1}
	got := Cycle(cyclic, 4)
	slices.Sort(got)
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("expected cycle [1 2 3], got %v", got)
	}
}

func TestGapAndCrossing(t *testing.T) {
	// 1 <- 0, 3 -> 1, 4 -> 3, 2 -> 4: the edge 2 -> 4 jumps over 3
	p := []int{-1, 0, 4, 1, 3, 1}
	c := [][]int{{1}, {3, 5}, {}, {4}, {2}, {}}

	if gap := Gap(p, c, 2); !slices.Equal(gap, []int{3}) {
		t.Fatalf("expected gap [3], got %v", gap)
	}
	if IsProjective(p, c, 2) {
		t.Fatal("expected 2 to be nonprojective")
	}
	if !IsProjective(p, c, 5) {
		t.Fatal("expected 5 to be projective")
	}

	// 3 -> 1 and 2 -> 4 cross
	if got := Crossing(p, 2); len(got) != 0 {
		t.Fatalf("ancestors are never reported, got %v", got)
	}
	p2 := []int{-1, 0, 4, 1, 1}
	if got := Crossing(p2, 3); !slices.Equal(got, []int{2}) {
		t.Fatalf("expected crossing [2], got %v", got)
	}
}

func TestIsContiguous(t *testing.T) {
	if !IsContiguous([]int{3, 4, 5}) {
		t.Fatal("expected contiguous")
	}
	if IsContiguous([]int{3, 5}) {
		t.Fatal("expected a gap")
	}
}

func TestUnreached(t *testing.T) {
	edges := map[string][]string{
		"root": {"a"},
		"a":    {"root", "b"},
		"b":    {"a", "b"},
		"c":    {"d"},
		"d":    {"c"},
	}
	next := func(k string) []string { return edges[k] }

	got := Unreached([]string{"a", "b", "c", "d"}, "root", next)
	if !slices.Equal(got, []string{"c", "d"}) {
		t.Fatalf("expected [c d], got %v", got)
	}
	if r := Reachable("c", next); len(r) != 2 {
		t.Fatalf("expected 2 reachable nodes, got %v", r)
	}
}
