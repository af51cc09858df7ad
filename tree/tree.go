// Package tree builds the basic dependency tree and the enhanced dependency
// graph of a sentence and validates the id structure they rest on.
//
// Builders never report incidents themselves. They return Problems carrying
// a stable test id, which the caller turns into incidents.
package tree

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/revelaction/udcheck/graph"
	sent "github.com/revelaction/udcheck/sentence"
)

// Test ids produced by this package.
const (
	WordIDSequence           = "word-id-sequence"
	WordIntervalOut          = "word-interval-out"
	OverlappingWordIntervals = "overlapping-word-intervals"
	MisplacedWordInterval    = "misplaced-word-interval"

	InvalidHead   = "invalid-head"
	UnknownHead   = "unknown-head"
	HeadSelfLoop  = "head-self-loop"
	MissingRoot   = "missing-root"
	MultipleRoots = "multiple-roots"
	NonTree       = "non-tree"

	InvalidDeps       = "invalid-deps"
	UnknownEHead      = "unknown-ehead"
	DepsSelfLoop      = "deps-self-loop"
	UnconnectedEGraph = "unconnected-egraph"
)

// Problem is a structural defect found while building.
type Problem struct {
	Line    int
	Node    string
	TestID  string
	Message string
}

// Tree is the basic dependency tree over the words of a sentence. Index 0 is
// the artificial root; words are 1..Size().
type Tree struct {
	Words    []*sent.Node
	Parents  []int
	Children [][]int

	// Root is the word attached to 0.
	Root int
}

// Size returns the number of words.
func (t *Tree) Size() int {
	return len(t.Words) - 1
}

// Node returns word i, or nil for the root and out of range ids.
func (t *Tree) Node(i int) *sent.Node {
	if i <= 0 || i >= len(t.Words) {
		return nil
	}
	return t.Words[i]
}

// Deprel returns the DEPREL of word i.
func (t *Tree) Deprel(i int) string {
	if n := t.Node(i); n != nil {
		return n.Deprel()
	}
	return ""
}

// UDeprel returns the universal DEPREL of word i, without subtype.
func (t *Tree) UDeprel(i int) string {
	if n := t.Node(i); n != nil {
		return n.UDeprel()
	}
	return ""
}

// ChildrenWith returns the dependents of i whose universal relation is one
// of rels.
func (t *Tree) ChildrenWith(i int, rels ...string) []int {
	var out []int
	for _, c := range t.Children[i] {
		for _, r := range rels {
			if t.UDeprel(c) == r {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// CheckSequence verifies that words are numbered 1..N in order and that
// empty nodes k.1..k.m directly follow word k (or start the sentence when
// k is 0). Ranges are ignored here. Only the first violation is returned.
func CheckSequence(s *sent.Sentence) *Problem {
	var got, want []string
	var first *sent.Node
	expectedWord := 1
	lastWord := 0
	nextMinor := 1

	for _, n := range s.Nodes {
		switch n.Kind {
		case sent.Word:
			got = append(got, n.ID.String())
			want = append(want, strconv.Itoa(expectedWord))
			if n.ID.Major != expectedWord && first == nil {
				first = n
			}
			expectedWord++
			lastWord = n.ID.Major
			nextMinor = 1

		case sent.EmptyNode:
			exp := sent.NodeID{Major: lastWord, Minor: nextMinor}
			got = append(got, n.ID.String())
			want = append(want, exp.String())
			if n.ID != exp && first == nil {
				first = n
			}
			nextMinor++
		}
	}

	// empty nodes alone do not make a sentence
	if expectedWord == 1 {
		return &Problem{
			Line:    s.Start,
			TestID:  WordIDSequence,
			Message: "The sentence has no words",
		}
	}

	if first == nil {
		return nil
	}

	return &Problem{
		Line:    first.Line,
		Node:    first.Col(sent.ID),
		TestID:  WordIDSequence,
		Message: fmt.Sprintf("Words do not form a sequence. Got '%s'. Expected '%s'.", strings.Join(got, ","), strings.Join(want, ",")),
	}
}

// CheckRanges verifies multi-word token ranges: bounds must be existing
// words, ranges must not overlap and each range must be listed right before
// its first word. It assumes CheckSequence passed.
func CheckRanges(s *sent.Sentence) []Problem {
	var problems []Problem
	numWords := len(s.Words())
	prevEnd := 0

	for i, n := range s.Nodes {
		if n.Kind != sent.Range {
			continue
		}
		id := n.Col(sent.ID)

		if n.End > numWords {
			problems = append(problems, Problem{
				Line:    n.Line,
				Node:    id,
				TestID:  WordIntervalOut,
				Message: fmt.Sprintf("Spurious token interval %s (out of range)", id),
			})
			continue
		}

		if n.ID.Major <= prevEnd {
			problems = append(problems, Problem{
				Line:    n.Line,
				Node:    id,
				TestID:  OverlappingWordIntervals,
				Message: fmt.Sprintf("Range overlaps with others: %s", id),
			})
		}
		if n.End > prevEnd {
			prevEnd = n.End
		}

		if next := nextWord(s.Nodes[i+1:]); next == nil || next.ID.Major != n.ID.Major {
			problems = append(problems, Problem{
				Line:    n.Line,
				Node:    id,
				TestID:  MisplacedWordInterval,
				Message: fmt.Sprintf("Multiword range %s must be listed directly before word %d", id, n.ID.Major),
			})
		}
	}

	return problems
}

func nextWord(nodes []*sent.Node) *sent.Node {
	for _, n := range nodes {
		if n.Kind == sent.Word {
			return n
		}
	}
	return nil
}

// Build constructs the basic tree. It assumes CheckSequence passed. When any
// problem is found the returned tree is nil.
func Build(s *sent.Sentence) (*Tree, []Problem) {
	words := s.Words()
	size := len(words)

	t := &Tree{
		Words:    make([]*sent.Node, size+1),
		Parents:  make([]int, size+1),
		Children: make([][]int, size+1),
	}
	t.Parents[0] = -1

	var problems []Problem
	var roots []int

	for i, n := range words {
		id := i + 1
		t.Words[id] = n
		nodeID := n.Col(sent.ID)

		head, ok := n.Head()
		switch {
		case !ok:
			problems = append(problems, Problem{
				Line:    n.Line,
				Node:    nodeID,
				TestID:  InvalidHead,
				Message: fmt.Sprintf("Invalid HEAD: '%s'", n.Col(sent.HEAD)),
			})
			continue
		case head > size:
			problems = append(problems, Problem{
				Line:    n.Line,
				Node:    nodeID,
				TestID:  UnknownHead,
				Message: fmt.Sprintf("Undefined HEAD (no such ID): '%d'", head),
			})
			continue
		case head == id:
			problems = append(problems, Problem{
				Line:    n.Line,
				Node:    nodeID,
				TestID:  HeadSelfLoop,
				Message: fmt.Sprintf("HEAD == ID for %s", nodeID),
			})
			continue
		}

		t.Parents[id] = head
		t.Children[head] = append(t.Children[head], id)
		if head == 0 {
			roots = append(roots, id)
		}
	}

	if len(problems) > 0 {
		return nil, problems
	}

	switch {
	case len(roots) == 0:
		problems = append(problems, Problem{
			Line:    s.Start,
			TestID:  MissingRoot,
			Message: "The sentence has no root node (no word with HEAD 0)",
		})
	case len(roots) > 1:
		problems = append(problems, Problem{
			Line:    t.Words[roots[1]].Line,
			Node:    strconv.Itoa(roots[1]),
			TestID:  MultipleRoots,
			Message: fmt.Sprintf("Multiple root words: %s", joinInts(roots)),
		})
	default:
		t.Root = roots[0]
	}

	seen := map[string]bool{}
	for id := 1; id <= size; id++ {
		cycle := graph.Cycle(t.Parents, id)
		if cycle == nil {
			continue
		}
		sorted := append([]int(nil), cycle...)
		sort.Ints(sorted)
		key := joinInts(sorted)
		if seen[key] {
			continue
		}
		seen[key] = true
		problems = append(problems, Problem{
			Line:    t.Words[sorted[0]].Line,
			Node:    strconv.Itoa(sorted[0]),
			TestID:  NonTree,
			Message: fmt.Sprintf("Non-tree structure. Words %s form a cycle and are not reachable from the root", key),
		})
	}

	if len(problems) > 0 {
		return nil, problems
	}

	for i := range t.Children {
		sort.Ints(t.Children[i])
	}

	return t, nil
}

func joinInts(ids []int) string {
	s := make([]string, len(ids))
	for i, id := range ids {
		s[i] = strconv.Itoa(id)
	}
	return strings.Join(s, ",")
}
