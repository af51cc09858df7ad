package sentence

import (
	"strconv"
	"strings"
)

// Column indexes of a token line.
const (
	ID = iota
	FORM
	LEMMA
	UPOS
	XPOS
	FEATS
	HEAD
	DEPREL
	DEPS
	MISC

	NumColumns
)

// ColumnNames holds the conventional upper case column names, indexed by
// column.
var ColumnNames = [NumColumns]string{"ID", "FORM", "LEMMA", "UPOS", "XPOS", "FEATS", "HEAD", "DEPREL", "DEPS", "MISC"}

// Empty is the underscore that stands for "no value".
const Empty = "_"

// Line is a raw input line. Number is 1-based and counts from the start of
// the file.
type Line struct {
	Number int
	Text   string

	// CR is set when the line was terminated by "\r\n". The carriage return
	// is not part of Text.
	CR bool
}

// Defect is a block boundary problem noticed by the segmenter.
type Defect struct {
	Line    int
	TestID  string
	Message string
}

// Kind tells words, multi-word token ranges and empty nodes apart.
type Kind int

const (
	Invalid Kind = iota
	Word
	Range
	EmptyNode
)

func (k Kind) String() string {
	switch k {
	case Word:
		return "word"
	case Range:
		return "multi-word token"
	case EmptyNode:
		return "empty node"
	}
	return "invalid"
}

// NodeID identifies a word (Minor == 0) or an empty node (Minor > 0). The
// zero value is the artificial root.
type NodeID struct {
	Major int
	Minor int
}

// Root is the artificial root every tree and graph hangs from.
var Root = NodeID{}

func (id NodeID) String() string {
	if id.Minor == 0 {
		return strconv.Itoa(id.Major)
	}
	return strconv.Itoa(id.Major) + "." + strconv.Itoa(id.Minor)
}

// IsEmpty reports whether id is an empty node.
func (id NodeID) IsEmpty() bool {
	return id.Minor > 0
}

// Less orders ids the way they appear in a sentence: empty nodes k.1, k.2
// follow word k.
func (id NodeID) Less(o NodeID) bool {
	if id.Major != o.Major {
		return id.Major < o.Major
	}
	return id.Minor < o.Minor
}

// Node is one token line: a word, a multi-word token range or an empty node.
type Node struct {
	Line int
	Cols []string
	Kind Kind

	// ID is the word or empty node id. For ranges ID.Major is the first word.
	ID NodeID

	// End is the last word of a range.
	End int
}

// NewNode splits a token line into columns and parses its ID. A node whose ID
// cannot be parsed has Kind Invalid.
func NewNode(l Line) *Node {
	n := &Node{
		Line: l.Number,
		Cols: strings.Split(l.Text, "\t"),
	}

	id, err := ParseID(n.Cols[ID])
	if err == nil {
		n.Kind = id.Kind
		n.ID = id.NodeID
		n.End = id.End
	}

	return n
}

// Col returns column c, or the empty string when the line is too short.
func (n *Node) Col(c int) string {
	if c < len(n.Cols) {
		return n.Cols[c]
	}
	return ""
}

func (n *Node) Form() string   { return n.Col(FORM) }
func (n *Node) Lemma() string  { return n.Col(LEMMA) }
func (n *Node) UPOS() string   { return n.Col(UPOS) }
func (n *Node) Feats() string  { return n.Col(FEATS) }
func (n *Node) Deprel() string { return n.Col(DEPREL) }
func (n *Node) Deps() string   { return n.Col(DEPS) }
func (n *Node) Misc() string   { return n.Col(MISC) }

// UDeprel returns the universal part of the DEPREL, without subtype.
func (n *Node) UDeprel() string {
	rel, _, _ := strings.Cut(n.Deprel(), ":")
	return rel
}

// Head returns the basic head as an integer. ok is false when HEAD is not a
// valid integer.
func (n *Node) Head() (int, bool) {
	h := n.Col(HEAD)
	if !Patterns.Head.MatchString(h) {
		return 0, false
	}
	v, err := strconv.Atoi(h)
	if err != nil {
		return 0, false
	}
	return v, true
}

// MiscValue returns the value of the first MISC attribute named key.
func (n *Node) MiscValue(key string) (string, bool) {
	return lookup(n.Misc(), key)
}

// Feat returns the value of the feature name.
func (n *Node) Feat(name string) (string, bool) {
	return lookup(n.Feats(), name)
}

func lookup(cell, key string) (string, bool) {
	for _, a := range ParseAttrs(cell) {
		if a.Name == key && a.HasValue {
			return a.Value, true
		}
	}
	return "", false
}

// NoSpaceAfter reports whether MISC carries SpaceAfter=No.
func (n *Node) NoSpaceAfter() bool {
	v, ok := n.MiscValue("SpaceAfter")
	return ok && v == "No"
}

// Sentence is a block: leading comment lines followed by token lines.
type Sentence struct {
	Comments []Line
	Lines    []Line
	Nodes    []*Node

	// Start is the number of the first line of the block.
	Start int

	// Defects are the boundary problems found while reading this block.
	Defects []Defect
}

// Add appends a token line and its parsed node.
func (s *Sentence) Add(l Line) {
	s.Lines = append(s.Lines, l)
	s.Nodes = append(s.Nodes, NewNode(l))
}

// Words returns the word nodes in input order.
func (s *Sentence) Words() []*Node {
	return s.ofKind(Word)
}

// Ranges returns the multi-word token lines in input order.
func (s *Sentence) Ranges() []*Node {
	return s.ofKind(Range)
}

// EmptyNodes returns the empty nodes in input order.
func (s *Sentence) EmptyNodes() []*Node {
	return s.ofKind(EmptyNode)
}

func (s *Sentence) ofKind(k Kind) []*Node {
	var nodes []*Node
	for _, n := range s.Nodes {
		if n.Kind == k {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// Tokens returns the surface tokens: multi-word token lines and the words
// no range covers, in input order.
func (s *Sentence) Tokens() []*Node {
	var tokens []*Node
	coveredUntil := 0
	for _, n := range s.Nodes {
		switch n.Kind {
		case Range:
			tokens = append(tokens, n)
			if n.End > coveredUntil {
				coveredUntil = n.End
			}
		case Word:
			if n.ID.Major > coveredUntil {
				tokens = append(tokens, n)
			}
		}
	}
	return tokens
}

// End returns the number of the last line of the block.
func (s *Sentence) End() int {
	end := s.Start
	if len(s.Comments) > 0 {
		end = s.Comments[len(s.Comments)-1].Number
	}
	if len(s.Lines) > 0 {
		end = s.Lines[len(s.Lines)-1].Number
	}
	return end
}

// Meta is a "# key = value" comment.
type Meta struct {
	Line  int
	Key   string
	Value string
}

// Metadata returns every "# key = value" comment whose key equals key.
func (s *Sentence) Metadata(key string) []Meta {
	var found []Meta
	for _, c := range s.Comments {
		m := Patterns.Meta.FindStringSubmatch(c.Text)
		if m == nil || m[1] != key {
			continue
		}
		found = append(found, Meta{Line: c.Number, Key: m[1], Value: m[2]})
	}
	return found
}

// SentID returns the value of the first sent_id comment.
func (s *Sentence) SentID() string {
	ids := s.Metadata("sent_id")
	if len(ids) == 0 {
		return ""
	}
	return strings.TrimSpace(ids[0].Value)
}

// Markers returns the "# newdoc" or "# newpar" comments, with or without an
// id.
func (s *Sentence) Markers(name string) []Line {
	var found []Line
	for _, c := range s.Comments {
		m := Patterns.Marker.FindStringSubmatch(c.Text)
		if m != nil && m[1] == name {
			found = append(found, c)
		}
	}
	return found
}

// NewDoc reports whether the block opens a new document.
func (s *Sentence) NewDoc() bool {
	return len(s.Markers("newdoc")) > 0
}
