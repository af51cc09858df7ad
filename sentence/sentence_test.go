package sentence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	cases := []struct {
		in   string
		kind Kind
		id   NodeID
		end  int
	}{
		{"1", Word, NodeID{Major: 1}, 0},
		{"12", Word, NodeID{Major: 12}, 0},
		{"3-4", Range, NodeID{Major: 3}, 4},
		{"0.1", EmptyNode, NodeID{Major: 0, Minor: 1}, 0},
		{"5.2", EmptyNode, NodeID{Major: 5, Minor: 2}, 0},
	}
	for _, tc := range cases {
		got, err := ParseID(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.kind, got.Kind, tc.in)
		assert.Equal(t, tc.id, got.NodeID, tc.in)
		assert.Equal(t, tc.end, got.End, tc.in)
	}

	for _, bad := range []string{"0", "01", "4-4", "5-3", "1.0", "a", ""} {
		_, err := ParseID(bad)
		assert.ErrorIs(t, err, ErrInvalidID, bad)
	}
}

func TestNodeIDOrder(t *testing.T) {
	assert.True(t, NodeID{Major: 1}.Less(NodeID{Major: 1, Minor: 1}))
	assert.True(t, NodeID{Major: 1, Minor: 2}.Less(NodeID{Major: 2}))
	assert.Equal(t, "3.1", NodeID{Major: 3, Minor: 1}.String())
	assert.True(t, Root.String() == "0")
}

func TestParseDeps(t *testing.T) {
	deps, err := ParseDeps("0:root|2.1:nsubj:xsubj")
	require.NoError(t, err)
	require.Len(t, deps, 2)
	assert.Equal(t, Root, deps[0].Head)
	assert.Equal(t, "root", deps[0].Rel)
	assert.Equal(t, NodeID{Major: 2, Minor: 1}, deps[1].Head)
	assert.Equal(t, "nsubj:xsubj", deps[1].Rel)
	assert.Equal(t, "2.1:nsubj:xsubj", deps[1].Raw)

	deps, err = ParseDeps(Empty)
	assert.NoError(t, err)
	assert.Empty(t, deps)

	for _, bad := range []string{"root", "1:", "x:dep", "1:dep|"} {
		_, err := ParseDeps(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseAttrs(t *testing.T) {
	attrs := ParseAttrs("Case=Acc,Nom|Typo|SpaceAfter=No")
	require.Len(t, attrs, 3)
	assert.Equal(t, []string{"Acc", "Nom"}, attrs[0].Values())
	assert.False(t, attrs[1].HasValue)
	assert.Equal(t, "No", attrs[2].Value)
	assert.Nil(t, ParseAttrs(Empty))
}

func sentence(lines ...string) *Sentence {
	s := &Sentence{Start: 1}
	for i, l := range lines {
		s.Add(Line{Number: i + 1, Text: l})
	}
	return s
}

func TestTokens(t *testing.T) {
	s := sentence(
		"1\tJohn\tJohn\tPROPN\t_\t_\t3\tnsubj\t_\t_",
		"2-3\tdoesn't\t_\t_\t_\t_\t_\t_\t_\t_",
		"2\tdoes\tdo\tAUX\t_\t_\t4\taux\t_\t_",
		"3\tn't\tnot\tPART\t_\t_\t4\tadvmod\t_\t_",
		"3.1\trun\trun\tVERB\t_\t_\t_\t_\t_\t_",
		"4\trun\trun\tVERB\t_\t_\t0\troot\t_\tSpaceAfter=No",
	)

	var forms []string
	for _, n := range s.Tokens() {
		forms = append(forms, n.Form())
	}
	assert.Equal(t, []string{"John", "doesn't", "run"}, forms)
	assert.Len(t, s.Words(), 4)
	assert.Len(t, s.Ranges(), 1)
	assert.Len(t, s.EmptyNodes(), 1)
	assert.True(t, s.Nodes[5].NoSpaceAfter())

	head, ok := s.Nodes[0].Head()
	assert.True(t, ok)
	assert.Equal(t, 3, head)
	assert.Equal(t, "nsubj", s.Nodes[0].UDeprel())
}

func TestNodeLookups(t *testing.T) {
	n := NewNode(Line{Number: 7, Text: "1\tDogs\tdog\tNOUN\t_\tNumber=Plur\t0\tobl:tmod\t_\tLang=en|Empty"})
	assert.Equal(t, Word, n.Kind)
	assert.Equal(t, 7, n.Line)
	assert.Equal(t, "obl", n.UDeprel())

	v, ok := n.Feat("Number")
	assert.True(t, ok)
	assert.Equal(t, "Plur", v)

	v, ok = n.MiscValue("Lang")
	assert.True(t, ok)
	assert.Equal(t, "en", v)

	_, ok = n.MiscValue("Empty")
	assert.False(t, ok, "attribute without value")

	short := NewNode(Line{Number: 1, Text: "x\ty"})
	assert.Equal(t, Invalid, short.Kind)
	assert.Equal(t, "", short.Col(MISC))
	_, ok = short.Head()
	assert.False(t, ok)
}

func TestMetadata(t *testing.T) {
	s := &Sentence{
		Start: 1,
		Comments: []Line{
			{Number: 1, Text: "# newdoc id = d1"},
			{Number: 2, Text: "# sent_id = s1 "},
			{Number: 3, Text: "# text = Hello"},
			{Number: 4, Text: "# global.Entity = eid-etype"},
			{Number: 5, Text: "# a comment"},
		},
	}

	assert.Equal(t, "s1", s.SentID())
	assert.True(t, s.NewDoc())
	assert.Empty(t, s.Markers("newpar"))

	texts := s.Metadata("text")
	require.Len(t, texts, 1)
	assert.Equal(t, "Hello", texts[0].Value)
	assert.Equal(t, 3, texts[0].Line)
	assert.Len(t, s.Metadata("global.Entity"), 1)
	assert.Equal(t, 5, s.End())
}
