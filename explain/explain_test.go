package explain

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/udcheck/check"
)

func TestDescribe(t *testing.T) {
	h := NewHandler(check.Default(), io.Discard)

	byCheck, err := h.Describe("tree")
	require.NoError(t, err)
	assert.Contains(t, byCheck, "tree (level 2, Syntax, tree)")
	assert.Contains(t, byCheck, "requires: id-sequence, head-format, root")
	assert.Contains(t, byCheck, "non-tree")

	byTest, err := h.Describe("non-tree")
	require.NoError(t, err)
	assert.Equal(t, byCheck, byTest)

	_, err = h.Describe("no-such-rule")
	assert.ErrorIs(t, err, ErrUnknownRule)
}

func TestSuggest(t *testing.T) {
	h := NewHandler(check.Default(), io.Discard)

	var texts []string
	for _, s := range h.suggest("root") {
		texts = append(texts, s.Text)
	}
	assert.Equal(t, []string{"root", "root-is-not-0"}, texts)

	assert.Empty(t, h.suggest(""))
	assert.Empty(t, h.suggest("root x"))
}
