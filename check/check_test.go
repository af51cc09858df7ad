package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/udcheck/incident"
)

func noop(*Context) {}

// TestDefaultRegistry: the catalogue satisfies every registry invariant.
func TestDefaultRegistry(t *testing.T) {
	_, err := NewRegistry(Catalogue()...)
	require.NoError(t, err)

	r := Default()
	assert.GreaterOrEqual(t, len(r.Checks()), 40)

	for _, c := range r.Checks() {
		assert.NotEmpty(t, c.Emits, "check %s emits nothing", c.ID)
		assert.NotEmpty(t, c.Explanation, "check %s is not explained", c.ID)
	}

	c, ok := r.ForTest("0-is-not-root")
	require.True(t, ok)
	assert.Equal(t, "root", c.ID)
	assert.Contains(t, r.Explain("0-is-not-root"), "HEAD 0")
}

// TestSharedTestIDBelongsToFirst: a test id emitted twice is explained by the first check.
func TestSharedTestIDBelongsToFirst(t *testing.T) {
	r := Default()
	c, ok := r.ForTest("extra-empty-line")
	require.True(t, ok)
	assert.Equal(t, "block-boundary", c.ID)

	ids := r.TestIDs()
	count := 0
	for _, id := range ids {
		if id == "extra-empty-line" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestRegistryRejects(t *testing.T) {
	cases := []struct {
		name   string
		checks []*Check
	}{
		{"unknown prerequisite", []*Check{
			{ID: "a", Level: 1, Unit: Line, Requires: []string{"b"}, Run: noop},
		}},
		{"prerequisite registered later", []*Check{
			{ID: "a", Level: 1, Unit: Line, Requires: []string{"b"}, Run: noop},
			{ID: "b", Level: 1, Unit: Line, Run: noop},
		}},
		{"prerequisite runs later", []*Check{
			{ID: "b", Level: 1, Unit: Tree, Run: noop},
			{ID: "a", Level: 1, Unit: Line, Requires: []string{"b"}, Run: noop},
		}},
		{"prerequisite of higher level", []*Check{
			{ID: "b", Level: 3, Unit: Line, Run: noop},
			{ID: "a", Level: 2, Unit: Line, Requires: []string{"b"}, Run: noop},
		}},
		{"eof check requiring a sentence check", []*Check{
			{ID: "b", Level: 1, Unit: Block, Run: noop},
			{ID: "a", Level: 1, Unit: EOF, Requires: []string{"b"}, Run: noop},
		}},
		{"duplicate id", []*Check{
			{ID: "a", Level: 1, Unit: Line, Run: noop},
			{ID: "a", Level: 1, Unit: Line, Run: noop},
		}},
		{"level out of range", []*Check{
			{ID: "a", Level: 6, Unit: Line, Run: noop},
		}},
		{"no function", []*Check{
			{ID: "a", Level: 1, Unit: Line},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRegistry(tc.checks...)
			assert.ErrorIs(t, err, ErrRegistry)
		})
	}
}

// TestPrerequisiteSkipChain: a skipped check blocks its own dependents.
func TestPrerequisiteSkipChain(t *testing.T) {
	var ran []string
	record := func(id string, fail bool) func(*Context) {
		return func(ctx *Context) {
			ran = append(ran, id)
			if fail {
				ctx.Errorf(id, "failed")
			}
		}
	}

	r, err := NewRegistry(
		&Check{ID: "a", Level: 1, Unit: Block, Class: incident.Format, Emits: []string{"a"}, Run: record("a", true)},
		&Check{ID: "b", Level: 1, Unit: Tree, Class: incident.Format, Requires: []string{"a"}, Emits: []string{"b"}, Run: record("b", false)},
		&Check{ID: "c", Level: 1, Unit: Enhanced, Class: incident.Format, Requires: []string{"b"}, Emits: []string{"c"}, Run: record("c", false)},
		&Check{ID: "d", Level: 1, Unit: Enhanced, Class: incident.Format, Emits: []string{"d"}, Run: record("d", false)},
	)
	require.NoError(t, err)

	st := validateWith(t, r, Config{Lang: "ud", Level: 1}, nil, "1\tx\tx\tX\t_\t_\t0\troot\t_\t_\n\n")
	assert.Equal(t, []string{"a", "d"}, ran)
	assert.Equal(t, 1, st.Skipped["b"])
	assert.Equal(t, 1, st.Skipped["c"])
	assert.Equal(t, 1, st.Errors, "skipping is not an error")
}

func TestSkippedHook(t *testing.T) {
	var ran []string
	r, err := NewRegistry(
		&Check{ID: "a", Level: 1, Unit: Block, Class: incident.Format, Emits: []string{"a"}, Run: func(ctx *Context) {
			ctx.Errorf("a", "failed")
		}},
		&Check{ID: "b", Level: 1, Unit: Tree, Class: incident.Format, Requires: []string{"a"}, Emits: []string{"b"},
			Run:     func(*Context) { ran = append(ran, "run") },
			Skipped: func(*Context) { ran = append(ran, "skipped") },
		},
	)
	require.NoError(t, err)

	st := validateWith(t, r, Config{Lang: "ud", Level: 1}, nil, "1\tx\tx\tX\t_\t_\t0\troot\t_\t_\n\n")
	assert.Equal(t, []string{"skipped"}, ran)
	assert.Equal(t, 1, st.Skipped["b"])
}

// TestLineScopedPrerequisites: a column failure only blocks checks on the same line.
func TestLineScopedPrerequisites(t *testing.T) {
	var lines []int
	r, err := NewRegistry(
		&Check{ID: "a", Level: 1, Unit: Columns, Class: incident.Format, Emits: []string{"a"}, Run: func(ctx *Context) {
			if ctx.Node.Form() == "bad" {
				ctx.Errorf("a", "bad form")
			}
		}},
		&Check{ID: "b", Level: 1, Unit: Columns, Class: incident.Format, Requires: []string{"a"}, Emits: []string{"b"}, Run: func(ctx *Context) {
			lines = append(lines, ctx.Node.Line)
		}},
	)
	require.NoError(t, err)

	validateWith(t, r, Config{Lang: "ud", Level: 1}, nil,
		"1\tgood\tx\tX\t_\t_\t0\troot\t_\t_\n2\tbad\tx\tX\t_\t_\t1\tdep\t_\t_\n3\tgood\tx\tX\t_\t_\t1\tdep\t_\t_\n\n")
	assert.Equal(t, []int{1, 3}, lines)
}

func TestGranularityString(t *testing.T) {
	assert.Equal(t, "columns", Columns.String())
	assert.Equal(t, "eof", EOF.String())
	assert.Equal(t, "granularity(9)", Granularity(9).String())
}
