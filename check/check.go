// Package check holds the validation rules and the scheduler that runs them.
//
// Every rule is a Check record in an explicit Registry: an id, a validation
// level, the granularity it runs at, the ids of the checks it depends on and
// the test ids it may emit. The Scheduler walks the granularities in order
//
//	block -> line -> columns -> tree -> node -> enhanced -> eof
//
// and runs a check on a unit only when none of its prerequisites failed, or
// were themselves skipped, for that unit.
package check

import (
	"errors"
	"fmt"

	"github.com/revelaction/udcheck/incident"
)

// Granularity is the unit a check runs on.
type Granularity int

const (
	Block Granularity = iota
	Line
	Columns
	Tree
	Node
	Enhanced
	EOF
)

var granularityNames = [...]string{"block", "line", "columns", "tree", "node", "enhanced", "eof"}

func (g Granularity) String() string {
	if g < 0 || int(g) >= len(granularityNames) {
		return fmt.Sprintf("granularity(%d)", int(g))
	}
	return granularityNames[g]
}

// lineScoped reports whether failures of checks at g are tracked per line.
func (g Granularity) lineScoped() bool {
	return g == Line || g == Columns || g == Node
}

// Check is one rule.
type Check struct {
	ID    string
	Level int
	Unit  Granularity
	Class incident.Class

	// Requires lists checks that must not have failed on the same unit.
	Requires []string

	// Emits lists the test ids the check may report.
	Emits []string

	// Explanation is attached once to the first incident of each emitted
	// test id.
	Explanation string

	Run func(*Context)

	// Skipped, if set, runs instead of Run when a prerequisite failed. It
	// keeps cross-sentence state in step and must not report.
	Skipped func(*Context)
}

var ErrRegistry = errors.New("invalid check registry")

// Registry is the ordered set of checks.
type Registry struct {
	checks []*Check
	byID   map[string]*Check
	byTest map[string]*Check
}

// NewRegistry validates and indexes checks. Checks run in the given order
// within their granularity. A prerequisite must exist, be registered before
// its dependent, run at the same or an earlier granularity and have the same
// or a lower level.
func NewRegistry(checks ...*Check) (*Registry, error) {
	r := &Registry{
		byID:   map[string]*Check{},
		byTest: map[string]*Check{},
	}

	for _, c := range checks {
		if c.ID == "" || c.Run == nil {
			return nil, fmt.Errorf("%w: check %q has no id or no function", ErrRegistry, c.ID)
		}
		if c.Level < 1 || c.Level > 5 {
			return nil, fmt.Errorf("%w: check %s: level %d out of range", ErrRegistry, c.ID, c.Level)
		}
		if _, dup := r.byID[c.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate check %s", ErrRegistry, c.ID)
		}

		for _, p := range c.Requires {
			pc, ok := r.byID[p]
			if !ok {
				return nil, fmt.Errorf("%w: check %s requires %s, which is not registered before it", ErrRegistry, c.ID, p)
			}
			if pc.Unit > c.Unit {
				return nil, fmt.Errorf("%w: check %s (%s) requires %s, which runs later (%s)", ErrRegistry, c.ID, c.Unit, p, pc.Unit)
			}
			if pc.Level > c.Level {
				return nil, fmt.Errorf("%w: check %s (level %d) requires %s of level %d", ErrRegistry, c.ID, c.Level, p, pc.Level)
			}
			if c.Unit == EOF && pc.Unit != EOF {
				return nil, fmt.Errorf("%w: end of file check %s cannot require %s", ErrRegistry, c.ID, p)
			}
		}

		// a test id emitted by several checks belongs to the first
		for _, t := range c.Emits {
			if _, dup := r.byTest[t]; !dup {
				r.byTest[t] = c
			}
		}

		r.byID[c.ID] = c
		r.checks = append(r.checks, c)
	}

	return r, nil
}

// Checks returns every check in registration order.
func (r *Registry) Checks() []*Check {
	return r.checks
}

// Lookup returns the check with id.
func (r *Registry) Lookup(id string) (*Check, bool) {
	c, ok := r.byID[id]
	return c, ok
}

// ForTest returns the check that emits testID.
func (r *Registry) ForTest(testID string) (*Check, bool) {
	c, ok := r.byTest[testID]
	return c, ok
}

// Explain returns the explanation of the check emitting testID.
func (r *Registry) Explain(testID string) string {
	if c, ok := r.byTest[testID]; ok {
		return c.Explanation
	}
	return ""
}

// TestIDs returns every emitted test id once, in registration order.
func (r *Registry) TestIDs() []string {
	var ids []string
	for _, c := range r.checks {
		for _, t := range c.Emits {
			if r.byTest[t] == c {
				ids = append(ids, t)
			}
		}
	}
	return ids
}

// upTo returns the checks of unit with level <= level, in order.
func (r *Registry) upTo(level int, unit Granularity) []*Check {
	var out []*Check
	for _, c := range r.checks {
		if c.Unit == unit && c.Level <= level {
			out = append(out, c)
		}
	}
	return out
}
