package check

import (
	"fmt"

	"github.com/revelaction/udcheck/incident"
	"github.com/revelaction/udcheck/langdata"
	sent "github.com/revelaction/udcheck/sentence"
	"github.com/revelaction/udcheck/tree"
)

// Config selects what a run validates.
type Config struct {
	// Lang is the language code; "ud" validates language independent
	// rules only.
	Lang string

	// Level is the highest validation level run, 1 to 5.
	Level int

	// MaxErrors stops the run after the sentence that reaches it. 0 means
	// no limit.
	MaxErrors int
}

// Context is what a check sees while it runs. The unit fields are set by
// the Scheduler according to the granularity of the check.
type Context struct {
	State  *incident.State
	Config Config

	// Lang is the data of the run language.
	Lang  *langdata.Spec
	langs *langdata.Registry

	Sentence *sent.Sentence
	SentID   string

	// Line is the current line of line checks; Node the current node of
	// column and node checks.
	Line sent.Line
	Node *sent.Node

	// Tree and Graph are set once built, nil otherwise.
	Tree  *tree.Tree
	Graph *tree.Graph

	// Enhanced is set when any node of the sentence has DEPS.
	Enhanced bool

	// Trailing holds the boundary defects found after the last block of
	// the file.
	Trailing []sent.Defect

	check *Check
	fail  *failures
	err   error
}

// Errorf reports an Error at the current unit.
func (c *Context) Errorf(testID, format string, args ...any) {
	line, node := c.location()
	c.report(incident.Error, line, node, testID, fmt.Sprintf(format, args...))
}

// Warnf reports a Warning at the current unit.
func (c *Context) Warnf(testID, format string, args ...any) {
	line, node := c.location()
	c.report(incident.Warning, line, node, testID, fmt.Sprintf(format, args...))
}

// ErrorAt reports an Error at an explicit line and node.
func (c *Context) ErrorAt(line int, node, testID, format string, args ...any) {
	c.report(incident.Error, line, node, testID, fmt.Sprintf(format, args...))
}

// WarnAt reports a Warning at an explicit line and node.
func (c *Context) WarnAt(line int, node, testID, format string, args ...any) {
	c.report(incident.Warning, line, node, testID, fmt.Sprintf(format, args...))
}

// ErrorNode reports an Error located at n.
func (c *Context) ErrorNode(n *sent.Node, testID, format string, args ...any) {
	c.report(incident.Error, n.Line, n.Col(sent.ID), testID, fmt.Sprintf(format, args...))
}

// Defer registers an Error at the current unit that is only reported once
// trigger fires.
func (c *Context) Defer(trigger, testID, format string, args ...any) {
	line, node := c.location()
	c.State.Defer(trigger, c.incident(incident.Error, line, node, testID, fmt.Sprintf(format, args...)))
}

// Fail aborts the run with an environment error.
func (c *Context) Fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// LangOf returns the language of n: its MISC Lang when present, the run
// language otherwise.
func (c *Context) LangOf(n *sent.Node) string {
	if n != nil {
		if l, ok := n.MiscValue("Lang"); ok && l != "" {
			return l
		}
	}
	return c.Config.Lang
}

// SpecFor returns the language data for n. A code-switched node whose
// language has no data falls back to the run language.
func (c *Context) SpecFor(n *sent.Node) *langdata.Spec {
	lang := c.LangOf(n)
	if lang == c.Config.Lang || c.langs == nil {
		return c.Lang
	}

	s, err := c.langs.Spec(lang)
	if err != nil {
		if !langdata.IsUnknown(err) {
			c.Fail(err)
		}
		return c.Lang
	}
	return s
}

// LanguageSpecific reports whether n is validated against language data,
// i.e. its language is not "ud".
func (c *Context) LanguageSpecific(n *sent.Node) bool {
	return c.SpecFor(n).Lang != langdata.LangUD
}

func (c *Context) location() (int, string) {
	switch {
	case c.Node != nil:
		return c.Node.Line, c.Node.Col(sent.ID)
	case c.Line.Number > 0:
		return c.Line.Number, ""
	case c.Sentence != nil:
		return c.Sentence.Start, ""
	}
	return 0, ""
}

func (c *Context) incident(sev incident.Severity, line int, node, testID, msg string) incident.Incident {
	inc := incident.Incident{
		Severity: sev,
		Line:     line,
		Node:     node,
		SentID:   c.SentID,
		TestID:   testID,
		Message:  msg,
	}
	if c.check != nil {
		inc.Class = c.check.Class
		inc.Level = c.check.Level
	}
	return inc
}

func (c *Context) report(sev incident.Severity, line int, node, testID, msg string) {
	c.State.Report(c.incident(sev, line, node, testID, msg))
	if sev == incident.Error && c.check != nil && c.fail != nil {
		c.fail.mark(c.check.ID, line)
	}
}

// failures remembers which checks failed, or were skipped, per sentence and
// per line.
type failures struct {
	sentence map[string]bool
	lines    map[int]map[string]bool
}

func newFailures() *failures {
	return &failures{
		sentence: map[string]bool{},
		lines:    map[int]map[string]bool{},
	}
}

func (f *failures) mark(id string, line int) {
	f.sentence[id] = true
	if line <= 0 {
		return
	}
	if f.lines[line] == nil {
		f.lines[line] = map[string]bool{}
	}
	f.lines[line][id] = true
}

// blocked returns the first prerequisite of c that failed for the unit at
// line, or "".
func (f *failures) blocked(r *Registry, c *Check, line int) string {
	for _, p := range c.Requires {
		pc, _ := r.Lookup(p)
		if c.Unit.lineScoped() && pc.Unit.lineScoped() {
			if f.lines[line][p] {
				return p
			}
			continue
		}
		if f.sentence[p] {
			return p
		}
	}
	return ""
}
