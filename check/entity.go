package check

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/revelaction/udcheck/incident"
	sent "github.com/revelaction/udcheck/sentence"
)

// bracket is one opening or closing part of a MISC Entity value.
type bracket struct {
	open  bool
	close bool
	eid   string
	etype string
	head  int
}

// parseEntity splits an Entity value such as "(e2-place-1)e1)" into its
// brackets.
func parseEntity(v string) ([]bracket, error) {
	var out []bracket
	for v != "" {
		if v[0] == '(' {
			raw := v
			v = ""
			if end := strings.IndexAny(raw[1:], "()"); end >= 0 {
				end++
				if raw[end] == ')' {
					end++
				}
				raw, v = raw[:end], raw[end:]
			}

			closed := strings.HasSuffix(raw, ")")
			m := sent.Patterns.EntityOpen.FindStringSubmatch(strings.TrimSuffix(raw, ")"))
			if m == nil {
				return nil, fmt.Errorf("cannot parse '%s'", raw)
			}
			b := bracket{open: true, close: closed, eid: m[1], etype: m[2]}
			if m[3] != "" {
				b.head, _ = strconv.Atoi(m[3])
			}
			out = append(out, b)
			continue
		}

		end := strings.IndexByte(v, ')')
		if end < 0 {
			return nil, fmt.Errorf("cannot parse '%s'", v)
		}
		raw := v[:end+1]
		m := sent.Patterns.EntityClose.FindStringSubmatch(raw)
		if m == nil {
			return nil, fmt.Errorf("cannot parse '%s'", raw)
		}
		out = append(out, bracket{close: true, eid: m[1]})
		v = v[end+1:]
	}
	return out, nil
}

// entityDocument handles the document level comments of coreference:
// '# newdoc' closes the mentions of the previous document and
// '# global.Entity' declares the attribute format.
func entityDocument(ctx *Context) {
	e := ctx.State.Entities
	s := ctx.Sentence

	if s.NewDoc() {
		reportUnclosed(ctx, e.Unclosed())
		e.NewDocument()
	}

	for _, g := range s.Metadata("global.Entity") {
		v := strings.TrimSpace(g.Value)
		if !strings.HasPrefix(v, "eid") {
			ctx.ErrorAt(g.Line, "", "invalid-global-entity", "The global.Entity attribute must start with 'eid'. Now: '%s'.", v)
			continue
		}
		if first, ok := e.Declare(v, g.Line); !ok {
			ctx.ErrorAt(g.Line, "", "entity-global-mismatch", "New declaration of global.Entity '%s' does not match the first one '%s' on line %d.", v, first, e.GlobalLine)
		}
	}
}

// entitySkipped advances the document position over a sentence whose
// mentions were not read.
func entitySkipped(ctx *Context) {
	e := ctx.State.Entities
	e.Position += len(ctx.Sentence.Words())
	e.Unreliable = true
}

// entity tracks coreference mentions across the sentences of a document.
func entity(ctx *Context) {
	e := ctx.State.Entities
	s := ctx.Sentence

	for _, n := range s.Words() {
		e.Position++
		v, ok := n.MiscValue("Entity")
		if !ok {
			continue
		}
		if !e.Declared() && !e.MissingReported {
			e.MissingReported = true
			ctx.ErrorNode(n, "entity-global-missing", "Missing '# global.Entity' declaration before the first use of the Entity attribute.")
		}

		brackets, err := parseEntity(v)
		if err != nil {
			ctx.ErrorNode(n, "invalid-entity-attr", "Invalid Entity attribute '%s': %v.", v, err)
			continue
		}

		for _, b := range brackets {
			if b.open {
				if known, ok := e.Type(b.eid, b.etype); !ok {
					ctx.ErrorNode(n, "entity-type-mismatch", "Entity '%s' cannot have type '%s' that does not match '%s' from an earlier mention.", b.eid, b.etype, known)
				}
				m := &incident.Mention{
					EID:    b.eid,
					Type:   b.etype,
					Head:   b.head,
					Start:  e.Position,
					Line:   n.Line,
					SentID: ctx.SentID,
				}
				if b.close {
					checkMentionHead(ctx, n, m, e.Position)
					continue
				}
				e.Open(m)
				continue
			}

			m, ok := e.Close(b.eid)
			if !ok {
				if e.Unreliable {
					continue
				}
				ctx.ErrorNode(n, "unopened-entity-mention", "Cannot close entity '%s' because it was not opened.", b.eid)
				continue
			}
			checkMentionHead(ctx, n, m, e.Position)
		}
	}
}

func checkMentionHead(ctx *Context, n *sent.Node, m *incident.Mention, end int) {
	if length := end - m.Start + 1; m.Head > length {
		ctx.ErrorNode(n, "invalid-entity-head", "Entity mention '%s' has %d words but its head is word %d.", m.EID, length, m.Head)
	}
}

func reportUnclosed(ctx *Context, open []*incident.Mention) {
	if ctx.State.Entities.Unreliable {
		return
	}
	for _, m := range open {
		ctx.ErrorAt(m.Line, "", "unclosed-entity-mention", "Entity mention '%s' opened on line %d was not closed before the end of the document.", m.EID, m.Line)
	}
}

func entityEOF(ctx *Context) {
	reportUnclosed(ctx, ctx.State.Entities.Unclosed())
}
