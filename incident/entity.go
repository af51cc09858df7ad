package incident

import "sort"

// Mention is an entity mention opened in MISC Entity.
type Mention struct {
	EID  string
	Type string

	// Head is the 1-based offset of the head word within the mention, 0
	// when not given.
	Head int

	// Start is the document position of the first word, Line its line.
	Start  int
	Line   int
	SentID string
}

// Entities tracks coreference data across the sentences of a document.
type Entities struct {
	// Global is the first global.Entity declaration of the file.
	Global     string
	GlobalLine int

	// Position counts the words of the current document.
	Position int

	// MissingReported is set once a use without declaration was reported.
	MissingReported bool

	// Unreliable is set when the mentions of a sentence of the current
	// document could not be read. Unopened and unclosed mentions are not
	// reported until the next document.
	Unreliable bool

	types map[string]string
	open  map[string][]*Mention
}

func NewEntities() *Entities {
	return &Entities{
		types: map[string]string{},
		open:  map[string][]*Mention{},
	}
}

// Declare remembers a global.Entity declaration. It returns the earlier
// declaration and false when one with a different value exists.
func (e *Entities) Declare(value string, line int) (string, bool) {
	if e.GlobalLine == 0 {
		e.Global = value
		e.GlobalLine = line
		return value, true
	}
	return e.Global, e.Global == value
}

// Declared reports whether global.Entity has been seen in the file.
func (e *Entities) Declared() bool {
	return e.GlobalLine > 0
}

// Type records the entity type of eid. It returns the known type and false
// when eid was seen before with a different type. An empty type matches
// anything.
func (e *Entities) Type(eid, etype string) (string, bool) {
	known, ok := e.types[eid]
	if !ok || known == "" {
		e.types[eid] = etype
		return etype, true
	}
	if etype == "" {
		return known, true
	}
	return known, known == etype
}

// Open pushes m on the stack of its entity.
func (e *Entities) Open(m *Mention) {
	e.open[m.EID] = append(e.open[m.EID], m)
}

// Close pops the innermost open mention of eid.
func (e *Entities) Close(eid string) (*Mention, bool) {
	stack := e.open[eid]
	if len(stack) == 0 {
		return nil, false
	}
	m := stack[len(stack)-1]
	if len(stack) == 1 {
		delete(e.open, eid)
	} else {
		e.open[eid] = stack[:len(stack)-1]
	}
	return m, true
}

// Unclosed returns the open mentions, ordered by line.
func (e *Entities) Unclosed() []*Mention {
	var out []*Mention
	for _, stack := range e.open {
		out = append(out, stack...)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Line != out[j].Line {
			return out[i].Line < out[j].Line
		}
		return out[i].EID < out[j].EID
	})
	return out
}

// NewDocument forgets the mentions, types and reliability of the previous
// document. The global declaration is kept.
func (e *Entities) NewDocument() {
	e.Position = 0
	e.Unreliable = false
	e.types = map[string]string{}
	e.open = map[string][]*Mention{}
}
