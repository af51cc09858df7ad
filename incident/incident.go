// Package incident defines the reported Errors and Warnings and the
// validation state a run threads through every check.
package incident

import (
	"fmt"
	"strings"
)

// Severity of an incident.
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "Warning"
	}
	return "Error"
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(b []byte) error {
	switch string(b) {
	case "Error":
		*s = Error
	case "Warning":
		*s = Warning
	default:
		return fmt.Errorf("unknown severity %q", b)
	}
	return nil
}

// Class groups incidents by the kind of annotation they concern.
type Class string

const (
	Format   Class = "Format"
	Morpho   Class = "Morpho"
	Syntax   Class = "Syntax"
	Enhanced Class = "Enhanced"
	Metadata Class = "Metadata"
	Coref    Class = "Coref"
)

// Classes lists every class in report order.
var Classes = []Class{Format, Metadata, Morpho, Syntax, Enhanced, Coref}

// Incident is a single reported problem. It is never modified after it is
// handed to the State.
type Incident struct {
	Severity Severity `json:"severity"`
	Class    Class    `json:"class"`
	Level    int      `json:"level"`
	TestID   string   `json:"test_id"`

	File   string `json:"file,omitempty"`
	Line   int    `json:"line,omitempty"`
	SentID string `json:"sent_id,omitempty"`
	Node   string `json:"node,omitempty"`

	Message string `json:"message"`

	// Explanation is attached to the first stored incident of a test id
	// only.
	Explanation string `json:"explanation,omitempty"`
}

// Location renders the "[File f Line 3 Sent s1 Node 2]" prefix.
func (i Incident) Location() string {
	var parts []string
	if i.File != "" {
		parts = append(parts, "File "+i.File)
	}
	if i.Line > 0 {
		parts = append(parts, fmt.Sprintf("Line %d", i.Line))
	}
	if i.SentID != "" {
		parts = append(parts, "Sent "+i.SentID)
	}
	if i.Node != "" {
		parts = append(parts, "Node "+i.Node)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (i Incident) String() string {
	return fmt.Sprintf("%s: [L%d %s %s] %s", i.Location(), i.Level, i.Class, i.TestID, i.Message)
}
