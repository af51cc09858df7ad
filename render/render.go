// Package render writes incidents and the final report of a run.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/revelaction/udcheck/incident"
	"github.com/revelaction/udcheck/stat"
)

var (
	Red       = "\033[1;31m"
	Green     = "\033[1;32m"
	Yellow    = "\033[0;33m"
	Teal      = "\033[1;36m"
	Off       = "\033[0m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
)

// Renderer writes the final report of a run.
type Renderer interface {
	Render(r Report) error
}

// Report is everything known at the end of a run.
type Report struct {
	Verdict   incident.Verdict    `json:"verdict"`
	Errors    int                 `json:"errors"`
	Warnings  int                 `json:"warnings"`
	Buckets   []incident.Bucket   `json:"buckets"`
	Incidents []incident.Incident `json:"incidents"`
	Skipped   map[string]int      `json:"skipped,omitempty"`
	Stats     stat.Stats          `json:"stats"`
}

// NewReport collects the report from the final state of a run.
func NewReport(st *incident.State, stats stat.Stats) Report {
	incidents := st.Incidents()
	if incidents == nil {
		incidents = []incident.Incident{}
	}
	buckets := st.Buckets()
	if buckets == nil {
		buckets = []incident.Bucket{}
	}
	return Report{
		Verdict:   st.Verdict(),
		Errors:    st.Errors,
		Warnings:  st.Warnings,
		Buckets:   buckets,
		Incidents: incidents,
		Skipped:   st.Skipped,
		Stats:     stats,
	}
}

// TextRenderer streams incidents as lines while the run goes on and ends
// with a summary.
type TextRenderer struct {
	W io.Writer

	HasColor bool

	// Quiet suppresses the streamed incidents; the summary is still written.
	Quiet bool
}

// NewTextRenderer creates a TextRenderer writing to w.
func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{W: w}
}

// Incident writes one incident line. It is used as the incident sink of a
// State, so it sees stored incidents only.
func (r *TextRenderer) Incident(inc incident.Incident) {
	if r.Quiet {
		return
	}

	line := inc.String()
	if r.HasColor {
		color := Red
		if inc.Severity == incident.Warning {
			color = Yellow
		}
		line = Grey256 + inc.Location() + Off + ": " + color + fmt.Sprintf("[L%d %s %s]", inc.Level, inc.Class, inc.TestID) + Off + " " + inc.Message
	}
	fmt.Fprintln(r.W, line)

	if inc.Explanation != "" {
		fmt.Fprintf(r.W, "\n%s\n\n", indent(inc.Explanation))
	}
}

// Render writes the summary: counts per class and severity, the statistics
// and the verdict.
func (r *TextRenderer) Render(rep Report) error {
	var b strings.Builder

	if rep.Stats.NumSentences > 0 {
		s := rep.Stats
		fmt.Fprintf(&b, "%d sentences, %d tokens, %d words, %d multi-word tokens, %d empty nodes, %d enhanced sentences\n",
			s.NumSentences, s.NumTokens, s.NumWords, s.NumMWTs, s.NumEmpty, s.NumEnhanced)
	}

	for _, bk := range rep.Buckets {
		fmt.Fprintf(&b, "%s %s: %d", bk.Class, strings.ToLower(bk.Severity.String())+"s", bk.Total)
		if n := bk.Suppressed(); n > 0 {
			fmt.Fprintf(&b, " (%d more suppressed)", n)
		}
		b.WriteString("\n")
	}

	b.WriteString(r.verdict(rep))
	b.WriteString("\n")

	_, err := io.WriteString(r.W, b.String())
	return err
}

func (r *TextRenderer) verdict(rep Report) string {
	var text, color string
	switch rep.Verdict {
	case incident.Passed:
		text, color = "*** PASSED ***", Green
	case incident.Aborted:
		text, color = fmt.Sprintf("*** ABORTED *** with %d errors", rep.Errors), Red
	default:
		text, color = fmt.Sprintf("*** FAILED *** with %d errors", rep.Errors), Red
	}
	if rep.Warnings > 0 {
		text += fmt.Sprintf(" and %d warnings", rep.Warnings)
	}
	if r.HasColor {
		return color + text + Off
	}
	return text
}

func indent(s string) string {
	return "    " + strings.ReplaceAll(s, "\n", "\n    ")
}

// compile-time interface check
var _ Renderer = (*TextRenderer)(nil)
