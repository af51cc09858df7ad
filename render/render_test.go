package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/udcheck/incident"
	"github.com/revelaction/udcheck/stat"
)

func sample() incident.Incident {
	return incident.Incident{
		Severity: incident.Error,
		Class:    incident.Syntax,
		Level:    2,
		TestID:   "0-is-not-root",
		File:     "f.conllu",
		Line:     12,
		SentID:   "s1",
		Node:     "3",
		Message:  "DEPREL must be 'root' if HEAD is 0.",
	}
}

func TestTextRendererIncident(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf)
	r.Incident(sample())
	assert.Equal(t, "[File f.conllu Line 12 Sent s1 Node 3]: [L2 Syntax 0-is-not-root] DEPREL must be 'root' if HEAD is 0.\n", buf.String())

	buf.Reset()
	inc := sample()
	inc.Explanation = "A word has HEAD 0\nif and only if it is root."
	r.Incident(inc)
	assert.Contains(t, buf.String(), "\n    A word has HEAD 0\n    if and only if it is root.\n")

	buf.Reset()
	r.Quiet = true
	r.Incident(sample())
	assert.Empty(t, buf.String())
}

func TestTextRendererColor(t *testing.T) {
	var buf bytes.Buffer
	r := &TextRenderer{W: &buf, HasColor: true}
	inc := sample()
	inc.Severity = incident.Warning
	r.Incident(inc)
	assert.Contains(t, buf.String(), Yellow+"[L2 Syntax 0-is-not-root]"+Off)
}

func TestTextRendererSummary(t *testing.T) {
	st := incident.NewState(incident.Options{MaxStore: 2})
	for i := 0; i < 5; i++ {
		st.Report(sample())
	}
	w := sample()
	w.Severity = incident.Warning
	w.Class = incident.Format
	st.Report(w)

	var buf bytes.Buffer
	r := NewTextRenderer(&buf)
	require.NoError(t, r.Render(NewReport(st, stat.Stats{NumSentences: 4, NumWords: 9, NumTokens: 8})))

	out := buf.String()
	assert.Contains(t, out, "4 sentences, 8 tokens, 9 words")
	assert.Contains(t, out, "Format warnings: 1\n")
	assert.Contains(t, out, "Syntax errors: 5 (3 more suppressed)\n")
	assert.Contains(t, out, "*** FAILED *** with 5 errors and 1 warnings\n")
}

func TestTextRendererVerdicts(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf)

	st := incident.NewState(incident.Options{})
	require.NoError(t, r.Render(NewReport(st, stat.Stats{})))
	assert.Equal(t, "*** PASSED ***\n", buf.String())

	buf.Reset()
	st.Report(sample())
	st.Aborted = true
	require.NoError(t, r.Render(NewReport(st, stat.Stats{})))
	assert.Contains(t, buf.String(), "*** ABORTED *** with 1 errors")
}
