package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/revelaction/udcheck/incident"
	"github.com/revelaction/udcheck/stat"
)

func TestJSONRendererRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	st := incident.NewState(incident.Options{})
	if err := r.Render(NewReport(st, stat.Stats{})); err != nil {
		t.Fatalf("render: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if got["verdict"] != "PASSED" {
		t.Fatalf("expected verdict PASSED, got %v", got["verdict"])
	}

	incidents, ok := got["incidents"].([]any)
	if !ok || len(incidents) != 0 {
		t.Fatalf("expected an empty incidents array, got %v", got["incidents"])
	}
}

func TestJSONRendererRenderOneIncident(t *testing.T) {
	st := incident.NewState(incident.Options{MaxStore: 1})
	st.StartFile("a.conllu")
	for i := 1; i <= 3; i++ {
		st.Report(incident.Incident{
			Severity: incident.Error,
			Class:    incident.Syntax,
			Level:    2,
			TestID:   "0-is-not-root",
			Line:     i,
			Message:  "DEPREL must be 'root' if HEAD is 0.",
		})
	}

	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	if err := r.Render(NewReport(st, stat.Stats{NumSentences: 3})); err != nil {
		t.Fatalf("render: %v", err)
	}

	var rep struct {
		Verdict   string              `json:"verdict"`
		Errors    int                 `json:"errors"`
		Buckets   []incident.Bucket   `json:"buckets"`
		Incidents []incident.Incident `json:"incidents"`
		Stats     stat.Stats          `json:"stats"`
	}
	if err := json.Unmarshal(buf.Bytes(), &rep); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if rep.Verdict != "FAILED" {
		t.Errorf("expected verdict FAILED, got %q", rep.Verdict)
	}

	if rep.Errors != 3 {
		t.Errorf("expected 3 errors, got %d", rep.Errors)
	}

	if len(rep.Incidents) != 1 {
		t.Fatalf("expected 1 stored incident, got %d", len(rep.Incidents))
	}

	if rep.Incidents[0].File != "a.conllu" || rep.Incidents[0].Severity != incident.Error {
		t.Errorf("unexpected incident %+v", rep.Incidents[0])
	}

	if len(rep.Buckets) != 1 || rep.Buckets[0].Suppressed() != 2 {
		t.Fatalf("expected one bucket with 2 suppressed, got %+v", rep.Buckets)
	}

	if rep.Stats.NumSentences != 3 {
		t.Errorf("expected 3 sentences, got %d", rep.Stats.NumSentences)
	}
}
