package incident

import (
	"fmt"
	"strings"
)

// Verdict is the outcome of a run.
type Verdict int

const (
	Passed Verdict = iota
	Failed
	Aborted
)

func (v Verdict) String() string {
	switch v {
	case Failed:
		return "FAILED"
	case Aborted:
		return "ABORTED"
	}
	return "PASSED"
}

func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// DeferScope bounds how long a deferred obligation waits for its trigger.
type DeferScope int

const (
	DeferSentence DeferScope = iota
	DeferFile
	DeferRun
)

func (d DeferScope) String() string {
	switch d {
	case DeferSentence:
		return "sentence"
	case DeferRun:
		return "run"
	}
	return "file"
}

// ParseDeferScope converts "sentence", "file" or "run".
func ParseDeferScope(s string) (DeferScope, error) {
	switch strings.ToLower(s) {
	case "sentence":
		return DeferSentence, nil
	case "file", "":
		return DeferFile, nil
	case "run":
		return DeferRun, nil
	}
	return DeferFile, fmt.Errorf("invalid defer scope %q: want sentence, file or run", s)
}

// Options configure a State.
type Options struct {
	// MaxStore caps the stored incidents of every class and severity
	// bucket. 0 means unbounded.
	MaxStore int

	DeferScope DeferScope

	// Explain returns the extended explanation of a test id. It is consulted
	// once per test id.
	Explain func(testID string) string

	// Sink receives every stored incident as it is reported.
	Sink func(Incident)

	// OnCap is called the first time a bucket suppresses an incident.
	OnCap func(Class, Severity)
}

// Bucket holds the incidents of one class and severity.
type Bucket struct {
	Class    Class    `json:"class"`
	Severity Severity `json:"severity"`

	// Total counts every reported incident, Stored only the kept ones.
	Total  int `json:"total"`
	Stored int `json:"stored"`
}

// Suppressed returns the number of incidents dropped by the cap.
func (b Bucket) Suppressed() int {
	return b.Total - b.Stored
}

type bucketKey struct {
	class    Class
	severity Severity
}

// SentIDLocation is where a sentence id was first seen.
type SentIDLocation struct {
	File string
	Line int
}

type deferred struct {
	key      string
	trigger  string
	incident Incident
}

// State is the single mutable object a run threads through every check. It
// is owned by one run and not safe for concurrent use.
type State struct {
	opts Options

	buckets   map[bucketKey]*Bucket
	incidents []Incident
	explained map[string]bool

	Errors   int
	Warnings int

	// File is the file being validated.
	File string

	// SentIDs maps every sentence id seen in the run to its first location.
	SentIDs map[string]SentIDLocation

	// EnhancedLine and BasicOnlyLine remember the first sentence of the
	// current file with and without enhanced annotation, 0 if none yet.
	EnhancedLine  int
	BasicOnlyLine int

	// Entities tracks coreference mentions of the current document.
	Entities *Entities

	// Skipped counts skipped checks by check id.
	Skipped map[string]int

	// Aborted is set when the run stopped on the error limit.
	Aborted bool

	triggers map[string]bool
	pending  []deferred
	pendKeys map[string]bool
}

// NewState returns an empty State.
func NewState(opts Options) *State {
	return &State{
		opts:      opts,
		buckets:   map[bucketKey]*Bucket{},
		explained: map[string]bool{},
		SentIDs:   map[string]SentIDLocation{},
		Entities:  NewEntities(),
		Skipped:   map[string]int{},
		triggers:  map[string]bool{},
		pendKeys:  map[string]bool{},
	}
}

// Report records inc. It returns false when the bucket is full and the
// incident was only counted.
func (s *State) Report(inc Incident) bool {
	if inc.File == "" {
		inc.File = s.File
	}

	switch inc.Severity {
	case Warning:
		s.Warnings++
	default:
		s.Errors++
	}

	k := bucketKey{inc.Class, inc.Severity}
	b, ok := s.buckets[k]
	if !ok {
		b = &Bucket{Class: inc.Class, Severity: inc.Severity}
		s.buckets[k] = b
	}
	b.Total++

	if s.opts.MaxStore > 0 && b.Stored >= s.opts.MaxStore {
		if b.Total == b.Stored+1 && s.opts.OnCap != nil {
			s.opts.OnCap(inc.Class, inc.Severity)
		}
		return false
	}
	b.Stored++

	if !s.explained[inc.TestID] {
		s.explained[inc.TestID] = true
		if s.opts.Explain != nil {
			inc.Explanation = s.opts.Explain(inc.TestID)
		}
	}

	s.incidents = append(s.incidents, inc)
	if s.opts.Sink != nil {
		s.opts.Sink(inc)
	}
	return true
}

// Incidents returns the stored incidents in report order.
func (s *State) Incidents() []Incident {
	return s.incidents
}

// Buckets returns every non-empty bucket, ordered by class and severity.
func (s *State) Buckets() []Bucket {
	var out []Bucket
	for _, c := range Classes {
		for _, sev := range []Severity{Error, Warning} {
			if b, ok := s.buckets[bucketKey{c, sev}]; ok {
				out = append(out, *b)
			}
		}
	}
	return out
}

// Verdict summarizes the run.
func (s *State) Verdict() Verdict {
	switch {
	case s.Aborted:
		return Aborted
	case s.Errors > 0:
		return Failed
	}
	return Passed
}

// Defer registers inc to be reported once trigger fires. If trigger already
// fired within the current scope inc is reported right away. Obligations are
// deduplicated by test id and location.
func (s *State) Defer(trigger string, inc Incident) {
	if inc.File == "" {
		inc.File = s.File
	}
	if s.triggers[trigger] {
		s.Report(inc)
		return
	}

	key := fmt.Sprintf("%s\x00%s\x00%d\x00%s", inc.TestID, inc.File, inc.Line, inc.Node)
	if s.pendKeys[key] {
		return
	}
	s.pendKeys[key] = true
	s.pending = append(s.pending, deferred{key: key, trigger: trigger, incident: inc})
}

// Trigger fires trigger: every obligation waiting on it is reported in the
// order it was deferred.
func (s *State) Trigger(trigger string) {
	if s.triggers[trigger] {
		return
	}
	s.triggers[trigger] = true

	kept := s.pending[:0]
	var fire []deferred
	for _, d := range s.pending {
		if d.trigger == trigger {
			fire = append(fire, d)
			delete(s.pendKeys, d.key)
			continue
		}
		kept = append(kept, d)
	}
	s.pending = kept

	for _, d := range fire {
		s.Report(d.incident)
	}
}

// Triggered reports whether trigger fired within the current scope.
func (s *State) Triggered(trigger string) bool {
	return s.triggers[trigger]
}

// Pending returns the number of obligations still waiting.
func (s *State) Pending() int {
	return len(s.pending)
}

// EndSentence closes a sentence. Under the sentence scope pending
// obligations are discarded and triggers reset.
func (s *State) EndSentence() {
	if s.opts.DeferScope == DeferSentence {
		s.resetDeferred()
	}
}

// StartFile prepares the per-file trackers for a new file.
func (s *State) StartFile(name string) {
	s.File = name
	s.EnhancedLine = 0
	s.BasicOnlyLine = 0
	s.Entities = NewEntities()
}

// EndFile closes a file. Under the sentence and file scopes pending
// obligations are discarded and triggers reset.
func (s *State) EndFile() {
	if s.opts.DeferScope != DeferRun {
		s.resetDeferred()
	}
}

func (s *State) resetDeferred() {
	s.pending = nil
	s.pendKeys = map[string]bool{}
	s.triggers = map[string]bool{}
}
