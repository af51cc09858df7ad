// Package langdata resolves the permitted-value tables of a language: legal
// features and values, relation labels, enhanced relation case markers,
// auxiliary and copula lemmas and the tokens allowed to contain spaces.
package langdata

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// ErrUnknownLanguage is returned when a store holds no data for a language.
var ErrUnknownLanguage = errors.New("unknown language")

// LangUD selects language independent validation.
const LangUD = "ud"

// Feature describes a permitted feature.
type Feature struct {
	Values []string `json:"values"`

	// UPOS lists the tags the feature may appear with; empty means any.
	UPOS []string `json:"upos,omitempty"`

	// RequiredFor lists the tags that must carry the feature.
	RequiredFor []string `json:"required_for,omitempty"`
}

// Spec is the immutable data of one language.
type Spec struct {
	Lang string `json:"lang"`

	Features map[string]Feature `json:"features,omitempty"`
	Deprels  []string           `json:"deprels,omitempty"`

	// Edeprels lists enhanced relations permitted beyond the basic ones and
	// their case marked forms.
	Edeprels    []string `json:"edeprels,omitempty"`
	CaseMarkers []string `json:"case_markers,omitempty"`

	Auxiliaries []string `json:"auxiliaries,omitempty"`
	Copulas     []string `json:"copulas,omitempty"`

	// SpaceExceptions are patterns of FORMs or LEMMAs allowed to contain a
	// space.
	SpaceExceptions []string `json:"space_exceptions,omitempty"`

	deprels  map[string]bool
	edeprels map[string]bool
	markers  map[string]bool
	aux      map[string]bool
	cop      map[string]bool
	spaces   []*regexp.Regexp
}

// Compile builds the lookup sets. It must be called before any lookup.
func (s *Spec) Compile() error {
	s.deprels = toSet(s.Deprels)
	s.edeprels = toSet(s.Edeprels)
	s.markers = toSet(s.CaseMarkers)
	s.aux = toSet(s.Auxiliaries)
	s.cop = toSet(s.Copulas)

	s.spaces = s.spaces[:0]
	for _, p := range s.SpaceExceptions {
		re, err := regexp.Compile("^(?:" + p + ")$")
		if err != nil {
			return fmt.Errorf("language %s: space exception %q: %w", s.Lang, p, err)
		}
		s.spaces = append(s.spaces, re)
	}
	return nil
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, i := range items {
		set[i] = true
	}
	return set
}

// HasDeprel reports whether rel is a permitted basic relation.
func (s *Spec) HasDeprel(rel string) bool {
	return s.deprels[rel]
}

// HasEdeprel reports whether rel is a permitted enhanced relation: "ref", an
// explicitly listed one, or a basic relation optionally followed by case
// markers. Markers are checked only when the language lists them.
func (s *Spec) HasEdeprel(rel string) bool {
	if rel == "ref" || s.edeprels[rel] || s.deprels[rel] {
		return true
	}

	parts := strings.Split(rel, ":")
	for cut := min(2, len(parts)-1); cut >= 1; cut-- {
		base := strings.Join(parts[:cut], ":")
		if !s.deprels[base] && !s.edeprels[base] {
			continue
		}
		if s.knownMarkers(parts[cut:]) {
			return true
		}
	}
	return false
}

func (s *Spec) knownMarkers(markers []string) bool {
	for _, m := range markers {
		if len(s.markers) > 0 && !s.markers[m] && !s.edeprels[m] {
			return false
		}
	}
	return true
}

// Feature returns the definition of a feature. Layered names such as
// "Number[psor]" are looked up as given.
func (s *Spec) Feature(name string) (Feature, bool) {
	f, ok := s.Features[name]
	return f, ok
}

// FeatureValue reports whether name=value is permitted.
func (s *Spec) FeatureValue(name, value string) bool {
	f, ok := s.Features[name]
	return ok && slices.Contains(f.Values, value)
}

// Required returns the features that words tagged upos must carry, sorted.
func (s *Spec) Required(upos string) []string {
	var req []string
	for name, f := range s.Features {
		if slices.Contains(f.RequiredFor, upos) {
			req = append(req, name)
		}
	}
	slices.Sort(req)
	return req
}

func (s *Spec) IsAuxiliary(lemma string) bool { return s.aux[lemma] }
func (s *Spec) IsCopula(lemma string) bool    { return s.cop[lemma] }

// HasAuxiliaries reports whether the language lists auxiliaries at all.
func (s *Spec) HasAuxiliaries() bool { return len(s.aux) > 0 }
func (s *Spec) HasCopulas() bool     { return len(s.cop) > 0 }

// SpaceAllowed reports whether token may contain a space.
func (s *Spec) SpaceAllowed(token string) bool {
	for _, re := range s.spaces {
		if re.MatchString(token) {
			return true
		}
	}
	return false
}

// Reader reads language data.
type Reader interface {
	// Read returns the data of lang, or an error wrapping
	// ErrUnknownLanguage.
	Read(lang string) (Spec, error)

	// Langs returns the codes of every stored language, sorted.
	Langs() ([]string, error)
}

// Writer persists language data.
type Writer interface {
	Write(spec Spec) error
}
