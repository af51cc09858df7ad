package langdata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapReader struct {
	specs map[string]Spec
	reads int
}

func (m *mapReader) Read(lang string) (Spec, error) {
	m.reads++
	s, ok := m.specs[lang]
	if !ok {
		return Spec{}, ErrUnknownLanguage
	}
	return s, nil
}

func (m *mapReader) Langs() ([]string, error) { return nil, nil }

func english() Spec {
	return Spec{
		Features: map[string]Feature{
			"Number": {Values: []string{"Sing", "Plur"}, RequiredFor: []string{"NOUN"}},
			"Tense":  {Values: []string{"Past", "Pres"}, UPOS: []string{"VERB", "AUX"}},
		},
		Deprels:         []string{"nsubj", "obj", "root", "obl", "obl:tmod", "nmod", "punct"},
		Edeprels:        []string{"nsubj:xsubj"},
		CaseMarkers:     []string{"in", "of", "because_of"},
		Auxiliaries:     []string{"be", "have", "will"},
		Copulas:         []string{"be"},
		SpaceExceptions: []string{`[0-9]+ [0-9]+`},
	}
}

// TestRegistryCaches: data is read once, misses included.
func TestRegistryCaches(t *testing.T) {
	r := &mapReader{specs: map[string]Spec{"en": english()}}
	reg := NewRegistry(r)

	s1, err := reg.Spec("en")
	require.NoError(t, err)
	s2, err := reg.Spec("en")
	require.NoError(t, err)
	assert.Same(t, s1, s2)
	assert.Equal(t, "en", s1.Lang)

	_, err = reg.Spec("xx")
	assert.True(t, IsUnknown(err))
	_, err = reg.Spec("xx")
	assert.True(t, errors.Is(err, ErrUnknownLanguage))
	assert.Equal(t, 2, r.reads)
}

// TestRegistryUD: "ud" needs no store.
func TestRegistryUD(t *testing.T) {
	reg := NewRegistry(nil)
	s, err := reg.Spec(LangUD)
	require.NoError(t, err)
	assert.False(t, s.HasDeprel("nsubj"))

	_, err = reg.Spec("en")
	assert.True(t, IsUnknown(err))
}

func TestSpecLookups(t *testing.T) {
	s := english()
	require.NoError(t, s.Compile())

	assert.True(t, s.HasDeprel("obl:tmod"))
	assert.False(t, s.HasDeprel("obl:agent"))

	assert.True(t, s.HasEdeprel("ref"))
	assert.True(t, s.HasEdeprel("nsubj:xsubj"))
	assert.True(t, s.HasEdeprel("obl:in"))
	assert.True(t, s.HasEdeprel("obl:tmod:of"))
	assert.True(t, s.HasEdeprel("nmod:because_of"))
	assert.False(t, s.HasEdeprel("obl:with"), "unknown case marker")
	assert.False(t, s.HasEdeprel("acl:in"), "unknown base relation")

	assert.True(t, s.FeatureValue("Number", "Sing"))
	assert.False(t, s.FeatureValue("Number", "Dual"))
	assert.Equal(t, []string{"Number"}, s.Required("NOUN"))
	assert.Empty(t, s.Required("VERB"))

	assert.True(t, s.IsAuxiliary("will"))
	assert.True(t, s.IsCopula("be"))
	assert.False(t, s.IsCopula("have"))

	assert.True(t, s.SpaceAllowed("10 000"))
	assert.False(t, s.SpaceAllowed("New York"))
}

func TestSpecBadSpacePattern(t *testing.T) {
	s := Spec{Lang: "en", SpaceExceptions: []string{"("}}
	assert.Error(t, s.Compile())
}

func TestUniversal(t *testing.T) {
	u := Universal()
	assert.Len(t, u.UPOS, 17)
	assert.Len(t, u.Deprels, 37)
	assert.True(t, u.HasUPOS("PROPN"))
	assert.False(t, u.HasUPOS("PROP"))
	assert.True(t, u.HasDeprel("obl:tmod"))
	assert.False(t, u.HasDeprel("subj"))
	assert.True(t, u.FeatureValue("Number[psor]", "Plur"))
	assert.False(t, u.FeatureValue("Number", "Many"))
	assert.Equal(t, "Number", FeatureBase("Number[psor]"))
}
