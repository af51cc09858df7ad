package langdata

import (
	"errors"
	"fmt"
)

// Registry resolves and caches language data by code. A nil Reader serves
// no language besides "ud".
type Registry struct {
	reader Reader

	specs  map[string]*Spec
	failed map[string]error
}

func NewRegistry(r Reader) *Registry {
	return &Registry{
		reader: r,
		specs:  map[string]*Spec{},
		failed: map[string]error{},
	}
}

// Spec returns the compiled data of lang. "ud" yields an empty Spec. Errors
// are cached as well, so a missing language is read once.
func (r *Registry) Spec(lang string) (*Spec, error) {
	if s, ok := r.specs[lang]; ok {
		return s, nil
	}
	if err, ok := r.failed[lang]; ok {
		return nil, err
	}

	s, err := r.load(lang)
	if err != nil {
		r.failed[lang] = err
		return nil, err
	}
	r.specs[lang] = s
	return s, nil
}

func (r *Registry) load(lang string) (*Spec, error) {
	if lang == LangUD {
		s := &Spec{Lang: LangUD}
		return s, s.Compile()
	}
	if r.reader == nil {
		return nil, fmt.Errorf("%w: %s (no language data configured)", ErrUnknownLanguage, lang)
	}

	spec, err := r.reader.Read(lang)
	if err != nil {
		return nil, fmt.Errorf("language %s: %w", lang, err)
	}
	spec.Lang = lang
	if err := spec.Compile(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// IsUnknown reports whether err means the language has no data, as opposed
// to a broken store.
func IsUnknown(err error) bool {
	return errors.Is(err, ErrUnknownLanguage)
}
