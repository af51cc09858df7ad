package langdata

import (
	_ "embed"
	"encoding/json"
	"slices"
	"strings"
	"sync"
)

//go:embed data/universal.json
var universalJSON []byte

// UniversalTables holds the language independent permitted values.
type UniversalTables struct {
	UPOS     []string           `json:"upos"`
	Deprels  []string           `json:"deprels"`
	Features map[string]Feature `json:"features"`

	upos    map[string]bool
	deprels map[string]bool
}

var universal = sync.OnceValue(func() *UniversalTables {
	var u UniversalTables
	if err := json.Unmarshal(universalJSON, &u); err != nil {
		panic("langdata: embedded universal tables: " + err.Error())
	}
	u.upos = toSet(u.UPOS)
	u.deprels = toSet(u.Deprels)
	return &u
})

// Universal returns the embedded universal tables.
func Universal() *UniversalTables {
	return universal()
}

func (u *UniversalTables) HasUPOS(tag string) bool { return u.upos[tag] }

// HasDeprel reports whether the universal part of rel is a universal
// relation.
func (u *UniversalTables) HasDeprel(rel string) bool {
	base, _, _ := strings.Cut(rel, ":")
	return u.deprels[base]
}

// Feature returns a universal feature. Layered names are looked up by their
// base name.
func (u *UniversalTables) Feature(name string) (Feature, bool) {
	f, ok := u.Features[name]
	if !ok {
		f, ok = u.Features[FeatureBase(name)]
	}
	return f, ok
}

// FeatureValue reports whether value is a universal value of name.
func (u *UniversalTables) FeatureValue(name, value string) bool {
	f, ok := u.Feature(name)
	return ok && slices.Contains(f.Values, value)
}

// FeatureBase strips the layer of a feature name: "Number[psor]" gives
// "Number".
func FeatureBase(name string) string {
	base, _, _ := strings.Cut(name, "[")
	return base
}
