// Package filesystem stores language data as one <lang>.json file per
// language in a directory.
package filesystem

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/revelaction/udcheck/langdata"
)

type Store struct {
	root string
}

var _ langdata.Reader = (*Store)(nil)
var _ langdata.Writer = (*Store)(nil)

func NewStore(root string) *Store {
	return &Store{root: root}
}

func (st *Store) Langs() ([]string, error) {
	files, err := os.ReadDir(st.root)
	if err != nil {
		return nil, err
	}

	langs := []string{}
	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ".json" {
			continue
		}
		langs = append(langs, strings.TrimSuffix(file.Name(), ".json"))
	}

	sort.Strings(langs)
	return langs, nil
}

func (st *Store) Read(lang string) (langdata.Spec, error) {
	content, err := os.ReadFile(filepath.Join(st.root, lang+".json"))
	if errors.Is(err, fs.ErrNotExist) {
		return langdata.Spec{}, fmt.Errorf("%w: %s", langdata.ErrUnknownLanguage, lang)
	}
	if err != nil {
		return langdata.Spec{}, err
	}

	var spec langdata.Spec
	if err := json.Unmarshal(content, &spec); err != nil {
		return langdata.Spec{}, fmt.Errorf("decode %s.json: %w", lang, err)
	}
	spec.Lang = lang
	return spec, nil
}

func (st *Store) Write(spec langdata.Spec) error {
	data, err := json.MarshalIndent(spec, "", "\t")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	return os.WriteFile(filepath.Join(st.root, spec.Lang+".json"), data, 0644)
}
