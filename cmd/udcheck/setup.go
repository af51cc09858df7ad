package main

import (
	"fmt"
	"os"

	"github.com/revelaction/udcheck/langdata"
	"github.com/revelaction/udcheck/langdata/filesystem"
)

// NewLangReader selects the language data store of path: a directory of
// <lang>.json files or a SQLite file. An empty path yields a nil Reader,
// which serves "ud" only.
func NewLangReader(d *DataPool, path string) (langdata.Reader, error) {
	if path == "" {
		return nil, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("language data not found: %s", path)
	}

	if info.IsDir() {
		return filesystem.NewStore(path), nil
	}

	st, err := d.Store(path)
	if err != nil {
		return nil, err
	}
	return st, nil
}
