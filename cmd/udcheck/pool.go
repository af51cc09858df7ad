package main

import (
	"fmt"

	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/revelaction/udcheck/langdata/sqlite/zombiezen"
)

// DataPool holds the SQLite connections to the language data of a run.
// Nothing is opened until a SQLite file is asked for; runs on JSON
// directories or on "ud" alone never touch SQLite.
type DataPool struct {
	path string
	pool *sqlitex.Pool
}

// Store returns the language data store of the SQLite file at path. A run
// reads one database; asking for another one is an error.
func (d *DataPool) Store(path string) (*zombiezen.Store, error) {
	if d.pool != nil {
		if path != d.path {
			return nil, fmt.Errorf("language data already open at %s, cannot open %s", d.path, path)
		}
		return zombiezen.NewStore(d.pool), nil
	}

	pool, err := zombiezen.NewPool(path)
	if err != nil {
		return nil, err
	}
	d.path, d.pool = path, pool
	return zombiezen.NewStore(pool), nil
}

// Close releases the connections, if any were opened.
func (d *DataPool) Close() error {
	if d.pool == nil {
		return nil
	}
	err := d.pool.Close()
	d.pool = nil
	return err
}
