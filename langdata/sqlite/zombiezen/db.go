// Package zombiezen stores language data in a SQLite file, one JSON row per
// language.
package zombiezen

import (
	"context"
	"embed"
	"fmt"
	"path"
	"runtime"

	"zombiezen.com/go/sqlite/sqlitex"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

// NewPool creates a SQLite connection pool for dbPath.
func NewPool(dbPath string) (*sqlitex.Pool, error) {
	// default flags: OpenReadWrite | OpenCreate | OpenWAL | OpenURI
	pool, err := sqlitex.NewPool("file:"+dbPath, sqlitex.PoolOptions{
		PoolSize: runtime.NumCPU(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sqlite pool at %s: %w", dbPath, err)
	}
	return pool, nil
}

// CreateSchemas runs the embedded script schemaName, e.g. "specs.sql".
func CreateSchemas(pool *sqlitex.Pool, schemaName string) error {
	scriptPath := path.Join("sql", schemaName)

	script, err := sqlFiles.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("failed to read embedded sql file %s: %w", scriptPath, err)
	}

	conn, err := pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer pool.Put(conn)

	if err := sqlitex.ExecuteScript(conn, string(script), nil); err != nil {
		return fmt.Errorf("failed to execute script %s: %w", schemaName, err)
	}

	return nil
}
