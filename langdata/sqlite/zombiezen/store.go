package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/revelaction/udcheck/langdata"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

type Store struct {
	pool *sqlitex.Pool
}

var _ langdata.Reader = (*Store)(nil)
var _ langdata.Writer = (*Store)(nil)

func NewStore(pool *sqlitex.Pool) *Store {
	return &Store{pool: pool}
}

func (st *Store) Langs() ([]string, error) {
	conn, err := st.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer st.pool.Put(conn)

	langs := []string{}
	err = sqlitex.Execute(conn, "SELECT lang FROM specs ORDER BY lang", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			langs = append(langs, stmt.ColumnText(0))
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return langs, nil
}

func (st *Store) Read(lang string) (langdata.Spec, error) {
	conn, err := st.pool.Take(context.TODO())
	if err != nil {
		return langdata.Spec{}, err
	}
	defer st.pool.Put(conn)

	var spec langdata.Spec
	found := false
	err = sqlitex.Execute(conn, "SELECT data FROM specs WHERE lang = ?", &sqlitex.ExecOptions{
		Args: []interface{}{lang},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			return json.Unmarshal([]byte(stmt.ColumnText(0)), &spec)
		},
	})
	if err != nil {
		return langdata.Spec{}, fmt.Errorf("read language %s: %w", lang, err)
	}
	if !found {
		return langdata.Spec{}, fmt.Errorf("%w: %s", langdata.ErrUnknownLanguage, lang)
	}

	spec.Lang = lang
	return spec, nil
}

func (st *Store) Write(spec langdata.Spec) (err error) {
	data, err := json.Marshal(spec)
	if err != nil {
		return err
	}

	conn, err := st.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer st.pool.Put(conn)

	err = sqlitex.Execute(conn, "INSERT OR REPLACE INTO specs (lang, data) VALUES (?, ?)", &sqlitex.ExecOptions{
		Args: []interface{}{spec.Lang, string(data)},
	})
	if err != nil {
		return fmt.Errorf("failed to write language %s: %w", spec.Lang, err)
	}
	return nil
}

func (st *Store) Close() error {
	return st.pool.Close()
}
