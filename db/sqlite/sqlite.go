package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaFS embed.FS

type SQLiteDB struct {
	Conn   *sql.DB
	Ctx    context.Context
	Cancel context.CancelFunc
	Path   string
}

func NewSQLiteDB(path string) *SQLiteDB {
	ctx, cancel := context.WithCancel(context.Background())
	return &SQLiteDB{
		Ctx:    ctx,
		Cancel: cancel,
		Path:   path,
	}
}

func (s *SQLiteDB) Connect() error {
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	conn, err := sql.Open("sqlite3", s.Path+"?_foreign_keys=on")
	if err != nil {
		return err
	}

	// sqlite serializes writes; a single connection avoids SQLITE_BUSY.
	conn.SetMaxOpenConns(1)

	if err := applySchema(conn); err != nil {
		conn.Close()
		return err
	}

	s.Conn = conn
	return s.Conn.Ping()
}

func (s *SQLiteDB) Disconnect() error {
	s.Cancel()
	if s.Conn != nil {
		return s.Conn.Close()
	}
	return nil
}

func (s *SQLiteDB) GetContext() context.Context {
	return s.Ctx
}

func applySchema(conn *sql.DB) error {
	sqlBytes, err := fs.ReadFile(schemaFS, "schema.sql")
	if err != nil {
		return err
	}
	_, err = conn.Exec(string(sqlBytes))
	return err
}
