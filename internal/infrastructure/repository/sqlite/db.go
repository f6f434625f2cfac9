package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"
	_ "modernc.org/sqlite"
)

// Open opens (creating if needed) the embedded store at path with tracing
// instrumentation. The pool is capped at one connection: sqlite allows a
// single writer and the ingestion pipelines are synchronous anyway.
func Open(path string) (*sqlx.DB, error) {
	db, err := otelsqlx.Open("sqlite", DSN(path),
		otelsql.WithAttributes(attribute.String("db.system", "sqlite")),
		otelsql.WithDBName("livestats"),
	)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite store %s: %w", path, err)
	}
	return db, nil
}

// DSN renders the modernc driver DSN with the pragmas every connection needs.
func DSN(path string) string {
	if path == ":memory:" {
		return ":memory:"
	}
	return "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)"
}
