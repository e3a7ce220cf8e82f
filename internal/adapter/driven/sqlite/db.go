package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// Connection pragmas applied to every pool. Report reads run on the reader
// pool while seeding writes through the single writer connection.
var connPragmas = []string{
	"busy_timeout(5000)",
	"synchronous(NORMAL)",
	"foreign_keys(ON)",
	"cache_size(-64000)",
}

const (
	writerConns = 1
	readerConns = 4
)

// DB holds the reader and writer pools of one SQLite database file.
// Writer is capped at one connection so concurrent seeds cannot hit
// "database is locked"; Reader serves report queries.
type DB struct {
	Writer *sql.DB
	Reader *sql.DB
	path   string
}

// NewDB opens dbPath in WAL mode with one writer connection and a small
// reader pool. Both pools are pinged before returning.
func NewDB(ctx context.Context, dbPath string) (*DB, error) {
	dsn := buildDSN("file:"+dbPath, append([]string{"journal_mode(WAL)"}, connPragmas...))

	writer, err := openPool(ctx, dsn, "writer", writerConns)
	if err != nil {
		return nil, err
	}

	reader, err := openPool(ctx, dsn, "reader", readerConns)
	if err != nil {
		_ = writer.Close()
		return nil, err
	}

	return &DB{Writer: writer, Reader: reader, path: dbPath}, nil
}

// buildDSN appends pragmas to a modernc "file:" URI.
func buildDSN(base string, pragmas []string) string {
	var b strings.Builder
	b.WriteString(base)
	for i, p := range pragmas {
		if i == 0 && !strings.Contains(base, "?") {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString("_pragma=")
		b.WriteString(p)
	}
	return b.String()
}

func openPool(ctx context.Context, dsn, role string, maxOpen int) (*sql.DB, error) {
	pool, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", role, err)
	}
	pool.SetMaxOpenConns(maxOpen)

	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("ping %s: %w", role, err)
	}

	return pool, nil
}

// Path returns the database file path the pools were opened with.
func (db *DB) Path() string {
	return db.path
}

// Close closes both pools, reporting the first failure.
func (db *DB) Close() error {
	readerErr := db.Reader.Close()
	writerErr := db.Writer.Close()

	switch {
	case readerErr != nil:
		return fmt.Errorf("close reader: %w", readerErr)
	case writerErr != nil:
		return fmt.Errorf("close writer: %w", writerErr)
	}
	return nil
}
