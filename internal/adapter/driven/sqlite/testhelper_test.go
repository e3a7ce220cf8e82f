package sqlite

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/ericfisherdev/reviewreport/internal/domain/model"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a named shared in-memory SQLite database for testing.
// Writer and reader connections share the same in-memory database via cache=shared.
// A unique name derived from t.Name() ensures isolation between parallel tests.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	// Percent-encode the test name so it's a safe SQLite URI filename component
	// and cannot be misinterpreted as query parameters in the DSN.
	// WAL mode is not applicable to in-memory databases; omit journal_mode pragma.
	dsn := buildDSN("file:"+url.PathEscape(t.Name())+"?mode=memory&cache=shared", connPragmas)
	ctx := context.Background()

	writer, err := openPool(ctx, dsn, "writer", writerConns)
	if err != nil {
		t.Fatalf("create test db: %v", err)
	}

	reader, err := openPool(ctx, dsn, "reader", readerConns)
	if err != nil {
		_ = writer.Close()
		t.Fatalf("create test db: %v", err)
	}

	db := &DB{Writer: writer, Reader: reader, path: dsn}

	if err := RunMigrations(db.Writer); err != nil {
		_ = db.Close()
		t.Fatalf("run migrations: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })

	return db
}

// fixedTime returns a UTC wall-clock time pointer for fixtures.
func fixedTime(year int, month time.Month, day, hour, minute, sec int) *time.Time {
	t := time.Date(year, month, day, hour, minute, sec, 0, time.UTC)
	return &t
}

// addTestJournal inserts a journal with English and French locales.
func addTestJournal(t *testing.T, db *DB, path string) int64 {
	t.Helper()
	id, err := NewSeedRepo(db, time.UTC).AddJournal(context.Background(), model.Journal{
		Path:             path,
		Name:             model.LocalizedText{"en": "Journal " + path},
		PrimaryLocale:    "en",
		SupportedLocales: []string{"en", "fr_CA"},
	})
	require.NoError(t, err)
	return id
}

// addTestReviewer inserts a reviewer with the given interests.
func addTestReviewer(t *testing.T, db *DB, username string, interests ...string) int64 {
	t.Helper()
	id, err := NewSeedRepo(db, time.UTC).AddUser(context.Background(), model.User{
		Username:    username,
		GivenName:   "Given " + username,
		FamilyName:  "Family " + username,
		Email:       username + "@example.org",
		ORCID:       "https://orcid.org/0000-0002-1825-0097",
		Country:     "CA",
		Affiliation: "University of Example",
		Interests:   interests,
	})
	require.NoError(t, err)
	return id
}

// addTestSubmission inserts a submission with the given localized titles.
func addTestSubmission(t *testing.T, db *DB, journalID int64, titles model.LocalizedText) int64 {
	t.Helper()
	id, err := NewSeedRepo(db, time.UTC).AddSubmission(context.Background(), journalID, titles)
	require.NoError(t, err)
	return id
}
