package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/ericfisherdev/reviewreport/internal/domain/model"
	"github.com/ericfisherdev/reviewreport/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.JournalStore = (*JournalRepo)(nil)

// JournalRepo is the SQLite implementation of the JournalStore port interface.
type JournalRepo struct {
	db *DB
}

// NewJournalRepo creates a new JournalRepo backed by the given DB.
func NewJournalRepo(db *DB) *JournalRepo {
	return &JournalRepo{db: db}
}

// GetByPath retrieves a journal by its URL path. Returns ErrJournalNotFound
// if no journal has that path.
func (r *JournalRepo) GetByPath(ctx context.Context, path string) (*model.Journal, error) {
	const query = `SELECT id, path, primary_locale, supported_locales FROM journals WHERE path = ?`

	journal, err := scanJournal(r.db.Reader.QueryRowContext(ctx, query, path))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get journal %s: %w", path, driven.ErrJournalNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get journal %s: %w", path, err)
	}

	names, err := r.names(ctx, journal.ID)
	if err != nil {
		return nil, err
	}
	journal.Name = names

	return journal, nil
}

// ListAll returns all journals ordered by path.
func (r *JournalRepo) ListAll(ctx context.Context) ([]model.Journal, error) {
	const query = `SELECT id, path, primary_locale, supported_locales FROM journals ORDER BY path`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list journals: %w", err)
	}
	defer rows.Close()

	var journals []model.Journal
	for rows.Next() {
		journal, err := scanJournal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan journal: %w", err)
		}
		journals = append(journals, *journal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journals: %w", err)
	}

	for i := range journals {
		names, err := r.names(ctx, journals[i].ID)
		if err != nil {
			return nil, err
		}
		journals[i].Name = names
	}

	return journals, nil
}

func (r *JournalRepo) names(ctx context.Context, journalID int64) (model.LocalizedText, error) {
	const query = `SELECT locale, name FROM journal_names WHERE journal_id = ?`

	rows, err := r.db.Reader.QueryContext(ctx, query, journalID)
	if err != nil {
		return nil, fmt.Errorf("query names for journal %d: %w", journalID, err)
	}
	defer rows.Close()

	names := model.LocalizedText{}
	for rows.Next() {
		var locale, name string
		if err := rows.Scan(&locale, &name); err != nil {
			return nil, fmt.Errorf("scan journal name: %w", err)
		}
		names[locale] = name
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal names: %w", err)
	}

	return names, nil
}

func scanJournal(s scanner) (*model.Journal, error) {
	var journal model.Journal
	var supported string

	if err := s.Scan(&journal.ID, &journal.Path, &journal.PrimaryLocale, &supported); err != nil {
		return nil, err
	}

	for _, locale := range strings.Split(supported, ",") {
		locale = strings.TrimSpace(locale)
		if locale != "" {
			journal.SupportedLocales = append(journal.SupportedLocales, locale)
		}
	}
	if len(journal.SupportedLocales) == 0 {
		journal.SupportedLocales = []string{journal.PrimaryLocale}
	}

	return &journal, nil
}
