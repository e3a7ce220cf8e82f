package sqlite

import (
	"context"
	"testing"

	"github.com/ericfisherdev/reviewreport/internal/domain/model"
	"github.com/ericfisherdev/reviewreport/internal/domain/port/driven"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalRepo_GetByPath(t *testing.T) {
	db := setupTestDB(t)
	id := addTestJournal(t, db, "jpk")
	repo := NewJournalRepo(db)

	got, err := repo.GetByPath(context.Background(), "jpk")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, id, got.ID)
	assert.Equal(t, "jpk", got.Path)
	assert.Equal(t, "en", got.PrimaryLocale)
	assert.Equal(t, []string{"en", "fr_CA"}, got.SupportedLocales)
	assert.Equal(t, model.LocalizedText{"en": "Journal jpk"}, got.Name)
}

func TestJournalRepo_GetByPath_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewJournalRepo(db)

	got, err := repo.GetByPath(context.Background(), "missing")
	assert.Nil(t, got)
	require.Error(t, err)
	assert.ErrorIs(t, err, driven.ErrJournalNotFound)
}

func TestJournalRepo_ListAll(t *testing.T) {
	db := setupTestDB(t)
	addTestJournal(t, db, "zeta")
	addTestJournal(t, db, "alpha")
	repo := NewJournalRepo(db)

	journals, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, journals, 2)

	assert.Equal(t, "alpha", journals[0].Path)
	assert.Equal(t, "zeta", journals[1].Path)
	assert.Equal(t, "Journal zeta", journals[1].Name["en"])
}

func TestJournalRepo_ListAll_Empty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewJournalRepo(db)

	journals, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, journals)
}
