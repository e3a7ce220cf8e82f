package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDemo(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	require.NoError(t, SeedDemo(ctx, NewSeedRepo(db, time.UTC), now))

	journal, err := NewJournalRepo(db).GetByPath(ctx, DemoJournalPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "fr_CA"}, journal.SupportedLocales)

	reports := NewReviewReportRepo(db, time.UTC)
	rows, err := reports.ListReviewRows(ctx, journal.ID, "fr_CA")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "La restauration des milieux humides, dix ans après", rows[0].Submission)

	comments, err := reports.ListReviewerComments(ctx, journal.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 2)

	interests, err := reports.ReviewerInterests(ctx, journal.ID)
	require.NoError(t, err)
	assert.Equal(t, "ecology, wetlands", interests[rows[0].ReviewerID])

	options, err := NewRecommendationRepo(db).ListByJournal(ctx, journal.ID)
	require.NoError(t, err)
	assert.Len(t, options, 3)

	var completed int
	for _, row := range rows {
		if row.IsCompleted() {
			completed++
			require.NotNil(t, row.ReviewFormID)

			forms := NewReviewFormRepo(db)
			elements, err := forms.ElementsByForm(ctx, *row.ReviewFormID)
			require.NoError(t, err)
			assert.Len(t, elements, 4)

			responses, err := forms.ResponsesByReview(ctx, row.ReviewID)
			require.NoError(t, err)
			assert.Len(t, responses, 4)
			assert.Equal(t, []int{0, 2}, responses[elements[1].ID].Selected)
		}
	}
	assert.Equal(t, 1, completed)
}

func TestSeedDemo_RejectsSecondRun(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	seed := NewSeedRepo(db, time.UTC)

	require.NoError(t, SeedDemo(ctx, seed, time.Now()))
	assert.Error(t, SeedDemo(ctx, seed, time.Now()), "journal path is unique")
}
