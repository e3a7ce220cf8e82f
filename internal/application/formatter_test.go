package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/reviewreport/internal/application"
	"github.com/ericfisherdev/reviewreport/internal/domain/model"
	"github.com/ericfisherdev/reviewreport/internal/i18n"
)

func ptrTime(t time.Time) *time.Time { return &t }

func ptrInt(i int) *int { return &i }

func ptrConsidered(c model.ConsideredStatus) *model.ConsideredStatus { return &c }

func translator(t *testing.T, locale string) *i18n.Translator {
	t.Helper()
	catalog, err := i18n.Load("en")
	require.NoError(t, err)
	return catalog.Translator(locale)
}

// cells indexes a record by column key.
func cells(t *testing.T, record []string) map[string]string {
	t.Helper()
	require.Len(t, record, len(application.ReviewReportColumns))
	out := make(map[string]string, len(record))
	for i, col := range application.ReviewReportColumns {
		out[col.Key] = record[i]
	}
	return out
}

func TestReviewReportColumns(t *testing.T) {
	require.Len(t, application.ReviewReportColumns, 27)
	assert.Equal(t, "stage_id", application.ReviewReportColumns[0].Key)
	assert.Equal(t, "comments", application.ReviewReportColumns[26].Key)

	header := application.HeaderRow(translator(t, "en"))
	assert.Equal(t, "Stage", header[0])
	assert.Equal(t, "Overdue Days for Response", header[20])
	assert.Equal(t, "Comments On Submission", header[26])

	header = application.HeaderRow(translator(t, "fr_CA"))
	assert.Equal(t, "Étape", header[0])
}

func TestRowFormatter_Format(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	row := model.ReviewRow{
		ReviewID:         7,
		SubmissionID:     10,
		ReviewerID:       20,
		StageID:          model.StageExternalReview,
		Round:            2,
		Submission:       "On Rounding",
		Reviewer:         "rreviewer",
		UserGiven:        "Rita",
		UserFamily:       "Reviewer",
		ORCID:            "https://orcid.org/0000-0001-2345-6789",
		Country:          "CA",
		Affiliation:      "University of Somewhere",
		Email:            "rita@example.org",
		DateAssigned:     ptrTime(time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC)),
		DateNotified:     ptrTime(time.Date(2026, 2, 1, 9, 31, 0, 0, time.UTC)),
		DateResponseDue:  ptrTime(time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)),
		DateDue:          ptrTime(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)),
		Declined:         false,
		Cancelled:        true,
		Considered:       ptrConsidered(model.ConsideredReconsidered),
		RecommendationID: ptrInt(2),
	}

	comments := model.NewCommentMap([]model.ReviewerComment{
		{SubmissionID: 10, AuthorID: 20, Comments: "first"},
		{SubmissionID: 10, AuthorID: 20, Comments: "second"},
	})
	f := application.NewRowFormatter(
		translator(t, "en"),
		comments,
		map[int64]string{20: "statistics, numerics"},
		map[int]string{2: "Revisions Required"},
		nil,
	)

	record, err := f.Format(context.Background(), row, now)
	require.NoError(t, err)
	got := cells(t, record)

	assert.Equal(t, "Review", got["stage_id"])
	assert.Equal(t, "2", got["round"])
	assert.Equal(t, "On Rounding", got["submission"])
	assert.Equal(t, "10", got["submission_id"])
	assert.Equal(t, "rreviewer", got["reviewer"])
	assert.Equal(t, "Rita", got["user_given"])
	assert.Equal(t, "Reviewer", got["user_family"])
	assert.Equal(t, "https://orcid.org/0000-0001-2345-6789", got["orcid"])
	assert.Equal(t, "CA", got["country"])
	assert.Equal(t, "University of Somewhere", got["affiliation"])
	assert.Equal(t, "rita@example.org", got["email"])
	assert.Equal(t, "statistics, numerics", got["interests"])
	assert.Equal(t, "2026-02-01 09:30:00", got["date_assigned"])
	assert.Equal(t, "2026-02-01 09:31:00", got["date_notified"])
	assert.Equal(t, "", got["date_confirmed"])
	assert.Equal(t, "", got["date_completed"])
	assert.Equal(t, "", got["date_acknowledged"])
	assert.Equal(t, "Reconsidered", got["considered"])
	assert.Equal(t, "", got["date_reminded"])
	assert.Equal(t, "2026-02-15 23:59:59", got["date_response_due"])
	assert.Equal(t, "23", got["overdue_response"])
	assert.Equal(t, "2026-03-01 23:59:59", got["date_due"])
	assert.Equal(t, "", got["overdue"], "response deadline takes precedence")
	assert.Equal(t, "No", got["declined"])
	assert.Equal(t, "Yes", got["cancelled"])
	assert.Equal(t, "Revisions Required", got["reviewer_recommendation_id"])
	assert.Equal(t, "first; second", got["comments"])
}

func TestRowFormatter_BlankLookups(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	row := model.ReviewRow{
		SubmissionID:     10,
		ReviewerID:       99,
		StageID:          model.Stage(42),
		Round:            1,
		Considered:       ptrConsidered(model.ConsideredStatus(9)),
		RecommendationID: ptrInt(5),
	}

	f := application.NewRowFormatter(translator(t, "en"), nil, nil, nil, nil)
	record, err := f.Format(context.Background(), row, now)
	require.NoError(t, err)
	got := cells(t, record)

	assert.Equal(t, "", got["stage_id"])
	assert.Equal(t, "", got["interests"])
	assert.Equal(t, "", got["considered"])
	assert.Equal(t, "", got["reviewer_recommendation_id"])
	assert.Equal(t, "", got["comments"])
	assert.Equal(t, "", got["overdue_response"])
	assert.Equal(t, "", got["overdue"])
}

func TestRowFormatter_ConfirmedOverdueReview(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	row := model.ReviewRow{
		StageID:         model.StageExternalReview,
		DateConfirmed:   ptrTime(time.Date(2026, 2, 3, 8, 0, 0, 0, time.UTC)),
		DateResponseDue: ptrTime(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)),
		DateDue:         ptrTime(time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)),
	}

	f := application.NewRowFormatter(translator(t, "fr_CA"), nil, nil, nil, nil)
	record, err := f.Format(context.Background(), row, now)
	require.NoError(t, err)
	got := cells(t, record)

	assert.Equal(t, "Évaluation", got["stage_id"])
	assert.Equal(t, "", got["overdue_response"])
	assert.Equal(t, "5", got["overdue"])
	assert.Equal(t, "2026-03-05 12:00:00", got["date_due"])
	assert.Equal(t, "Non", got["declined"])
}

func TestRowFormatter_FallsBackToReviewForm(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	store := formStore()
	forms := application.NewReviewFormRenderer(store, "en", "en")

	commented := completedRow(7, 1)
	commented.ReviewerID = 20
	comments := model.NewCommentMap([]model.ReviewerComment{
		{SubmissionID: commented.SubmissionID, AuthorID: 20, Comments: "see attached"},
	})

	f := application.NewRowFormatter(translator(t, "en"), comments, nil, nil, forms)

	record, err := f.Format(context.Background(), commented, now)
	require.NoError(t, err)
	assert.Equal(t, "see attached", cells(t, record)["comments"])
	assert.Equal(t, 0, store.elementCalls, "form is not rendered when comments exist")

	uncommented := completedRow(7, 1)
	uncommented.ReviewerID = 21
	record, err = f.Format(context.Background(), uncommented, now)
	require.NoError(t, err)
	assert.Contains(t, cells(t, record)["comments"], "<p>Verdict</p><blockquote>Reject</blockquote><br>")
}
