package driven

import (
	"context"

	"github.com/ericfisherdev/reviewreport/internal/domain/model"
)

// ReviewReportStore defines the driven port for the three datasets behind
// the review report.
type ReviewReportStore interface {
	// ListReviewRows returns every review assignment in the journal, with
	// submission titles resolved for locale (falling back to the journal's
	// primary locale), ordered by submission and assignment.
	ListReviewRows(ctx context.Context, journalID int64, locale string) ([]model.ReviewRow, error)

	// ListReviewerComments returns reviewer comments on the journal's
	// submissions in the order they were posted.
	ListReviewerComments(ctx context.Context, journalID int64) ([]model.ReviewerComment, error)

	// ReviewerInterests returns each reviewer's interests joined into one
	// string, keyed by reviewer id. Reviewers without interests are absent.
	ReviewerInterests(ctx context.Context, journalID int64) (map[int64]string, error)
}
