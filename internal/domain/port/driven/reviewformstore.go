package driven

import (
	"context"

	"github.com/ericfisherdev/reviewreport/internal/domain/model"
)

// ReviewFormStore defines the driven port for review form questions and answers.
type ReviewFormStore interface {
	// ElementsByForm returns the form's elements ordered by sequence.
	ElementsByForm(ctx context.Context, reviewFormID int64) ([]model.ReviewFormElement, error)

	// ResponsesByReview returns the review's answers keyed by element id.
	ResponsesByReview(ctx context.Context, reviewID int64) (map[int64]model.ReviewFormResponse, error)
}
