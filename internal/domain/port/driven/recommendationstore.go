package driven

import (
	"context"

	"github.com/ericfisherdev/reviewreport/internal/domain/model"
)

// RecommendationStore defines the driven port for a journal's reviewer
// recommendation options.
type RecommendationStore interface {
	// ListByJournal returns all options, active or not, so that historical
	// recommendations still resolve to a label.
	ListByJournal(ctx context.Context, journalID int64) ([]model.RecommendationOption, error)
}
