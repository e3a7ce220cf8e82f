package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ericfisherdev/reviewreport/internal/domain/model"
	"github.com/ericfisherdev/reviewreport/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.RecommendationStore = (*RecommendationRepo)(nil)

// RecommendationRepo is the SQLite implementation of the RecommendationStore port interface.
type RecommendationRepo struct {
	db *DB
}

// NewRecommendationRepo creates a new RecommendationRepo backed by the given DB.
func NewRecommendationRepo(db *DB) *RecommendationRepo {
	return &RecommendationRepo{db: db}
}

// ListByJournal returns the journal's recommendation options ordered by id,
// including inactive ones.
func (r *RecommendationRepo) ListByJournal(ctx context.Context, journalID int64) ([]model.RecommendationOption, error) {
	const query = `
		SELECT rr.recommendation_id, rr.active, t.locale, t.title
		FROM reviewer_recommendations rr
		LEFT JOIN reviewer_recommendation_titles t
		       ON t.journal_id = rr.journal_id AND t.recommendation_id = rr.recommendation_id
		WHERE rr.journal_id = ?
		ORDER BY rr.recommendation_id
	`

	rows, err := r.db.Reader.QueryContext(ctx, query, journalID)
	if err != nil {
		return nil, fmt.Errorf("query recommendations for journal %d: %w", journalID, err)
	}
	defer rows.Close()

	var options []model.RecommendationOption
	index := make(map[int]int)
	for rows.Next() {
		var id, active int
		var locale, title sql.NullString
		if err := rows.Scan(&id, &active, &locale, &title); err != nil {
			return nil, fmt.Errorf("scan recommendation: %w", err)
		}

		i, ok := index[id]
		if !ok {
			i = len(options)
			index[id] = i
			options = append(options, model.RecommendationOption{
				ID:        id,
				ContextID: journalID,
				Title:     model.LocalizedText{},
				Active:    active != 0,
			})
		}

		if locale.Valid && title.Valid {
			options[i].Title[locale.String] = title.String
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recommendations: %w", err)
	}

	return options, nil
}
