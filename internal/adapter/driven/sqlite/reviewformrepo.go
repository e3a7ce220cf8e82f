package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/ericfisherdev/reviewreport/internal/domain/model"
	"github.com/ericfisherdev/reviewreport/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.ReviewFormStore = (*ReviewFormRepo)(nil)

// Setting names stored in review_form_element_settings.
const (
	settingQuestion          = "question"
	settingPossibleResponses = "possibleResponses"
)

// Response types stored in review_form_responses.
const (
	responseTypeInt    = "int"
	responseTypeString = "string"
	responseTypeObject = "object"
)

// ReviewFormRepo is the SQLite implementation of the ReviewFormStore port interface.
type ReviewFormRepo struct {
	db *DB
}

// NewReviewFormRepo creates a new ReviewFormRepo backed by the given DB.
func NewReviewFormRepo(db *DB) *ReviewFormRepo {
	return &ReviewFormRepo{db: db}
}

// ElementsByForm returns the form's elements ordered by seq, with their
// localized questions and possible responses populated.
func (r *ReviewFormRepo) ElementsByForm(ctx context.Context, reviewFormID int64) ([]model.ReviewFormElement, error) {
	const query = `
		SELECT id, review_form_id, seq, element_type, included
		FROM review_form_elements
		WHERE review_form_id = ?
		ORDER BY seq, id
	`

	rows, err := r.db.Reader.QueryContext(ctx, query, reviewFormID)
	if err != nil {
		return nil, fmt.Errorf("query elements for review form %d: %w", reviewFormID, err)
	}
	defer rows.Close()

	var elements []model.ReviewFormElement
	index := make(map[int64]int)
	for rows.Next() {
		var el model.ReviewFormElement
		var elementType, included int
		if err := rows.Scan(&el.ID, &el.ReviewFormID, &el.Seq, &elementType, &included); err != nil {
			return nil, fmt.Errorf("scan review form element: %w", err)
		}
		el.Type = model.ElementType(elementType)
		el.Included = included != 0
		el.Question = model.LocalizedText{}
		el.PossibleResponses = map[string]model.ResponseOptions{}

		index[el.ID] = len(elements)
		elements = append(elements, el)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review form elements: %w", err)
	}

	if len(elements) == 0 {
		return elements, nil
	}

	if err := r.loadSettings(ctx, reviewFormID, elements, index); err != nil {
		return nil, err
	}

	return elements, nil
}

func (r *ReviewFormRepo) loadSettings(ctx context.Context, reviewFormID int64, elements []model.ReviewFormElement, index map[int64]int) error {
	const query = `
		SELECT s.review_form_element_id, s.locale, s.setting_name, s.setting_value
		FROM review_form_element_settings s
		JOIN review_form_elements e ON e.id = s.review_form_element_id
		WHERE e.review_form_id = ?
	`

	rows, err := r.db.Reader.QueryContext(ctx, query, reviewFormID)
	if err != nil {
		return fmt.Errorf("query element settings for review form %d: %w", reviewFormID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var elementID int64
		var locale, name, value string
		if err := rows.Scan(&elementID, &locale, &name, &value); err != nil {
			return fmt.Errorf("scan element setting: %w", err)
		}

		i, ok := index[elementID]
		if !ok {
			continue
		}

		switch name {
		case settingQuestion:
			elements[i].Question[locale] = value
		case settingPossibleResponses:
			var opts model.ResponseOptions
			if err := json.Unmarshal([]byte(value), &opts); err != nil {
				return fmt.Errorf("decode possible responses for element %d (%s): %w", elementID, locale, err)
			}
			elements[i].PossibleResponses[locale] = opts
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate element settings: %w", err)
	}

	return nil
}

// ResponsesByReview returns the review's form answers keyed by element id.
func (r *ReviewFormRepo) ResponsesByReview(ctx context.Context, reviewID int64) (map[int64]model.ReviewFormResponse, error) {
	const query = `
		SELECT review_form_element_id, response_type, response_value
		FROM review_form_responses
		WHERE review_id = ?
	`

	rows, err := r.db.Reader.QueryContext(ctx, query, reviewID)
	if err != nil {
		return nil, fmt.Errorf("query responses for review %d: %w", reviewID, err)
	}
	defer rows.Close()

	responses := make(map[int64]model.ReviewFormResponse)
	for rows.Next() {
		var elementID int64
		var responseType, value string
		if err := rows.Scan(&elementID, &responseType, &value); err != nil {
			return nil, fmt.Errorf("scan review form response: %w", err)
		}

		resp, err := decodeResponse(reviewID, elementID, responseType, value)
		if err != nil {
			return nil, err
		}
		responses[elementID] = resp
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review form responses: %w", err)
	}

	return responses, nil
}

// decodeResponse keeps the raw value as Text and additionally decodes option
// indexes for int and object responses.
func decodeResponse(reviewID, elementID int64, responseType, value string) (model.ReviewFormResponse, error) {
	resp := model.ReviewFormResponse{ReviewID: reviewID, ElementID: elementID, Text: value}

	switch responseType {
	case responseTypeInt:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return resp, fmt.Errorf("decode int response for review %d element %d: %w", reviewID, elementID, err)
		}
		resp.Selected = []int{n}
	case responseTypeObject:
		if err := json.Unmarshal([]byte(value), &resp.Selected); err != nil {
			return resp, fmt.Errorf("decode object response for review %d element %d: %w", reviewID, elementID, err)
		}
	}

	return resp, nil
}

// encodeResponse is the inverse of decodeResponse for the given element type.
func encodeResponse(elementType model.ElementType, resp model.ReviewFormResponse) (string, string, error) {
	switch {
	case elementType == model.ElementCheckboxes:
		data, err := json.Marshal(resp.Selected)
		if err != nil {
			return "", "", fmt.Errorf("encode checkbox response: %w", err)
		}
		return responseTypeObject, string(data), nil
	case elementType.HasMultipleResponses():
		if len(resp.Selected) == 0 {
			return responseTypeString, "", nil
		}
		return responseTypeInt, strconv.Itoa(resp.Selected[0]), nil
	default:
		return responseTypeString, resp.Text, nil
	}
}
