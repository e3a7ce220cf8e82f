package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/ericfisherdev/reviewreport/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewFormRepo_ElementsByForm(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	journalID := addTestJournal(t, db, "jpk")
	seed := NewSeedRepo(db, time.UTC)

	formID, err := seed.AddReviewForm(ctx, journalID, "Standard form")
	require.NoError(t, err)

	radioID, err := seed.AddReviewFormElement(ctx, model.ReviewFormElement{
		ReviewFormID: formID,
		Seq:          2,
		Type:         model.ElementRadioButtons,
		Included:     true,
		Question:     model.LocalizedText{"en": "<p>Is it original?</p>", "fr_CA": "<p>Est-ce original?</p>"},
		PossibleResponses: map[string]model.ResponseOptions{
			"en": {1: "Yes", 0: "No"},
		},
	})
	require.NoError(t, err)

	textID, err := seed.AddReviewFormElement(ctx, model.ReviewFormElement{
		ReviewFormID: formID,
		Seq:          1,
		Type:         model.ElementTextarea,
		Included:     false,
		Question:     model.LocalizedText{"en": "Private notes"},
	})
	require.NoError(t, err)

	repo := NewReviewFormRepo(db)
	elements, err := repo.ElementsByForm(ctx, formID)
	require.NoError(t, err)
	require.Len(t, elements, 2)

	// Ordered by seq.
	assert.Equal(t, textID, elements[0].ID)
	assert.Equal(t, model.ElementTextarea, elements[0].Type)
	assert.False(t, elements[0].Included)
	assert.Equal(t, "Private notes", elements[0].Question["en"])
	assert.Empty(t, elements[0].PossibleResponses)

	assert.Equal(t, radioID, elements[1].ID)
	assert.True(t, elements[1].Included)
	assert.Equal(t, "<p>Est-ce original?</p>", elements[1].Question["fr_CA"])
	assert.Equal(t, model.ResponseOptions{0: "No", 1: "Yes"}, elements[1].PossibleResponses["en"])
}

func TestReviewFormRepo_ElementsByForm_Empty(t *testing.T) {
	db := setupTestDB(t)

	elements, err := NewReviewFormRepo(db).ElementsByForm(context.Background(), 99)
	require.NoError(t, err)
	assert.Empty(t, elements)
}

func TestReviewFormRepo_ResponsesByReview(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	journalID := addTestJournal(t, db, "jpk")
	reviewerID := addTestReviewer(t, db, "rreviewer")
	submissionID := addTestSubmission(t, db, journalID, model.LocalizedText{"en": "T"})
	seed := NewSeedRepo(db, time.UTC)

	formID, err := seed.AddReviewForm(ctx, journalID, "Form")
	require.NoError(t, err)
	reviewID, err := seed.AddReviewAssignment(ctx, model.ReviewRow{
		SubmissionID: submissionID,
		ReviewerID:   reviewerID,
		StageID:      model.StageExternalReview,
		ReviewFormID: &formID,
	})
	require.NoError(t, err)

	elementTypes := []model.ElementType{model.ElementTextarea, model.ElementCheckboxes, model.ElementRadioButtons}
	ids := make([]int64, len(elementTypes))
	for i, et := range elementTypes {
		ids[i], err = seed.AddReviewFormElement(ctx, model.ReviewFormElement{ReviewFormID: formID, Seq: i, Type: et, Included: true})
		require.NoError(t, err)
	}

	require.NoError(t, seed.AddReviewFormResponse(ctx, model.ElementTextarea,
		model.ReviewFormResponse{ReviewID: reviewID, ElementID: ids[0], Text: "Line one\nLine two"}))
	require.NoError(t, seed.AddReviewFormResponse(ctx, model.ElementCheckboxes,
		model.ReviewFormResponse{ReviewID: reviewID, ElementID: ids[1], Selected: []int{0, 2}}))
	require.NoError(t, seed.AddReviewFormResponse(ctx, model.ElementRadioButtons,
		model.ReviewFormResponse{ReviewID: reviewID, ElementID: ids[2], Selected: []int{1}}))

	responses, err := NewReviewFormRepo(db).ResponsesByReview(ctx, reviewID)
	require.NoError(t, err)
	require.Len(t, responses, 3)

	assert.Equal(t, "Line one\nLine two", responses[ids[0]].Text)
	assert.Empty(t, responses[ids[0]].Selected)
	assert.Equal(t, []int{0, 2}, responses[ids[1]].Selected)
	assert.Equal(t, []int{1}, responses[ids[2]].Selected)
	assert.Equal(t, reviewID, responses[ids[2]].ReviewID)
}

func TestDecodeResponse_InvalidInt(t *testing.T) {
	_, err := decodeResponse(1, 2, responseTypeInt, "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "element 2")
}

func TestEncodeResponse_DropDownWithoutSelection(t *testing.T) {
	typ, value, err := encodeResponse(model.ElementDropDownBox, model.ReviewFormResponse{})
	require.NoError(t, err)
	assert.Equal(t, responseTypeString, typ)
	assert.Equal(t, "", value)
}
