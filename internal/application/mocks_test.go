package application_test

import (
	"context"

	"github.com/ericfisherdev/reviewreport/internal/domain/model"
	"github.com/ericfisherdev/reviewreport/internal/domain/port/driven"
)

// --- Mock implementations ---

type mockJournalStore struct {
	journal *model.Journal
	err     error
}

func (m *mockJournalStore) GetByPath(_ context.Context, path string) (*model.Journal, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.journal == nil || m.journal.Path != path {
		return nil, driven.ErrJournalNotFound
	}
	return m.journal, nil
}

func (m *mockJournalStore) ListAll(_ context.Context) ([]model.Journal, error) {
	if m.journal == nil {
		return nil, m.err
	}
	return []model.Journal{*m.journal}, m.err
}

type mockReviewReportStore struct {
	rows        []model.ReviewRow
	comments    []model.ReviewerComment
	interests   map[int64]string
	rowsErr     error
	commentsErr error
	lastLocale  string
}

func (m *mockReviewReportStore) ListReviewRows(_ context.Context, _ int64, locale string) ([]model.ReviewRow, error) {
	m.lastLocale = locale
	return m.rows, m.rowsErr
}

func (m *mockReviewReportStore) ListReviewerComments(_ context.Context, _ int64) ([]model.ReviewerComment, error) {
	return m.comments, m.commentsErr
}

func (m *mockReviewReportStore) ReviewerInterests(_ context.Context, _ int64) (map[int64]string, error) {
	return m.interests, nil
}

type mockReviewFormStore struct {
	elements     map[int64][]model.ReviewFormElement
	responses    map[int64]map[int64]model.ReviewFormResponse
	elementCalls int
	err          error
}

func (m *mockReviewFormStore) ElementsByForm(_ context.Context, reviewFormID int64) ([]model.ReviewFormElement, error) {
	m.elementCalls++
	return m.elements[reviewFormID], m.err
}

func (m *mockReviewFormStore) ResponsesByReview(_ context.Context, reviewID int64) (map[int64]model.ReviewFormResponse, error) {
	return m.responses[reviewID], m.err
}

type mockRecommendationStore struct {
	options []model.RecommendationOption
}

func (m *mockRecommendationStore) ListByJournal(_ context.Context, _ int64) ([]model.RecommendationOption, error) {
	return m.options, nil
}
