package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/ericfisherdev/reviewreport/internal/domain/model"
	"github.com/ericfisherdev/reviewreport/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.ReviewReportStore = (*ReviewReportRepo)(nil)

// commentTypePeerReview marks submission comments written by reviewers.
const commentTypePeerReview = 1

// interestSeparator joins a reviewer's interests into one report cell.
const interestSeparator = ", "

// ReviewReportRepo is the SQLite implementation of the ReviewReportStore port interface.
type ReviewReportRepo struct {
	db  *DB
	loc *time.Location
}

// NewReviewReportRepo creates a new ReviewReportRepo backed by the given DB.
// Stored dates are interpreted in loc; a nil loc means UTC.
func NewReviewReportRepo(db *DB, loc *time.Location) *ReviewReportRepo {
	if loc == nil {
		loc = time.UTC
	}
	return &ReviewReportRepo{db: db, loc: loc}
}

// ListReviewRows returns every review assignment on the journal's submissions.
func (r *ReviewReportRepo) ListReviewRows(ctx context.Context, journalID int64, locale string) ([]model.ReviewRow, error) {
	const query = `
		SELECT ra.id, ra.submission_id, ra.reviewer_id, ra.stage_id, ra.round, ra.review_form_id,
		       COALESCE(st.title, stp.title, ''),
		       u.username, u.given_name, u.family_name, u.orcid, u.country, u.affiliation, u.email,
		       ra.date_assigned, ra.date_notified, ra.date_confirmed, ra.date_completed,
		       ra.date_acknowledged, ra.date_reminded, ra.date_response_due, ra.date_due,
		       ra.declined, ra.cancelled, ra.considered, ra.reviewer_recommendation_id
		FROM review_assignments ra
		JOIN submissions s ON s.id = ra.submission_id
		JOIN journals j ON j.id = s.journal_id
		JOIN users u ON u.id = ra.reviewer_id
		LEFT JOIN submission_titles st ON st.submission_id = s.id AND st.locale = ?
		LEFT JOIN submission_titles stp ON stp.submission_id = s.id AND stp.locale = j.primary_locale
		WHERE s.journal_id = ?
		ORDER BY ra.submission_id, ra.round, ra.id
	`

	rows, err := r.db.Reader.QueryContext(ctx, query, locale, journalID)
	if err != nil {
		return nil, fmt.Errorf("query review rows for journal %d: %w", journalID, err)
	}
	defer rows.Close()

	var reviews []model.ReviewRow
	for rows.Next() {
		row, err := r.scanReviewRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, *row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}

// ListReviewerComments returns peer review comments on the journal's
// submissions ordered by posting date.
func (r *ReviewReportRepo) ListReviewerComments(ctx context.Context, journalID int64) ([]model.ReviewerComment, error) {
	const query = `
		SELECT sc.submission_id, sc.author_id, sc.comments
		FROM submission_comments sc
		JOIN submissions s ON s.id = sc.submission_id
		WHERE s.journal_id = ? AND sc.comment_type = ?
		ORDER BY sc.date_posted, sc.id
	`

	rows, err := r.db.Reader.QueryContext(ctx, query, journalID, commentTypePeerReview)
	if err != nil {
		return nil, fmt.Errorf("query reviewer comments for journal %d: %w", journalID, err)
	}
	defer rows.Close()

	var comments []model.ReviewerComment
	for rows.Next() {
		var c model.ReviewerComment
		if err := rows.Scan(&c.SubmissionID, &c.AuthorID, &c.Comments); err != nil {
			return nil, fmt.Errorf("scan reviewer comment: %w", err)
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviewer comments: %w", err)
	}

	return comments, nil
}

// ReviewerInterests returns the interests of every reviewer assigned in the
// journal, joined with ", " in sequence order.
func (r *ReviewReportRepo) ReviewerInterests(ctx context.Context, journalID int64) (map[int64]string, error) {
	const query = `
		SELECT ui.user_id, ui.interest
		FROM user_interests ui
		WHERE ui.user_id IN (
			SELECT ra.reviewer_id
			FROM review_assignments ra
			JOIN submissions s ON s.id = ra.submission_id
			WHERE s.journal_id = ?
		)
		ORDER BY ui.user_id, ui.seq, ui.interest
	`

	rows, err := r.db.Reader.QueryContext(ctx, query, journalID)
	if err != nil {
		return nil, fmt.Errorf("query reviewer interests for journal %d: %w", journalID, err)
	}
	defer rows.Close()

	byUser := make(map[int64][]string)
	for rows.Next() {
		var userID int64
		var interest string
		if err := rows.Scan(&userID, &interest); err != nil {
			return nil, fmt.Errorf("scan reviewer interest: %w", err)
		}
		byUser[userID] = append(byUser[userID], interest)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviewer interests: %w", err)
	}

	interests := make(map[int64]string, len(byUser))
	for userID, list := range byUser {
		interests[userID] = strings.Join(list, interestSeparator)
	}

	return interests, nil
}

func (r *ReviewReportRepo) scanReviewRow(s scanner) (*model.ReviewRow, error) {
	var row model.ReviewRow
	var stageID int
	var reviewFormID, considered, recommendationID sql.NullInt64
	var declined, cancelled int
	var assigned, notified, confirmed, completed sql.NullString
	var acknowledged, reminded, responseDue, due sql.NullString

	err := s.Scan(
		&row.ReviewID, &row.SubmissionID, &row.ReviewerID, &stageID, &row.Round, &reviewFormID,
		&row.Submission,
		&row.Reviewer, &row.UserGiven, &row.UserFamily, &row.ORCID, &row.Country, &row.Affiliation, &row.Email,
		&assigned, &notified, &confirmed, &completed,
		&acknowledged, &reminded, &responseDue, &due,
		&declined, &cancelled, &considered, &recommendationID,
	)
	if err != nil {
		return nil, err
	}

	row.StageID = model.Stage(stageID)
	row.Declined = declined != 0
	row.Cancelled = cancelled != 0

	if reviewFormID.Valid {
		id := reviewFormID.Int64
		row.ReviewFormID = &id
	}
	if considered.Valid {
		status := model.ConsideredStatus(considered.Int64)
		row.Considered = &status
	}
	if recommendationID.Valid {
		id := int(recommendationID.Int64)
		row.RecommendationID = &id
	}

	dates := []struct {
		name string
		src  sql.NullString
		dst  **time.Time
	}{
		{"date_assigned", assigned, &row.DateAssigned},
		{"date_notified", notified, &row.DateNotified},
		{"date_confirmed", confirmed, &row.DateConfirmed},
		{"date_completed", completed, &row.DateCompleted},
		{"date_acknowledged", acknowledged, &row.DateAcknowledged},
		{"date_reminded", reminded, &row.DateReminded},
		{"date_response_due", responseDue, &row.DateResponseDue},
		{"date_due", due, &row.DateDue},
	}
	for _, d := range dates {
		t, err := parseNullTime(d.src, r.loc)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", d.name, err)
		}
		*d.dst = t
	}

	return &row, nil
}
