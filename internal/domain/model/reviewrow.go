package model

import "time"

// ReviewRow is one reviewer assignment on a submission, flattened with the
// reviewer and submission fields the review report needs. It is a read-only
// snapshot taken per report run.
type ReviewRow struct {
	ReviewID     int64
	SubmissionID int64
	ReviewerID   int64
	StageID      Stage
	Round        int
	ReviewFormID *int64 // Nil when the assignment has no review form.

	Submission  string // Submission title in the requested locale.
	Reviewer    string // Reviewer username.
	UserGiven   string
	UserFamily  string
	ORCID       string
	Country     string
	Affiliation string
	Email       string

	DateAssigned     *time.Time
	DateNotified     *time.Time
	DateConfirmed    *time.Time
	DateCompleted    *time.Time
	DateAcknowledged *time.Time
	DateReminded     *time.Time
	DateResponseDue  *time.Time
	DateDue          *time.Time

	Declined         bool
	Cancelled        bool
	Considered       *ConsideredStatus
	RecommendationID *int
}

// IsConfirmed reports whether the reviewer has responded to the request.
func (r ReviewRow) IsConfirmed() bool {
	return r.DateConfirmed != nil
}

// IsCompleted reports whether the reviewer has submitted the review.
func (r ReviewRow) IsCompleted() bool {
	return r.DateCompleted != nil
}
