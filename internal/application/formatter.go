package application

import (
	"context"
	"strconv"
	"time"

	"github.com/ericfisherdev/reviewreport/internal/domain/model"
	"github.com/ericfisherdev/reviewreport/internal/i18n"
)

// DateTimeLayout is how dates appear in the report.
const DateTimeLayout = "2006-01-02 15:04:05"

// RowFormatter maps review rows to report records. Lookups that miss
// degrade to blank cells.
type RowFormatter struct {
	tr              *i18n.Translator
	comments        *model.CommentMap
	interests       map[int64]string
	recommendations map[int]string
	forms           *ReviewFormRenderer
}

// NewRowFormatter creates a formatter over the lookups of one report run.
// forms may be nil, in which case reviews without comments get a blank
// comments cell.
func NewRowFormatter(
	tr *i18n.Translator,
	comments *model.CommentMap,
	interests map[int64]string,
	recommendations map[int]string,
	forms *ReviewFormRenderer,
) *RowFormatter {
	if comments == nil {
		comments = model.NewCommentMap(nil)
	}
	return &RowFormatter{
		tr:              tr,
		comments:        comments,
		interests:       interests,
		recommendations: recommendations,
		forms:           forms,
	}
}

// Format returns the record for row in ReviewReportColumns order.
func (f *RowFormatter) Format(ctx context.Context, row model.ReviewRow, now time.Time) ([]string, error) {
	responseDue := NormalizeDueDate(row.DateResponseDue)
	due := NormalizeDueDate(row.DateDue)
	overdueResponse, overdue := OverdueDays(row.DateConfirmed, row.DateCompleted, responseDue, due, now)

	comments, err := f.commentsCell(ctx, row)
	if err != nil {
		return nil, err
	}

	record := make([]string, 0, len(ReviewReportColumns))
	for _, col := range ReviewReportColumns {
		var cell string
		switch col.Key {
		case "stage_id":
			cell = f.tr.T(row.StageID.TranslationKey())
		case "round":
			cell = strconv.Itoa(row.Round)
		case "submission":
			cell = row.Submission
		case "submission_id":
			cell = strconv.FormatInt(row.SubmissionID, 10)
		case "reviewer":
			cell = row.Reviewer
		case "user_given":
			cell = row.UserGiven
		case "user_family":
			cell = row.UserFamily
		case "orcid":
			cell = row.ORCID
		case "country":
			cell = row.Country
		case "affiliation":
			cell = row.Affiliation
		case "email":
			cell = row.Email
		case "interests":
			cell = f.interests[row.ReviewerID]
		case "date_assigned":
			cell = formatDate(row.DateAssigned)
		case "date_notified":
			cell = formatDate(row.DateNotified)
		case "date_confirmed":
			cell = formatDate(row.DateConfirmed)
		case "date_completed":
			cell = formatDate(row.DateCompleted)
		case "date_acknowledged":
			cell = formatDate(row.DateAcknowledged)
		case "considered":
			if row.Considered != nil {
				cell = f.tr.T(row.Considered.TranslationKey())
			}
		case "date_reminded":
			cell = formatDate(row.DateReminded)
		case "date_response_due":
			cell = formatDate(responseDue)
		case "overdue_response":
			cell = overdueResponse
		case "date_due":
			cell = formatDate(due)
		case "overdue":
			cell = overdue
		case "declined":
			cell = f.yesNo(row.Declined)
		case "cancelled":
			cell = f.yesNo(row.Cancelled)
		case "reviewer_recommendation_id":
			if row.RecommendationID != nil {
				cell = f.recommendations[*row.RecommendationID]
			}
		case "comments":
			cell = comments
		}
		record = append(record, cell)
	}

	return record, nil
}

// commentsCell prefers the reviewer's free-text comments and only renders
// review form answers when there are none.
func (f *RowFormatter) commentsCell(ctx context.Context, row model.ReviewRow) (string, error) {
	if text, ok := f.comments.Lookup(row.SubmissionID, row.ReviewerID); ok {
		return text, nil
	}
	if f.forms == nil {
		return "", nil
	}
	return f.forms.Render(ctx, row)
}

func (f *RowFormatter) yesNo(b bool) string {
	if b {
		return f.tr.T("common.yes")
	}
	return f.tr.T("common.no")
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateTimeLayout)
}
