package application

import "github.com/ericfisherdev/reviewreport/internal/i18n"

// Column is one field of the review report, in output order.
type Column struct {
	Key       string
	HeaderKey string // Translation key of the header label.
}

// ReviewReportColumns lists the report's columns in output order.
var ReviewReportColumns = []Column{
	{Key: "stage_id", HeaderKey: "workflow.stage"},
	{Key: "round", HeaderKey: "plugins.reports.reviews.round"},
	{Key: "submission", HeaderKey: "plugins.reports.reviews.submissionTitle"},
	{Key: "submission_id", HeaderKey: "plugins.reports.reviews.submissionId"},
	{Key: "reviewer", HeaderKey: "plugins.reports.reviews.reviewer"},
	{Key: "user_given", HeaderKey: "user.givenName"},
	{Key: "user_family", HeaderKey: "user.familyName"},
	{Key: "orcid", HeaderKey: "user.orcid"},
	{Key: "country", HeaderKey: "common.country"},
	{Key: "affiliation", HeaderKey: "user.affiliation"},
	{Key: "email", HeaderKey: "user.email"},
	{Key: "interests", HeaderKey: "user.interests"},
	{Key: "date_assigned", HeaderKey: "plugins.reports.reviews.dateAssigned"},
	{Key: "date_notified", HeaderKey: "plugins.reports.reviews.dateNotified"},
	{Key: "date_confirmed", HeaderKey: "plugins.reports.reviews.dateConfirmed"},
	{Key: "date_completed", HeaderKey: "plugins.reports.reviews.dateCompleted"},
	{Key: "date_acknowledged", HeaderKey: "plugins.reports.reviews.dateAcknowledged"},
	{Key: "considered", HeaderKey: "plugins.reports.reviews.considered"},
	{Key: "date_reminded", HeaderKey: "plugins.reports.reviews.dateReminded"},
	{Key: "date_response_due", HeaderKey: "reviewer.submission.responseDueDate"},
	{Key: "overdue_response", HeaderKey: "plugins.reports.reviews.responseOverdue"},
	{Key: "date_due", HeaderKey: "reviewer.submission.reviewDueDate"},
	{Key: "overdue", HeaderKey: "plugins.reports.reviews.reviewOverdue"},
	{Key: "declined", HeaderKey: "submissions.declined"},
	{Key: "cancelled", HeaderKey: "common.cancelled"},
	{Key: "reviewer_recommendation_id", HeaderKey: "plugins.reports.reviews.recommendation"},
	{Key: "comments", HeaderKey: "plugins.reports.reviews.comments"},
}

// HeaderRow returns the localized header labels in column order.
func HeaderRow(tr *i18n.Translator) []string {
	header := make([]string, len(ReviewReportColumns))
	for i, col := range ReviewReportColumns {
		header[i] = tr.T(col.HeaderKey)
	}
	return header
}
