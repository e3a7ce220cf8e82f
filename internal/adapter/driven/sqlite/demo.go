package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/ericfisherdev/reviewreport/internal/domain/model"
)

// DemoJournalPath is the path of the journal created by SeedDemo.
const DemoJournalPath = "demo"

// SeedDemo fills an empty database with a bilingual demo journal whose
// assignments cover every overdue branch, comments, and a review form.
// Dates are placed relative to now.
func SeedDemo(ctx context.Context, seed *SeedRepo, now time.Time) error {
	day := 24 * time.Hour
	at := func(offset time.Duration) *time.Time {
		t := now.Add(offset).Truncate(time.Second)
		return &t
	}
	midnight := func(offset time.Duration) *time.Time {
		t := now.Add(offset)
		m := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
		return &m
	}

	journalID, err := seed.AddJournal(ctx, model.Journal{
		Path:             DemoJournalPath,
		Name:             model.LocalizedText{"en": "Demo Journal", "fr_CA": "Revue de démonstration"},
		PrimaryLocale:    "en",
		SupportedLocales: []string{"en", "fr_CA"},
	})
	if err != nil {
		return fmt.Errorf("seed demo journal: %w", err)
	}

	recommendations := []model.RecommendationOption{
		{ID: 1, Title: model.LocalizedText{"en": "Accept Submission", "fr_CA": "Accepter la soumission"}},
		{ID: 2, Title: model.LocalizedText{"en": "Revisions Required", "fr_CA": "Modifications requises"}},
		{ID: 3, Title: model.LocalizedText{"en": "Decline Submission", "fr_CA": "Refuser la soumission"}},
	}
	for _, opt := range recommendations {
		opt.ContextID = journalID
		opt.Active = true
		if err := seed.AddRecommendation(ctx, opt); err != nil {
			return fmt.Errorf("seed demo recommendations: %w", err)
		}
	}

	reviewers := []model.User{
		{Username: "amwandenga", GivenName: "Alec", FamilyName: "Mwandenga", Email: "amwandenga@example.org", Country: "ZA", Affiliation: "University of Cape Town", Interests: []string{"ecology", "wetlands"}},
		{Username: "dbarnes", GivenName: "Daniel", FamilyName: "Barnes", Email: "dbarnes@example.org", ORCID: "https://orcid.org/0000-0002-1825-0097", Country: "AU", Affiliation: "Australian National University"},
		{Username: "jjanssen", GivenName: "Julie", FamilyName: "Janssen", Email: "jjanssen@example.org", Country: "NL", Affiliation: "Utrecht University", Interests: []string{"hydrology"}},
	}
	reviewerIDs := make([]int64, len(reviewers))
	for i, u := range reviewers {
		if reviewerIDs[i], err = seed.AddUser(ctx, u); err != nil {
			return fmt.Errorf("seed demo reviewers: %w", err)
		}
	}

	submissionID, err := seed.AddSubmission(ctx, journalID, model.LocalizedText{
		"en":    "Wetland Restoration, Ten Years On",
		"fr_CA": "La restauration des milieux humides, dix ans après",
	})
	if err != nil {
		return fmt.Errorf("seed demo submission: %w", err)
	}

	formID, err := seed.seedDemoForm(ctx, journalID)
	if err != nil {
		return err
	}

	considered := model.ConsideredConsidered
	recommendation := 2

	assignments := []model.ReviewRow{
		// Never responded, response deadline passed.
		{
			ReviewerID: reviewerIDs[0], StageID: model.StageExternalReview,
			DateAssigned: at(-20 * day), DateNotified: at(-20 * day), DateReminded: at(-3 * day),
			DateResponseDue: midnight(-6 * day), DateDue: midnight(10 * day),
		},
		// Accepted, review deadline passed.
		{
			ReviewerID: reviewerIDs[1], StageID: model.StageExternalReview,
			DateAssigned: at(-30 * day), DateNotified: at(-30 * day), DateConfirmed: at(-28 * day),
			DateResponseDue: midnight(-23 * day), DateDue: midnight(-4 * day),
		},
		// Completed with a review form.
		{
			ReviewerID: reviewerIDs[2], StageID: model.StageExternalReview, ReviewFormID: &formID,
			DateAssigned: at(-25 * day), DateNotified: at(-25 * day), DateConfirmed: at(-24 * day),
			DateCompleted: at(-5 * day), DateAcknowledged: at(-4 * day),
			DateResponseDue: midnight(-18 * day), DateDue: midnight(-2 * day),
			Considered: &considered, RecommendationID: &recommendation,
		},
		// Declined in the internal review round.
		{
			ReviewerID: reviewerIDs[0], StageID: model.StageInternalReview,
			DateAssigned: at(-40 * day), DateNotified: at(-40 * day),
			DateResponseDue: midnight(-33 * day), DateDue: midnight(-12 * day),
			Declined: true,
		},
	}

	reviewIDs := make([]int64, len(assignments))
	for i, row := range assignments {
		row.SubmissionID = submissionID
		if reviewIDs[i], err = seed.AddReviewAssignment(ctx, row); err != nil {
			return fmt.Errorf("seed demo assignments: %w", err)
		}
	}

	comments := []model.ReviewerComment{
		{SubmissionID: submissionID, AuthorID: reviewerIDs[1], Comments: "The sampling design needs a clearer description."},
		{SubmissionID: submissionID, AuthorID: reviewerIDs[1], Comments: "Figure 3 axes are unlabeled."},
	}
	for i, c := range comments {
		if err := seed.AddReviewerComment(ctx, c, now.Add(time.Duration(i-10)*day)); err != nil {
			return fmt.Errorf("seed demo comments: %w", err)
		}
	}

	return seed.seedDemoResponses(ctx, reviewIDs[2], formID)
}

// demoFormElements are created in order; seedDemoResponses answers them by
// position.
var demoFormElements = []model.ReviewFormElement{
	{
		Seq: 1, Type: model.ElementTextarea, Included: true,
		Question: model.LocalizedText{"en": "<p>Summary of the submission</p>", "fr_CA": "<p>Résumé de la soumission</p>"},
	},
	{
		Seq: 2, Type: model.ElementCheckboxes, Included: true,
		Question: model.LocalizedText{"en": "<p>Strengths</p>", "fr_CA": "<p>Points forts</p>"},
		PossibleResponses: map[string]model.ResponseOptions{
			"en":    {1: "Originality", 2: "Methodology", 3: "Clarity"},
			"fr_CA": {1: "Originalité", 2: "Méthodologie", 3: "Clarté"},
		},
	},
	{
		Seq: 3, Type: model.ElementRadioButtons, Included: true,
		Question: model.LocalizedText{"en": "<p>Overall quality</p>", "fr_CA": "<p>Qualité globale</p>"},
		PossibleResponses: map[string]model.ResponseOptions{
			"en":    {1: "Excellent", 2: "Good", 3: "Poor"},
			"fr_CA": {1: "Excellente", 2: "Bonne", 3: "Faible"},
		},
	},
	{
		Seq: 4, Type: model.ElementSmallTextField, Included: false,
		Question: model.LocalizedText{"en": "<p>Confidential note to the editor</p>"},
	},
}

func (r *SeedRepo) seedDemoForm(ctx context.Context, journalID int64) (int64, error) {
	formID, err := r.AddReviewForm(ctx, journalID, "Standard Review Form")
	if err != nil {
		return 0, fmt.Errorf("seed demo review form: %w", err)
	}

	for _, el := range demoFormElements {
		el.ReviewFormID = formID
		if _, err := r.AddReviewFormElement(ctx, el); err != nil {
			return 0, fmt.Errorf("seed demo review form: %w", err)
		}
	}

	return formID, nil
}

func (r *SeedRepo) seedDemoResponses(ctx context.Context, reviewID, formID int64) error {
	var elementIDs []int64
	rows, err := r.db.Reader.QueryContext(ctx,
		`SELECT id FROM review_form_elements WHERE review_form_id = ? ORDER BY seq`, formID)
	if err != nil {
		return fmt.Errorf("list demo form elements: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("scan demo form element: %w", err)
		}
		elementIDs = append(elementIDs, id)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate demo form elements: %w", err)
	}
	if len(elementIDs) != len(demoFormElements) {
		return fmt.Errorf("demo form has %d elements, want %d", len(elementIDs), len(demoFormElements))
	}

	responses := []model.ReviewFormResponse{
		{Text: "A careful long-term study.\nThe discussion overstates the results."},
		{Selected: []int{0, 2}},
		{Selected: []int{1}},
		{Text: "Possible overlap with an earlier paper."},
	}
	for i, resp := range responses {
		resp.ReviewID = reviewID
		resp.ElementID = elementIDs[i]
		if err := r.AddReviewFormResponse(ctx, demoFormElements[i].Type, resp); err != nil {
			return fmt.Errorf("seed demo responses: %w", err)
		}
	}

	return nil
}
