package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ericfisherdev/reviewreport/internal/domain/model"
)

// SeedRepo writes journal, user, submission and review data. It backs the
// seed command and test fixtures; the report itself never writes.
type SeedRepo struct {
	db  *DB
	loc *time.Location
}

// NewSeedRepo creates a new SeedRepo backed by the given DB. Dates are stored
// as wall-clock time in loc; a nil loc means UTC.
func NewSeedRepo(db *DB, loc *time.Location) *SeedRepo {
	if loc == nil {
		loc = time.UTC
	}
	return &SeedRepo{db: db, loc: loc}
}

// AddJournal inserts a journal and its localized names, returning its id.
func (r *SeedRepo) AddJournal(ctx context.Context, journal model.Journal) (int64, error) {
	const query = `INSERT INTO journals (path, primary_locale, supported_locales) VALUES (?, ?, ?)`
	const nameQuery = `INSERT INTO journal_names (journal_id, locale, name) VALUES (?, ?, ?)`

	supported := journal.SupportedLocales
	if len(supported) == 0 {
		supported = []string{journal.PrimaryLocale}
	}

	res, err := r.db.Writer.ExecContext(ctx, query, journal.Path, journal.PrimaryLocale, strings.Join(supported, ","))
	if err != nil {
		return 0, fmt.Errorf("add journal %s: %w", journal.Path, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read journal id: %w", err)
	}

	for locale, name := range journal.Name {
		if _, err := r.db.Writer.ExecContext(ctx, nameQuery, id, locale, name); err != nil {
			return 0, fmt.Errorf("add name for journal %s: %w", journal.Path, err)
		}
	}

	return id, nil
}

// AddUser inserts a user and their interests, returning the user id.
func (r *SeedRepo) AddUser(ctx context.Context, user model.User) (int64, error) {
	const query = `
		INSERT INTO users (username, given_name, family_name, email, orcid, country, affiliation)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	const interestQuery = `INSERT INTO user_interests (user_id, seq, interest) VALUES (?, ?, ?)`

	res, err := r.db.Writer.ExecContext(ctx, query,
		user.Username, user.GivenName, user.FamilyName, user.Email,
		user.ORCID, user.Country, user.Affiliation,
	)
	if err != nil {
		return 0, fmt.Errorf("add user %s: %w", user.Username, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read user id: %w", err)
	}

	for seq, interest := range user.Interests {
		if _, err := r.db.Writer.ExecContext(ctx, interestQuery, id, seq, interest); err != nil {
			return 0, fmt.Errorf("add interest for user %s: %w", user.Username, err)
		}
	}

	return id, nil
}

// AddSubmission inserts a submission with its localized titles, returning its id.
func (r *SeedRepo) AddSubmission(ctx context.Context, journalID int64, titles model.LocalizedText) (int64, error) {
	const query = `INSERT INTO submissions (journal_id) VALUES (?)`
	const titleQuery = `INSERT INTO submission_titles (submission_id, locale, title) VALUES (?, ?, ?)`

	res, err := r.db.Writer.ExecContext(ctx, query, journalID)
	if err != nil {
		return 0, fmt.Errorf("add submission to journal %d: %w", journalID, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read submission id: %w", err)
	}

	for locale, title := range titles {
		if _, err := r.db.Writer.ExecContext(ctx, titleQuery, id, locale, title); err != nil {
			return 0, fmt.Errorf("add title for submission %d: %w", id, err)
		}
	}

	return id, nil
}

// AddReviewAssignment inserts the assignment fields of row, returning the new
// review id. Reviewer and submission display fields are ignored.
func (r *SeedRepo) AddReviewAssignment(ctx context.Context, row model.ReviewRow) (int64, error) {
	const query = `
		INSERT INTO review_assignments (
			submission_id, reviewer_id, stage_id, round, review_form_id,
			date_assigned, date_notified, date_confirmed, date_completed,
			date_acknowledged, date_reminded, date_response_due, date_due,
			declined, cancelled, considered, reviewer_recommendation_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var reviewFormID, considered, recommendationID any
	if row.ReviewFormID != nil {
		reviewFormID = *row.ReviewFormID
	}
	if row.Considered != nil {
		considered = int(*row.Considered)
	}
	if row.RecommendationID != nil {
		recommendationID = *row.RecommendationID
	}

	round := row.Round
	if round == 0 {
		round = 1
	}

	res, err := r.db.Writer.ExecContext(ctx, query,
		row.SubmissionID, row.ReviewerID, int(row.StageID), round, reviewFormID,
		formatNullTime(row.DateAssigned, r.loc), formatNullTime(row.DateNotified, r.loc),
		formatNullTime(row.DateConfirmed, r.loc), formatNullTime(row.DateCompleted, r.loc),
		formatNullTime(row.DateAcknowledged, r.loc), formatNullTime(row.DateReminded, r.loc),
		formatNullTime(row.DateResponseDue, r.loc), formatNullTime(row.DateDue, r.loc),
		boolToInt(row.Declined), boolToInt(row.Cancelled), considered, recommendationID,
	)
	if err != nil {
		return 0, fmt.Errorf("add review assignment for submission %d: %w", row.SubmissionID, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read review id: %w", err)
	}

	return id, nil
}

// AddReviewerComment inserts a peer review comment posted at postedAt.
func (r *SeedRepo) AddReviewerComment(ctx context.Context, comment model.ReviewerComment, postedAt time.Time) error {
	const query = `
		INSERT INTO submission_comments (submission_id, author_id, comment_type, comments, date_posted)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.Writer.ExecContext(ctx, query,
		comment.SubmissionID, comment.AuthorID, commentTypePeerReview, comment.Comments,
		postedAt.In(r.loc).Format(dateTimeLayout),
	)
	if err != nil {
		return fmt.Errorf("add comment on submission %d: %w", comment.SubmissionID, err)
	}

	return nil
}

// AddReviewForm inserts an empty review form, returning its id.
func (r *SeedRepo) AddReviewForm(ctx context.Context, journalID int64, title string) (int64, error) {
	const query = `INSERT INTO review_forms (journal_id, title) VALUES (?, ?)`

	res, err := r.db.Writer.ExecContext(ctx, query, journalID, title)
	if err != nil {
		return 0, fmt.Errorf("add review form %q: %w", title, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read review form id: %w", err)
	}

	return id, nil
}

// AddReviewFormElement inserts an element with its localized question and
// possible responses, returning the element id.
func (r *SeedRepo) AddReviewFormElement(ctx context.Context, el model.ReviewFormElement) (int64, error) {
	const query = `
		INSERT INTO review_form_elements (review_form_id, seq, element_type, included)
		VALUES (?, ?, ?, ?)
	`
	const settingQuery = `
		INSERT INTO review_form_element_settings (review_form_element_id, locale, setting_name, setting_value)
		VALUES (?, ?, ?, ?)
	`

	res, err := r.db.Writer.ExecContext(ctx, query, el.ReviewFormID, el.Seq, int(el.Type), boolToInt(el.Included))
	if err != nil {
		return 0, fmt.Errorf("add element to review form %d: %w", el.ReviewFormID, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read element id: %w", err)
	}

	for locale, question := range el.Question {
		if _, err := r.db.Writer.ExecContext(ctx, settingQuery, id, locale, settingQuestion, question); err != nil {
			return 0, fmt.Errorf("add question for element %d: %w", id, err)
		}
	}

	for locale, opts := range el.PossibleResponses {
		data, err := json.Marshal(opts)
		if err != nil {
			return 0, fmt.Errorf("encode possible responses for element %d: %w", id, err)
		}
		if _, err := r.db.Writer.ExecContext(ctx, settingQuery, id, locale, settingPossibleResponses, string(data)); err != nil {
			return 0, fmt.Errorf("add possible responses for element %d: %w", id, err)
		}
	}

	return id, nil
}

// AddReviewFormResponse stores a reviewer's answer, encoded for elementType.
func (r *SeedRepo) AddReviewFormResponse(ctx context.Context, elementType model.ElementType, resp model.ReviewFormResponse) error {
	const query = `
		INSERT INTO review_form_responses (review_id, review_form_element_id, response_type, response_value)
		VALUES (?, ?, ?, ?)
	`

	responseType, value, err := encodeResponse(elementType, resp)
	if err != nil {
		return err
	}

	if _, err := r.db.Writer.ExecContext(ctx, query, resp.ReviewID, resp.ElementID, responseType, value); err != nil {
		return fmt.Errorf("add response for review %d element %d: %w", resp.ReviewID, resp.ElementID, err)
	}

	return nil
}

// AddRecommendation inserts a recommendation option with its localized titles.
func (r *SeedRepo) AddRecommendation(ctx context.Context, opt model.RecommendationOption) error {
	const query = `
		INSERT INTO reviewer_recommendations (journal_id, recommendation_id, active)
		VALUES (?, ?, ?)
	`
	const titleQuery = `
		INSERT INTO reviewer_recommendation_titles (journal_id, recommendation_id, locale, title)
		VALUES (?, ?, ?, ?)
	`

	if _, err := r.db.Writer.ExecContext(ctx, query, opt.ContextID, opt.ID, boolToInt(opt.Active)); err != nil {
		return fmt.Errorf("add recommendation %d: %w", opt.ID, err)
	}

	for locale, title := range opt.Title {
		if _, err := r.db.Writer.ExecContext(ctx, titleQuery, opt.ContextID, opt.ID, locale, title); err != nil {
			return fmt.Errorf("add title for recommendation %d: %w", opt.ID, err)
		}
	}

	return nil
}
