package application

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/ericfisherdev/reviewreport/internal/domain/model"
	"github.com/ericfisherdev/reviewreport/internal/domain/port/driven"
)

var (
	htmlSanitizer = bluemonday.UGCPolicy()

	lineBreaks = regexp.MustCompile(`\r\n|\n\r|\n|\r`)

	specialChars = strings.NewReplacer(
		"&", "&amp;",
		`"`, "&quot;",
		"'", "&#039;",
		"<", "&lt;",
		">", "&gt;",
	)
)

// ReviewFormRenderer builds the HTML fragment that stands in for free-text
// comments when a reviewer answered a review form instead. Form elements are
// loaded once per form and reused across rows.
type ReviewFormRenderer struct {
	store    driven.ReviewFormStore
	locale   string
	fallback string
	elements map[int64][]model.ReviewFormElement
}

// NewReviewFormRenderer creates a renderer resolving questions and options in
// locale, then fallback.
func NewReviewFormRenderer(store driven.ReviewFormStore, locale, fallback string) *ReviewFormRenderer {
	return &ReviewFormRenderer{
		store:    store,
		locale:   locale,
		fallback: fallback,
		elements: make(map[int64][]model.ReviewFormElement),
	}
}

// Render returns the fragment for a review, or "" when the review is not
// completed or has no review form.
func (r *ReviewFormRenderer) Render(ctx context.Context, row model.ReviewRow) (string, error) {
	if !row.IsCompleted() || row.ReviewFormID == nil || *row.ReviewFormID == 0 {
		return "", nil
	}

	elements, err := r.formElements(ctx, *row.ReviewFormID)
	if err != nil {
		return "", err
	}

	responses, err := r.store.ResponsesByReview(ctx, row.ReviewID)
	if err != nil {
		return "", fmt.Errorf("load responses for review %d: %w", row.ReviewID, err)
	}

	var body strings.Builder
	for _, el := range elements {
		if !el.Included {
			continue
		}

		body.WriteString(htmlSanitizer.Sanitize(el.Question.Pick(r.locale, r.fallback)))

		resp, ok := responses[el.ID]
		if !ok {
			continue
		}
		writeResponse(&body, el, resp, r.locale, r.fallback)
	}

	return body.String(), nil
}

func (r *ReviewFormRenderer) formElements(ctx context.Context, reviewFormID int64) ([]model.ReviewFormElement, error) {
	if elements, ok := r.elements[reviewFormID]; ok {
		return elements, nil
	}

	elements, err := r.store.ElementsByForm(ctx, reviewFormID)
	if err != nil {
		return nil, fmt.Errorf("load elements for review form %d: %w", reviewFormID, err)
	}
	r.elements[reviewFormID] = elements

	return elements, nil
}

func writeResponse(body *strings.Builder, el model.ReviewFormElement, resp model.ReviewFormResponse, locale, fallback string) {
	if !el.Type.HasMultipleResponses() {
		body.WriteString("<blockquote>")
		body.WriteString(nl2br(specialChars.Replace(resp.Text)))
		body.WriteString("</blockquote>")
		return
	}

	option := optionLookup(el, locale, fallback)

	if el.Type == model.ElementCheckboxes {
		body.WriteString("<ul>")
		for _, idx := range resp.Selected {
			body.WriteString("<li>")
			body.WriteString(htmlSanitizer.Sanitize(option(idx)))
			body.WriteString("</li>")
		}
		body.WriteString("</ul>")
	} else {
		var label string
		if len(resp.Selected) > 0 {
			label = option(resp.Selected[0])
		}
		body.WriteString("<blockquote>")
		body.WriteString(htmlSanitizer.Sanitize(label))
		body.WriteString("</blockquote>")
	}
	body.WriteString("<br>")
}

// optionLookup resolves a response index to an option label. Checkbox and
// radio answers index the options sorted by key; drop-down answers use the
// stored key. Unknown indexes resolve to "".
func optionLookup(el model.ReviewFormElement, locale, fallback string) func(int) string {
	opts := el.LocalizedPossibleResponses(locale, fallback)

	if el.Type.OrdersResponsesByKey() {
		positional := opts.Positional()
		return func(idx int) string {
			if idx < 0 || idx >= len(positional) {
				return ""
			}
			return positional[idx]
		}
	}

	return func(idx int) string {
		return opts[idx]
	}
}

// nl2br inserts "<br />" before every line break, keeping the break itself.
func nl2br(s string) string {
	return lineBreaks.ReplaceAllString(s, "<br />$0")
}
