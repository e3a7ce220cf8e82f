package model

import "sort"

// ReviewFormElement is one configurable question on a reviewer evaluation form.
type ReviewFormElement struct {
	ID                int64
	ReviewFormID      int64
	Seq               int
	Type              ElementType
	Included          bool // Whether the answer is shared in reports and with authors.
	Question          LocalizedText
	PossibleResponses map[string]ResponseOptions // Keyed by locale.
}

// LocalizedPossibleResponses returns the element's options for locale with
// the same fallback rules as LocalizedText.Pick.
func (e ReviewFormElement) LocalizedPossibleResponses(locale, fallback string) ResponseOptions {
	if opts, ok := e.PossibleResponses[locale]; ok && len(opts) > 0 {
		return opts
	}
	if opts, ok := e.PossibleResponses[fallback]; ok && len(opts) > 0 {
		return opts
	}

	locales := make([]string, 0, len(e.PossibleResponses))
	for k := range e.PossibleResponses {
		locales = append(locales, k)
	}
	sort.Strings(locales)
	for _, k := range locales {
		if len(e.PossibleResponses[k]) > 0 {
			return e.PossibleResponses[k]
		}
	}
	return nil
}

// ResponseOptions maps a stored option key to its label.
type ResponseOptions map[int]string

// Positional returns the labels ordered by key, so that index i is the
// i-th smallest key.
func (o ResponseOptions) Positional() []string {
	keys := make([]int, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	labels := make([]string, len(keys))
	for i, k := range keys {
		labels[i] = o[k]
	}
	return labels
}

// ReviewFormResponse is a reviewer's answer to one review form element.
type ReviewFormResponse struct {
	ReviewID  int64
	ElementID int64
	Text      string // Free-text answer for text element types.
	Selected  []int  // Chosen option indexes; a single entry for radio buttons and drop-downs.
}
