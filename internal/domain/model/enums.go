package model

// Stage identifies the editorial workflow stage a review assignment belongs to.
type Stage int

const (
	StageSubmission     Stage = 1
	StageInternalReview Stage = 2
	StageExternalReview Stage = 3
	StageEditing        Stage = 4
	StageProduction     Stage = 5
)

// TranslationKey returns the locale key for the stage label, or "" for an
// unknown stage.
func (s Stage) TranslationKey() string {
	switch s {
	case StageSubmission:
		return "submission.submission"
	case StageInternalReview:
		return "workflow.review.internalReview"
	case StageExternalReview:
		return "workflow.review.externalReview"
	case StageEditing:
		return "submission.editorial"
	case StageProduction:
		return "submission.production"
	default:
		return ""
	}
}

// ConsideredStatus records how an editor treated a completed review.
type ConsideredStatus int

const (
	ConsideredNew          ConsideredStatus = 0 // Never considered.
	ConsideredConsidered   ConsideredStatus = 1
	ConsideredUnconsidered ConsideredStatus = 2 // Marked unconsidered after being considered.
	ConsideredReconsidered ConsideredStatus = 3 // Considered again after an update.
)

// TranslationKey returns the locale key for the status label, or "" for an
// unrecognized code.
func (c ConsideredStatus) TranslationKey() string {
	switch c {
	case ConsideredNew:
		return "plugins.reports.reviews.considered.new"
	case ConsideredConsidered:
		return "plugins.reports.reviews.considered.considered"
	case ConsideredUnconsidered:
		return "plugins.reports.reviews.considered.unconsidered"
	case ConsideredReconsidered:
		return "plugins.reports.reviews.considered.reconsidered"
	default:
		return ""
	}
}

// ElementType is the input type of a review form question.
type ElementType int

const (
	ElementSmallTextField ElementType = 1
	ElementTextField      ElementType = 2
	ElementTextarea       ElementType = 3
	ElementCheckboxes     ElementType = 4
	ElementRadioButtons   ElementType = 5
	ElementDropDownBox    ElementType = 6
)

// HasMultipleResponses reports whether answers select from the element's
// possible responses rather than holding free text.
func (e ElementType) HasMultipleResponses() bool {
	return e == ElementCheckboxes || e == ElementRadioButtons || e == ElementDropDownBox
}

// OrdersResponsesByKey reports whether the element's possible responses are
// addressed by their position after sorting on the stored key.
func (e ElementType) OrdersResponsesByKey() bool {
	return e == ElementCheckboxes || e == ElementRadioButtons
}
