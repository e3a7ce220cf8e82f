package model

// RecommendationOption is a reviewer recommendation a journal offers,
// such as "Accept Submission" or "Decline Submission".
type RecommendationOption struct {
	ID        int
	ContextID int64
	Title     LocalizedText
	Active    bool
}
