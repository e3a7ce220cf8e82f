package model

// ReviewerComment is a free-text comment a reviewer left on a submission.
type ReviewerComment struct {
	SubmissionID int64
	AuthorID     int64
	Comments     string
}

// CommentSeparator joins multiple comments from the same reviewer.
const CommentSeparator = "; "

type commentKey struct {
	submissionID int64
	authorID     int64
}

// CommentMap aggregates reviewer comments by (submission, author).
// The zero value is not usable; create one with NewCommentMap.
type CommentMap struct {
	byKey map[commentKey]string
}

// NewCommentMap builds a CommentMap from comments in encounter order.
func NewCommentMap(comments []ReviewerComment) *CommentMap {
	m := &CommentMap{byKey: make(map[commentKey]string, len(comments))}
	for _, c := range comments {
		m.Add(c)
	}
	return m
}

// Add appends a comment, joining it to any earlier text for the same key.
func (m *CommentMap) Add(c ReviewerComment) {
	key := commentKey{submissionID: c.SubmissionID, authorID: c.AuthorID}
	if existing, ok := m.byKey[key]; ok {
		m.byKey[key] = existing + CommentSeparator + c.Comments
		return
	}
	m.byKey[key] = c.Comments
}

// Lookup returns the aggregated comments for a submission and author.
func (m *CommentMap) Lookup(submissionID, authorID int64) (string, bool) {
	v, ok := m.byKey[commentKey{submissionID: submissionID, authorID: authorID}]
	return v, ok
}

// Len returns the number of distinct (submission, author) pairs.
func (m *CommentMap) Len() int {
	return len(m.byKey)
}
