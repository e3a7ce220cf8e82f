package model

// User is a person registered with the journal platform. Only the fields the
// review report shows about reviewers are modelled.
type User struct {
	ID          int64
	Username    string
	GivenName   string
	FamilyName  string
	Email       string
	ORCID       string
	Country     string
	Affiliation string
	Interests   []string
}
