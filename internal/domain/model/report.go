package model

// ReportDescriptor describes a report the service can generate.
type ReportDescriptor struct {
	Name        string
	DisplayName string
	Description string
	Path        string // URL path template; {journal} is replaced by the journal path.
}
