package model

// Journal is the publishing context a report is generated for.
type Journal struct {
	ID               int64
	Path             string
	Name             LocalizedText
	PrimaryLocale    string
	SupportedLocales []string
}
