package model

import "sort"

// LocalizedText holds one string per locale code.
type LocalizedText map[string]string

// Pick returns the text for locale, falling back to the fallback locale and
// then to the first non-empty value in locale-code order. Returns "" when no
// locale has text.
func (l LocalizedText) Pick(locale, fallback string) string {
	if v := l[locale]; v != "" {
		return v
	}
	if v := l[fallback]; v != "" {
		return v
	}

	locales := make([]string, 0, len(l))
	for k := range l {
		locales = append(locales, k)
	}
	sort.Strings(locales)
	for _, k := range locales {
		if l[k] != "" {
			return l[k]
		}
	}
	return ""
}
