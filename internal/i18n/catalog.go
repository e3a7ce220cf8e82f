// Package i18n loads translation catalogues and negotiates the locale a
// report is rendered in.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localesFS embed.FS

// Catalog holds the messages of every available locale. Locale codes use the
// underscore form stored with journal data (for example "fr_CA").
type Catalog struct {
	messages      map[string]map[string]string
	defaultLocale string
	locales       []string
	matcher       language.Matcher
}

// Load reads the embedded locale files. defaultLocale must be one of them.
func Load(defaultLocale string) (*Catalog, error) {
	return LoadFS(localesFS, "locales", defaultLocale)
}

// LoadFS reads every *.yaml file in dir of fsys as a flat key/message map.
// The file name without extension is the locale code.
func LoadFS(fsys fs.FS, dir, defaultLocale string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read locale dir %s: %w", dir, err)
	}

	c := &Catalog{messages: make(map[string]map[string]string)}
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".yaml" {
			continue
		}

		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read locale file %s: %w", entry.Name(), err)
		}

		var messages map[string]string
		if err := yaml.Unmarshal(data, &messages); err != nil {
			return nil, fmt.Errorf("parse locale file %s: %w", entry.Name(), err)
		}

		locale := strings.TrimSuffix(entry.Name(), ".yaml")
		c.messages[locale] = messages
		c.locales = append(c.locales, locale)
	}

	if _, ok := c.messages[defaultLocale]; !ok {
		return nil, fmt.Errorf("default locale %q has no catalogue", defaultLocale)
	}
	c.defaultLocale = defaultLocale

	// The default locale goes first so the matcher falls back to it.
	sort.Slice(c.locales, func(i, j int) bool {
		switch {
		case c.locales[i] == defaultLocale:
			return c.locales[j] != defaultLocale
		case c.locales[j] == defaultLocale:
			return false
		default:
			return c.locales[i] < c.locales[j]
		}
	})

	tags := make([]language.Tag, 0, len(c.locales))
	for _, locale := range c.locales {
		tag, err := language.Parse(ToBCP47(locale))
		if err != nil {
			return nil, fmt.Errorf("parse locale %q: %w", locale, err)
		}
		tags = append(tags, tag)
	}
	c.matcher = language.NewMatcher(tags)

	return c, nil
}

// DefaultLocale returns the locale used when nothing better matches.
func (c *Catalog) DefaultLocale() string {
	return c.defaultLocale
}

// Locales returns the available locale codes, default first.
func (c *Catalog) Locales() []string {
	out := make([]string, len(c.locales))
	copy(out, c.locales)
	return out
}

// Has reports whether locale has a catalogue.
func (c *Catalog) Has(locale string) bool {
	_, ok := c.messages[locale]
	return ok
}

// Translator returns a translator for locale. Unknown locales translate with
// the default catalogue.
func (c *Catalog) Translator(locale string) *Translator {
	if !c.Has(locale) {
		locale = c.defaultLocale
	}
	return &Translator{
		locale:   locale,
		messages: c.messages[locale],
		fallback: c.messages[c.defaultLocale],
	}
}

// Match picks the best available locale for the given preferences, tried in
// order. Each preference is a locale code ("fr_CA"), a BCP 47 tag ("fr-CA")
// or an Accept-Language header value. Empty preferences are skipped. Returns
// the default locale when nothing matches.
func (c *Catalog) Match(preferences ...string) string {
	for _, pref := range preferences {
		pref = strings.TrimSpace(pref)
		if pref == "" {
			continue
		}

		if c.Has(pref) {
			return pref
		}

		tags, _, err := language.ParseAcceptLanguage(ToBCP47(pref))
		if err != nil || len(tags) == 0 {
			continue
		}

		_, index, confidence := c.matcher.Match(tags...)
		if confidence == language.No {
			continue
		}
		return c.locales[index]
	}

	return c.defaultLocale
}

// ToBCP47 converts a stored locale code such as "fr_CA" into a BCP 47 tag.
func ToBCP47(locale string) string {
	return strings.ReplaceAll(locale, "_", "-")
}

// Translator resolves message keys for one locale.
type Translator struct {
	locale   string
	messages map[string]string
	fallback map[string]string
}

// Locale returns the locale code the translator renders.
func (t *Translator) Locale() string {
	return t.locale
}

// T returns the message for key, falling back to the default locale and then
// to the key itself. An empty key yields "".
func (t *Translator) T(key string) string {
	if key == "" {
		return ""
	}
	if msg, ok := t.messages[key]; ok {
		return msg
	}
	if msg, ok := t.fallback[key]; ok {
		return msg
	}
	return key
}
