// Package i18n defines the site locales and their text direction.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale identifies a content language of the site.
type Locale string

// Supported locales.
const (
	English Locale = "en"
	Arabic  Locale = "ar"

	// DefaultLocale is used when no locale is requested. It is also the
	// unprefixed locale in routes.
	DefaultLocale = English
)

// Direction is the text direction of a locale.
type Direction string

// Text directions.
const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

var (
	supported = []Locale{English, Arabic}
	matcher   = language.NewMatcher([]language.Tag{language.English, language.Arabic})
)

// Supported returns the supported locales with the default first.
func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// IsSupported reports whether l is one of the supported locales.
func IsSupported(l Locale) bool {
	for _, candidate := range supported {
		if candidate == l {
			return true
		}
	}
	return false
}

// Normalize trims and lower-cases a locale identifier and substitutes the
// default for an empty value. Unsupported identifiers pass through unchanged.
func Normalize(value string) Locale {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "" {
		return DefaultLocale
	}
	return Locale(trimmed)
}

// Parse resolves a BCP 47 tag such as "ar-SA" or "en-US" to a supported
// locale. The bool is false when the value is not a valid tag or does not
// match any supported locale.
func Parse(value string) (Locale, bool) {
	tag, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return "", false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return "", false
	}
	return supported[index], true
}

// ParseList resolves every value with Parse and rejects the list on the
// first unsupported entry. Duplicates are dropped while order is kept.
func ParseList(values []string) ([]Locale, bool) {
	out := make([]Locale, 0, len(values))
	seen := map[Locale]bool{}
	for _, value := range values {
		if strings.TrimSpace(value) == "" {
			continue
		}
		locale, ok := Parse(value)
		if !ok {
			return nil, false
		}
		if seen[locale] {
			continue
		}
		seen[locale] = true
		out = append(out, locale)
	}
	return out, true
}

// Tag returns the language tag for l, or language.Und when l is not a valid tag.
func (l Locale) Tag() language.Tag {
	tag, err := language.Parse(string(l))
	if err != nil {
		return language.Und
	}
	return tag
}

// Direction returns RTL for Arabic and LTR for every other locale.
func (l Locale) Direction() Direction {
	if l == Arabic {
		return RTL
	}
	return LTR
}

// Other returns the locale the language toggle switches to.
func (l Locale) Other() Locale {
	if l == Arabic {
		return English
	}
	return Arabic
}

func (l Locale) String() string {
	return string(l)
}
