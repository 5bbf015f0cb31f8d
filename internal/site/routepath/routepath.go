// Package routepath maps logical pages to localized URLs and output files.
package routepath

import (
	"path"
	"strings"

	"github.com/najrandevs/najran.dev/internal/platform/i18n"
)

// Logical page paths, without locale prefix.
const (
	Home          = "/"
	PrivacyPolicy = "/privacy-policy"
)

// Static asset locations.
const (
	StaticPrefix = "/static/"
	StyleSheet   = StaticPrefix + "site.css"
	Script       = StaticPrefix + "site.js"
)

const indexFile = "index.html"

// Localized returns the URL of a logical path under locale. The default
// locale is served unprefixed: Localized(ar, "/privacy-policy") is
// "/ar/privacy-policy" while Localized(en, "/") is "/".
func Localized(locale i18n.Locale, p string) string {
	p = clean(p)
	if locale == i18n.DefaultLocale || locale == "" {
		return p
	}
	if p == Home {
		return "/" + string(locale)
	}
	return "/" + string(locale) + p
}

// Split separates a request path into its locale and logical path. Paths
// without a supported locale prefix belong to the default locale.
func Split(urlPath string) (i18n.Locale, string) {
	p := clean(urlPath)
	trimmed := strings.TrimPrefix(p, "/")
	first, rest, _ := strings.Cut(trimmed, "/")
	locale := i18n.Locale(first)
	if locale != i18n.DefaultLocale && i18n.IsSupported(locale) {
		return locale, clean("/" + rest)
	}
	return i18n.DefaultLocale, p
}

// OutputFile returns the file, relative to the output directory, that serves
// the localized path: "index.html", "ar/index.html",
// "privacy-policy/index.html", and so on.
func OutputFile(locale i18n.Locale, p string) string {
	localized := strings.TrimPrefix(Localized(locale, p), "/")
	return path.Join(localized, indexFile)
}

func clean(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return Home
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}
