// Package presentation models the client-side presentation state: text
// direction and language from the active locale, and a light/dark theme
// persisted in browser-local storage.
//
// The same rules run twice. At build time a Controller mounted on a Document
// computes the attributes rendered on <html>; in the browser, static/site.js
// applies them to the live document root.
package presentation

import (
	"github.com/najrandevs/najran.dev/internal/platform/i18n"
	"github.com/najrandevs/najran.dev/internal/site/routepath"
)

// Theme is the visual mode of the site.
type Theme string

// Themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	DefaultTheme = ThemeDark
)

// StorageKey is the browser-local storage key holding the theme preference.
const StorageKey = "theme"

// Root classes for each theme. Exactly one is present at a time.
const (
	ClassLight = "light-mode"
	ClassDark  = "dark-mode"
)

// Root attribute names set by the controller.
const (
	AttrDir  = "dir"
	AttrLang = "lang"
)

// ParseTheme returns the theme named by value. Matching is exact, as in
// site.js; the bool is false for unrecognised values.
func ParseTheme(value string) (Theme, bool) {
	switch Theme(value) {
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	default:
		return "", false
	}
}

// Other returns the opposite theme.
func (t Theme) Other() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Class returns the root class applied for the theme.
func (t Theme) Class() string {
	if t == ThemeLight {
		return ClassLight
	}
	return ClassDark
}

// Storage is browser-local key/value storage.
type Storage interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Root is the document root element.
type Root interface {
	SetAttribute(name, value string)
	ToggleClass(name string, on bool)
}

// Controller synchronises locale direction and theme with a Root and
// persists the theme in Storage.
type Controller struct {
	root   Root
	store  Storage
	locale i18n.Locale
	theme  Theme
}

// NewController returns a controller for the active locale. A nil store
// behaves as empty storage that discards writes.
func NewController(root Root, store Storage, locale i18n.Locale) *Controller {
	return &Controller{
		root:   root,
		store:  store,
		locale: i18n.Normalize(string(locale)),
		theme:  DefaultTheme,
	}
}

// Mount applies lang and dir for the locale, loads the persisted theme
// (default dark), then applies and persists it.
func (c *Controller) Mount() {
	c.applyLocale()
	c.theme = c.loadTheme()
	c.applyTheme()
}

// Locale returns the active locale.
func (c *Controller) Locale() i18n.Locale {
	return c.locale
}

// Direction returns the text direction of the active locale.
func (c *Controller) Direction() i18n.Direction {
	return c.locale.Direction()
}

// Theme returns the current theme.
func (c *Controller) Theme() Theme {
	return c.theme
}

// ToggleTheme flips the theme, applies it, and persists it.
func (c *Controller) ToggleTheme() Theme {
	c.theme = c.theme.Other()
	c.applyTheme()
	return c.theme
}

// LocaleToggle returns the locale the language control navigates to.
func (c *Controller) LocaleToggle() i18n.Locale {
	return c.locale.Other()
}

// LocaleToggleURL returns the equivalent of the logical path under the other
// locale. Switching language is a full navigation to that URL.
func (c *Controller) LocaleToggleURL(logicalPath string) string {
	return routepath.Localized(c.LocaleToggle(), logicalPath)
}

func (c *Controller) applyLocale() {
	if c.root == nil {
		return
	}
	c.root.SetAttribute(AttrDir, string(c.locale.Direction()))
	c.root.SetAttribute(AttrLang, string(c.locale))
}

func (c *Controller) loadTheme() Theme {
	if c.store == nil {
		return DefaultTheme
	}
	value, err := c.store.Get(StorageKey)
	if err != nil {
		return DefaultTheme
	}
	if theme, ok := ParseTheme(value); ok {
		return theme
	}
	return DefaultTheme
}

func (c *Controller) applyTheme() {
	if c.root != nil {
		for _, theme := range []Theme{ThemeLight, ThemeDark} {
			c.root.ToggleClass(theme.Class(), c.theme == theme)
		}
	}
	if c.store != nil {
		// Write failures leave the in-memory theme applied.
		_ = c.store.Set(StorageKey, string(c.theme))
	}
}
