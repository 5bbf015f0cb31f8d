package templates

import (
	"github.com/najrandevs/najran.dev/internal/platform/i18n"
	"github.com/najrandevs/najran.dev/internal/site/presentation"
	"github.com/najrandevs/najran.dev/internal/site/routepath"
)

// PageContext carries the per-page state shared by the layout and bodies.
type PageContext struct {
	Locale i18n.Locale
	// Path is the logical page path, without locale prefix.
	Path string
	Loc  Localizer
	// Root holds the <html> attributes and classes computed by the
	// presentation controller for a first visit.
	Root      *presentation.Document
	Theme     presentation.Theme
	Direction i18n.Direction
	// LanguageToggleURL is the same page under the other locale.
	LanguageToggleURL string
}

// NewPageContext mounts a presentation controller with empty storage so the
// rendered root matches what the browser applies on a first visit.
func NewPageContext(locale i18n.Locale, logicalPath string, loc Localizer) PageContext {
	root := presentation.NewDocument()
	controller := presentation.NewController(root, presentation.NewMemoryStorage(nil), locale)
	controller.Mount()
	return PageContext{
		Locale:            controller.Locale(),
		Path:              logicalPath,
		Loc:               loc,
		Root:              root,
		Theme:             controller.Theme(),
		Direction:         controller.Direction(),
		LanguageToggleURL: controller.LocaleToggleURL(logicalPath),
	}
}

// URL returns a logical path localized to the page's locale.
func (p PageContext) URL(logicalPath string) string {
	return routepath.Localized(p.Locale, logicalPath)
}

// rootAttrs returns the attributes the controller set on the root, in name
// order, followed by the class list.
func (p PageContext) rootAttrs() []attr {
	if p.Root == nil {
		return nil
	}
	names := p.Root.Attributes()
	attrs := make([]attr, 0, len(names)+1)
	for _, name := range names {
		value, _ := p.Root.Attribute(name)
		attrs = append(attrs, a(name, value))
	}
	return append(attrs, a("class", p.Root.ClassName()))
}
