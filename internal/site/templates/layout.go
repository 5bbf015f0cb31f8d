package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/najrandevs/najran.dev/internal/platform/branding"
	"github.com/najrandevs/najran.dev/internal/platform/i18n"
	"github.com/najrandevs/najran.dev/internal/site/presentation"
	"github.com/najrandevs/najran.dev/internal/site/routepath"
)

const (
	fontsOrigin       = "https://fonts.googleapis.com"
	fontsStaticOrigin = "https://fonts.gstatic.com"
	latinFontURL      = "https://fonts.googleapis.com/css2?family=Ubuntu+Mono:wght@400;700&display=swap"
	arabicFontURL     = "https://fonts.googleapis.com/css2?family=Noto+Kufi+Arabic:wght@400;700&display=swap"
)

// LayoutOptions configures the document shell.
type LayoutOptions struct {
	Title       string
	Description string
	Page        PageContext
}

// Layout renders the full HTML document and the terminal chrome around the
// children component.
func Layout(opts LayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		page := opts.Page
		h := &htmlWriter{w: w}

		h.raw("<!DOCTYPE html>")
		h.open("html", append(page.rootAttrs(), a("data-locale", string(page.Locale)))...)
		writeHead(h, opts)
		h.open("body")
		h.open("div", a("class", "container"))
		h.open("div", a("class", "terminal "+string(page.Direction)))
		writeTerminalHeader(h)
		writeControls(h, page)
		h.render(ctx, templ.GetChildren(ctx))
		h.close("div")
		h.close("div")
		h.close("body")
		h.close("html")
		return h.err
	})
}

func writeHead(h *htmlWriter, opts LayoutOptions) {
	page := opts.Page
	h.open("head")
	h.open("meta", a("charset", "utf-8"))
	h.open("meta", a("name", "viewport"), a("content", "width=device-width, initial-scale=1"))
	h.open("meta", a("name", "theme-color"), a("content", branding.ThemeColor))
	h.element("title", opts.Title)
	h.open("meta", a("name", "description"), a("content", opts.Description))
	for _, locale := range i18n.Supported() {
		h.open("link", a("rel", "alternate"), a("hreflang", string(locale)), href(routepath.Localized(locale, page.Path)))
	}
	h.open("link", a("rel", "preconnect"), href(fontsOrigin))
	h.open("link", a("rel", "preconnect"), href(fontsStaticOrigin), a("crossorigin", "anonymous"))
	h.open("link", a("rel", "stylesheet"), href(latinFontURL))
	h.open("link", a("rel", "stylesheet"), href(arabicFontURL))
	h.open("link", a("rel", "stylesheet"), href(routepath.StyleSheet))
	h.open("script", a("src", routepath.Script), flag("defer"))
	h.close("script")
	h.close("head")
}

func writeTerminalHeader(h *htmlWriter) {
	h.open("div", a("class", "terminal-header"))
	for _, color := range []string{"red", "yellow", "green"} {
		h.open("div", a("class", "dot "+color))
		h.close("div")
	}
	h.close("div")
}

func writeControls(h *htmlWriter, page PageContext) {
	other := page.Locale.Other()
	h.open("div", a("class", "terminal-controls"))
	h.element("a", T(page.Loc, "nav.lang_toggle"),
		href(page.LanguageToggleURL),
		a("class", "language-toggle"),
		a("hreflang", string(other)),
		a("lang", string(other)),
	)
	lightLabel := T(page.Loc, "nav.theme_light")
	darkLabel := T(page.Loc, "nav.theme_dark")
	// The button names the theme it switches to.
	label := lightLabel
	if page.Theme == presentation.ThemeLight {
		label = darkLabel
	}
	h.element("button", label,
		a("type", "button"),
		a("class", "theme-toggle"),
		flag("data-theme-toggle"),
		a("data-label-light", lightLabel),
		a("data-label-dark", darkLabel),
		a("aria-label", T(page.Loc, "nav.theme_toggle_aria")),
	)
	h.close("div")
}
