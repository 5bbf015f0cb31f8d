package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/najrandevs/najran.dev/internal/platform/branding"
	"github.com/najrandevs/najran.dev/internal/site/content"
)

// HomePage renders the complete home document.
func HomePage(page PageContext, messages content.HomeMessages) templ.Component {
	return withChildren(Layout(LayoutOptions{
		Title:       messages.Title,
		Description: T(page.Loc, "meta.home_description"),
		Page:        page,
	}), Home(messages))
}

// Home renders the home page body.
func Home(messages content.HomeMessages) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		writeHeading(h, messages.Tagline)
		h.element("p", messages.Subheader)
		h.open("hr")

		h.element("h2", messages.About)
		h.element("p", messages.Mission)
		h.element("p", messages.PersonalNote)

		h.element("h3", messages.AchievementTitle, a("class", "achievement-title"))
		h.element("p", messages.AchievementDescription)

		writeContact(h, "", messages.ContactCTA)
		return h.err
	})
}

// writeHeading renders the page h1 with the blinking terminal cursor.
func writeHeading(h *htmlWriter, text string) {
	h.open("h1")
	h.text(text)
	h.open("span", a("class", "cursor"))
	h.close("span")
	h.close("h1")
}

func writeContact(h *htmlWriter, label, cta string) {
	line := branding.ContactEmail
	if label != "" {
		line = label + ": " + branding.ContactEmail
	}
	h.element("p", line, a("class", "contact-email"))
	h.element("a", cta, href(branding.ContactMailto()), a("class", "button"))
}

// withChildren renders layout with body as its children.
func withChildren(layout, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return layout.Render(templ.WithChildren(ctx, body), w)
	})
}
