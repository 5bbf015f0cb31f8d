package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/najrandevs/najran.dev/internal/site/content"
	"github.com/najrandevs/najran.dev/internal/site/routepath"
)

// PolicyPage renders the complete privacy-policy document.
func PolicyPage(page PageContext, messages content.PolicyMessages) templ.Component {
	return withChildren(Layout(LayoutOptions{
		Title:       messages.MetaTitle,
		Description: T(page.Loc, "meta.policy_description"),
		Page:        page,
	}), Policy(page, messages))
}

// Policy renders the privacy-policy body.
func Policy(page PageContext, messages content.PolicyMessages) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		h.element("a", messages.BackHome, href(page.URL(routepath.Home)), a("class", "top-link"))
		writeHeading(h, messages.PageHeading)
		h.element("p", messages.AppName, a("class", "policy-subtitle"))
		h.element("p", messages.EffectiveDateLabel+": "+messages.EffectiveDate, a("class", "policy-meta"))
		h.element("p", messages.Intro)

		for _, section := range messages.Sections {
			writeSection(h, section)
		}

		h.element("p", messages.FooterNote, a("class", "policy-note"))
		writeContact(h, messages.ContactLabel, messages.ContactCTA)
		return h.err
	})
}

func writeSection(h *htmlWriter, section content.PolicySection) {
	h.open("section", a("class", "policy-section"))
	h.element("h2", section.Heading)
	if !section.HasBody() {
		h.close("section")
		return
	}
	for _, paragraph := range section.Paragraphs {
		h.element("p", paragraph)
	}
	if len(section.Bullets) > 0 {
		h.open("ul", a("class", "policy-list"))
		for _, bullet := range section.Bullets {
			h.element("li", bullet)
		}
		h.close("ul")
	}
	h.close("section")
}
