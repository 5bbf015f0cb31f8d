package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

type attr struct {
	name    string
	value   string
	boolean bool
}

func a(name, value string) attr {
	return attr{name: name, value: value}
}

func href(url string) attr {
	return attr{name: "href", value: string(templ.URL(url))}
}

func flag(name string) attr {
	return attr{name: name, boolean: true}
}

// htmlWriter writes escaped markup and keeps the first write error.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) open(tag string, attrs ...attr) {
	h.raw("<" + tag)
	for _, at := range attrs {
		if at.boolean {
			h.raw(" " + at.name)
			continue
		}
		h.raw(" " + at.name + `="` + templ.EscapeString(at.value) + `"`)
	}
	h.raw(">")
}

func (h *htmlWriter) close(tag string) {
	h.raw("</" + tag + ">")
}

func (h *htmlWriter) element(tag, text string, attrs ...attr) {
	h.open(tag, attrs...)
	h.text(text)
	h.close(tag)
}

func (h *htmlWriter) render(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}
