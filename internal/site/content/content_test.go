package content

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/najrandevs/najran.dev/internal/platform/i18n"
)

func TestPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		locale i18n.Locale
		page   Page
		want   string
	}{
		{locale: i18n.English, page: PageHome, want: "translations/en/common.json"},
		{locale: i18n.Arabic, page: PageHome, want: "translations/ar/common.json"},
		{locale: i18n.English, page: PagePolicy, want: "translations/en/privacy.json"},
		{locale: i18n.Arabic, page: PagePolicy, want: "translations/ar/privacy.json"},
	}
	for _, tt := range tests {
		if got := Path(tt.locale, tt.page); got != tt.want {
			t.Fatalf("Path(%q, %q) = %q, want %q", tt.locale, tt.page, got, tt.want)
		}
	}
}

func TestResolverHome(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(fstest.MapFS{
		"translations/en/common.json": {Data: []byte(`{"title":"Najran Devs","tagline":"Hello"}`)},
	})

	messages, err := resolver.Home("en")
	if err != nil {
		t.Fatalf("Home() error = %v", err)
	}
	if messages.Title != "Najran Devs" || messages.Tagline != "Hello" {
		t.Fatalf("Home() = %+v", messages)
	}
	if messages.Mission != "" {
		t.Fatalf("missing key should decode empty, got %q", messages.Mission)
	}
}

func TestResolverDefaultsEmptyLocaleToEnglish(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(fstest.MapFS{
		"translations/en/common.json": {Data: []byte(`{"title":"default"}`)},
	})

	messages, err := resolver.Home("")
	if err != nil {
		t.Fatalf("Home(\"\") error = %v", err)
	}
	if messages.Title != "default" {
		t.Fatalf("Title = %q, want default", messages.Title)
	}
}

func TestResolverPolicySections(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(fstest.MapFS{
		"translations/ar/privacy.json": {Data: []byte(`{
			"metaTitle": "سياسة",
			"sections": [
				{"heading": "أ", "paragraphs": ["p1", "p2"]},
				{"heading": "ب", "bullets": ["b1"]},
				{"heading": "ج"}
			]
		}`)},
	})

	messages, err := resolver.Policy("ar")
	if err != nil {
		t.Fatalf("Policy() error = %v", err)
	}
	if len(messages.Sections) != 3 {
		t.Fatalf("len(Sections) = %d, want 3", len(messages.Sections))
	}
	if got := messages.Sections[0].Paragraphs; len(got) != 2 || got[1] != "p2" {
		t.Fatalf("Sections[0].Paragraphs = %v", got)
	}
	if got := messages.Sections[1].Bullets; len(got) != 1 || got[0] != "b1" {
		t.Fatalf("Sections[1].Bullets = %v", got)
	}
	if messages.Sections[2].HasBody() {
		t.Fatal("heading-only section should report no body")
	}
}

func TestResolverMissingFileIsError(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(fstest.MapFS{})

	_, err := resolver.Policy("ar")
	if err == nil {
		t.Fatal("expected error for missing bundle")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want fs.ErrNotExist", err)
	}
	if !strings.Contains(err.Error(), "translations/ar/privacy.json") {
		t.Fatalf("error should name the path: %v", err)
	}
}

func TestResolverUnsupportedLocaleFailsLookup(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(fstest.MapFS{
		"translations/en/common.json": {Data: []byte(`{}`)},
	})

	if _, err := resolver.Home("fr"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want fs.ErrNotExist", err)
	}
}

func TestResolverInvalidJSONIsError(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(fstest.MapFS{
		"translations/en/common.json": {Data: []byte(`{"title":`)},
	})

	_, err := resolver.Home("en")
	if err == nil {
		t.Fatal("expected decode error")
	}
	if !strings.HasPrefix(err.Error(), "decode translations/en/common.json") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestResolverRequiresFilesystem(t *testing.T) {
	t.Parallel()

	if _, err := NewResolver(nil).Home("en"); err == nil {
		t.Fatal("expected error for nil filesystem")
	}
}

func TestPageFile(t *testing.T) {
	t.Parallel()

	if PageHome.File() != "common.json" || PagePolicy.File() != "privacy.json" {
		t.Fatalf("unexpected page files %q %q", PageHome.File(), PagePolicy.File())
	}
	if got := Page("about").File(); got != "about.json" {
		t.Fatalf("Page(about).File() = %q", got)
	}
}
