// Package content resolves the locale-keyed message bundles that feed each
// page at build time.
package content

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"

	"github.com/najrandevs/najran.dev/internal/platform/i18n"
)

// Dir is the directory, relative to the project root, that holds one
// sub-directory of JSON bundles per locale.
const Dir = "translations"

// Page identifies a page type and therefore its bundle file.
type Page string

// Pages built by the site.
const (
	PageHome   Page = "home"
	PagePolicy Page = "privacy-policy"
)

// Pages returns every page type in build order.
func Pages() []Page {
	return []Page{PageHome, PagePolicy}
}

// File returns the bundle file name for the page.
func (p Page) File() string {
	switch p {
	case PageHome:
		return "common.json"
	case PagePolicy:
		return "privacy.json"
	default:
		return string(p) + ".json"
	}
}

// HomeMessages is the home page bundle.
type HomeMessages struct {
	Title                  string `json:"title"`
	Tagline                string `json:"tagline"`
	Subheader              string `json:"subheader"`
	About                  string `json:"about"`
	Mission                string `json:"mission"`
	PersonalNote           string `json:"personalNote"`
	AchievementTitle       string `json:"achievementTitle"`
	AchievementDescription string `json:"achievementDescription"`
	ContactCTA             string `json:"contactCTA"`
}

// PolicySection is one titled block of the privacy policy. Paragraphs and
// bullets are both optional; a section with neither renders its heading only.
type PolicySection struct {
	Heading    string   `json:"heading"`
	Paragraphs []string `json:"paragraphs,omitempty"`
	Bullets    []string `json:"bullets,omitempty"`
}

// HasBody reports whether the section carries paragraphs or bullets.
func (s PolicySection) HasBody() bool {
	return len(s.Paragraphs) > 0 || len(s.Bullets) > 0
}

// PolicyMessages is the privacy-policy page bundle.
type PolicyMessages struct {
	MetaTitle          string          `json:"metaTitle"`
	PageHeading        string          `json:"pageHeading"`
	AppName            string          `json:"appName"`
	EffectiveDateLabel string          `json:"effectiveDateLabel"`
	EffectiveDate      string          `json:"effectiveDate"`
	BackHome           string          `json:"backHome"`
	Intro              string          `json:"intro"`
	Sections           []PolicySection `json:"sections"`
	ContactLabel       string          `json:"contactLabel"`
	ContactCTA         string          `json:"contactCTA"`
	FooterNote         string          `json:"footerNote"`
}

// Path returns the bundle path for a locale and page, for example
// translations/ar/privacy.json.
func Path(locale i18n.Locale, page Page) string {
	return path.Join(Dir, string(locale), page.File())
}

// Resolver reads message bundles from a filesystem rooted at the project
// directory. It holds no cache; every call reads the file again.
type Resolver struct {
	fsys fs.FS
}

// NewResolver returns a resolver over fsys.
func NewResolver(fsys fs.FS) *Resolver {
	return &Resolver{fsys: fsys}
}

// Home resolves the home page bundle. An empty locale resolves the default.
func (r *Resolver) Home(locale string) (HomeMessages, error) {
	var messages HomeMessages
	if err := r.decode(locale, PageHome, &messages); err != nil {
		return HomeMessages{}, err
	}
	return messages, nil
}

// Policy resolves the privacy-policy bundle. An empty locale resolves the
// default.
func (r *Resolver) Policy(locale string) (PolicyMessages, error) {
	var messages PolicyMessages
	if err := r.decode(locale, PagePolicy, &messages); err != nil {
		return PolicyMessages{}, err
	}
	return messages, nil
}

// Raw returns the undecoded bundle bytes for a locale and page.
func (r *Resolver) Raw(locale string, page Page) ([]byte, error) {
	if r == nil || r.fsys == nil {
		return nil, fmt.Errorf("content filesystem is required")
	}
	p := Path(i18n.Normalize(locale), page)
	data, err := fs.ReadFile(r.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p, err)
	}
	return data, nil
}

func (r *Resolver) decode(locale string, page Page, target any) error {
	data, err := r.Raw(locale, page)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decode %s: %w", Path(i18n.Normalize(locale), page), err)
	}
	return nil
}
