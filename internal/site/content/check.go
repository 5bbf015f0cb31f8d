package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/najrandevs/najran.dev/internal/platform/i18n"
	"github.com/tidwall/gjson"
)

// ErrIncomplete marks a bundle that lacks fields its template renders.
var ErrIncomplete = errors.New("content bundle is incomplete")

var requiredFields = map[Page][]string{
	PageHome: {
		"title",
		"tagline",
		"subheader",
		"about",
		"mission",
		"personalNote",
		"achievementTitle",
		"achievementDescription",
		"contactCTA",
	},
	PagePolicy: {
		"metaTitle",
		"pageHeading",
		"appName",
		"effectiveDateLabel",
		"effectiveDate",
		"backHome",
		"intro",
		"sections",
		"contactLabel",
		"contactCTA",
		"footerNote",
	},
}

// RequiredFields lists the top-level fields the page template dereferences.
func RequiredFields(page Page) []string {
	fields := requiredFields[page]
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

// Check returns the JSON paths of every required field that is absent or
// blank in data. Policy sections are checked for a non-blank heading.
func Check(data []byte, page Page) ([]string, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("check %s: invalid JSON", page.File())
	}
	doc := gjson.ParseBytes(data)
	var missing []string
	for _, field := range RequiredFields(page) {
		value := doc.Get(field)
		if !value.Exists() {
			missing = append(missing, field)
			continue
		}
		if value.Type == gjson.String && strings.TrimSpace(value.String()) == "" {
			missing = append(missing, field)
		}
	}
	if page == PagePolicy {
		sections := doc.Get("sections")
		if sections.Exists() && !sections.IsArray() {
			missing = append(missing, "sections")
			return missing, nil
		}
		for i, section := range sections.Array() {
			if strings.TrimSpace(section.Get("heading").String()) == "" {
				missing = append(missing, fmt.Sprintf("sections.%d.heading", i))
			}
		}
	}
	return missing, nil
}

// Check reads the bundle for locale and page and returns an
// *IncompleteError when required fields are missing.
func (r *Resolver) Check(locale string, page Page) error {
	data, err := r.Raw(locale, page)
	if err != nil {
		return err
	}
	p := Path(i18n.Normalize(locale), page)
	missing, err := Check(data, page)
	if err != nil {
		var doc any
		if jsonErr := json.Unmarshal(data, &doc); jsonErr != nil {
			return fmt.Errorf("decode %s: %w", p, jsonErr)
		}
		return fmt.Errorf("%s: %w", p, err)
	}
	if len(missing) > 0 {
		return &IncompleteError{Path: p, Missing: missing}
	}
	return nil
}

// IncompleteError reports the missing fields of one bundle. It matches
// ErrIncomplete with errors.Is.
type IncompleteError struct {
	Path    string
	Missing []string
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%s: missing %s", e.Path, strings.Join(e.Missing, ", "))
}

// Is matches ErrIncomplete.
func (e *IncompleteError) Is(target error) bool {
	return target == ErrIncomplete
}
