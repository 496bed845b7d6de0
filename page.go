package md2site

import (
	"strings"

	"github.com/alnah/go-md2site/internal/assets"
)

// ExtractTitle returns the text of the first line starting with "# ".
// Returns ErrTitleNotFound if the document has no such line.
func ExtractTitle(markdown string) (string, error) {
	for line := range strings.Lines(strings.TrimSpace(markdown)) {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimLeft(line, "#")), nil
		}
	}
	return "", ErrTitleNotFound
}

// ApplyTemplate replaces every {{ Title }} and {{ Content }} in tmpl.
// Substitution is a single pass, so placeholders inside title or content
// are left as they are.
func ApplyTemplate(tmpl, title, content string) string {
	r := strings.NewReplacer(
		assets.TitlePlaceholder, title,
		assets.ContentPlaceholder, content,
	)
	return r.Replace(tmpl)
}
