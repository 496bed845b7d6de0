// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"

	"github.com/alnah/go-md2site/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and the user config directory that was searched.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/md2site.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-md2site") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	if IsInContainer() {
		return format("mount a writable volume for the output directory")
	}
	return format("check parent directory exists and is writable")
}

// ForContentDirectory returns hints when the content directory is missing or empty.
func ForContentDirectory(dir string) string {
	return format("put .md files under " + dir + " or pass the directory as an argument")
}

// ForTemplateNotFound lists the templates that are available.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForTemplateMissingContent explains the required placeholder.
func ForTemplateMissingContent() string {
	return format("templates must contain {{ Content }}; {{ Title }} is optional")
}

// ForTitleNotFound explains what counts as a page title.
func ForTitleNotFound() string {
	return format(`start a line with "# " to give the page a title`)
}

// ForUnclosedDelimiter suggests fixes for unbalanced inline markup.
func ForUnclosedDelimiter() string {
	return formatHints([]string{
		"close every **, * and ` on the same block",
		"nesting like **bold *italic*** is not supported",
	})
}

// ForEmptyBlock explains blocks that render to nothing.
func ForEmptyBlock() string {
	return format("a block with only markup (e.g. ****) has no text to render")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
