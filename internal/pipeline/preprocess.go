package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// utf8BOM hides a leading "# " title from ExtractTitle if left in place.
const utf8BOM = "\ufeff"

var crlfOrCR = regexp.MustCompile(`\r\n?`)

// MarkdownPreprocessor rewrites raw source before block splitting.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// LineEndingPreprocessor drops a UTF-8 byte order mark and normalizes line
// endings to \n. Block splitting relies on "\n\n" separators.
type LineEndingPreprocessor struct{}

// PreprocessMarkdown returns content unchanged once ctx is done.
func (p *LineEndingPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}
	return NormalizeLineEndings(strings.TrimPrefix(content, utf8BOM))
}

// NormalizeLineEndings converts \r\n and lone \r to \n.
func NormalizeLineEndings(content string) string {
	if !strings.ContainsRune(content, '\r') {
		return content
	}
	return crlfOrCR.ReplaceAllString(content, "\n")
}
