package main

import (
	"errors"
	"os"

	"github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/hints"
)

// Exit codes for md2site CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All pages built
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or templates
	ExitIO      = 3 // File not found, permission denied
	ExitContent = 4 // Markdown that cannot be rendered
)

// exitCodeFor returns the appropriate exit code for an error.
// A failed build maps through its first page error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Content errors (exit 4)
	if md2site.IsContentError(err) {
		return ExitContent
	}

	// Usage/config/template errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, md2site.ErrTemplateNotFound) ||
		errors.Is(err, md2site.ErrTemplateMissingContent) ||
		errors.Is(err, md2site.ErrInvalidTemplateName) ||
		errors.Is(err, md2site.ErrInvalidAssetPath) ||
		errors.Is(err, md2site.ErrInvalidEngine) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrUnsafeClean) ||
		errors.Is(err, ErrUsage) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWritePage) ||
		errors.Is(err, ErrNoPages) ||
		errors.Is(err, ErrCopyStatic) {
		return ExitIO
	}

	return ExitGeneral
}

// formatError appends an actionable hint to err's message when one applies.
func formatError(err error) string {
	msg := err.Error()

	// Page errors already carried their hints in the per-page output
	if errors.Is(err, ErrPagesFailed) {
		return msg
	}

	switch {
	case errors.Is(err, md2site.ErrUnclosedDelimiter):
		msg += hints.ForUnclosedDelimiter()
	case errors.Is(err, md2site.ErrTitleNotFound):
		msg += hints.ForTitleNotFound()
	case errors.Is(err, md2site.ErrMissingChildren):
		msg += hints.ForEmptyBlock()
	case errors.Is(err, md2site.ErrTemplateMissingContent):
		msg += hints.ForTemplateMissingContent()
	case errors.Is(err, md2site.ErrTemplateNotFound):
		msg += hints.ForTemplateNotFound(md2site.EmbeddedTemplates())
	case errors.Is(err, ErrWritePage):
		msg += hints.ForOutputDirectory()
	}
	return msg
}
