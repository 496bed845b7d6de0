package md2site

import (
	"errors"

	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/block"
	"github.com/alnah/go-md2site/internal/htmlnode"
	"github.com/alnah/go-md2site/internal/inline"
	"github.com/alnah/go-md2site/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown  = errors.New("markdown content cannot be empty")
	ErrTitleNotFound  = errors.New("could not find title")
	ErrInvalidEngine  = errors.New("invalid render engine")
	ErrHTMLConversion = pipeline.ErrHTMLConversion

	// Parse errors.
	ErrUnclosedDelimiter = inline.ErrUnclosedDelimiter
	ErrUnknownInlineKind = inline.ErrUnknownKind
	ErrUnknownBlockType  = block.ErrUnknownType

	// Structural errors from Serialize.
	ErrMissingTag      = htmlnode.ErrMissingTag
	ErrMissingChildren = htmlnode.ErrMissingChildren
	ErrMissingValue    = htmlnode.ErrMissingValue
	ErrNilNode         = htmlnode.ErrNilNode

	// Template loading errors.
	ErrTemplateNotFound       = assets.ErrTemplateNotFound
	ErrTemplateMissingContent = assets.ErrTemplateMissingContent
	ErrInvalidTemplateName    = assets.ErrInvalidAssetName
	ErrInvalidAssetPath       = errors.New("invalid asset path")
)

// IsContentError reports whether err was caused by the Markdown itself
// rather than by configuration or I/O.
func IsContentError(err error) bool {
	return errors.Is(err, ErrUnclosedDelimiter) ||
		errors.Is(err, ErrTitleNotFound) ||
		errors.Is(err, ErrEmptyMarkdown) ||
		IsStructuralError(err)
}

// IsStructuralError reports whether err is a serialization invariant violation.
func IsStructuralError(err error) bool {
	return errors.Is(err, ErrMissingTag) ||
		errors.Is(err, ErrMissingChildren) ||
		errors.Is(err, ErrMissingValue) ||
		errors.Is(err, ErrNilNode)
}
