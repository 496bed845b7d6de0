package md2site

import (
	"fmt"

	"github.com/alnah/go-md2site/internal/assets"
)

// DefaultTemplate is the name of the built-in page template.
const DefaultTemplate = assets.DefaultTemplateName

// EmbeddedTemplates lists the names of the built-in templates.
func EmbeddedTemplates() []string {
	return assets.EmbeddedNames()
}

// AssetLoader defines the contract for loading page templates.
// Implementations may load from filesystem, embedded assets, a database, etc.
//
// The library provides NewAssetLoader() for filesystem-based loading with
// fallback to embedded defaults. Implement this interface for custom backends.
type AssetLoader interface {
	// LoadTemplate loads a template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)
}

// NewAssetLoader creates an AssetLoader for the given site directory.
// If basePath is empty, returns a loader using only embedded templates.
// If basePath is set, {basePath}/templates/{name}.html takes precedence with
// fallback to embedded.
//
// Returns ErrInvalidAssetPath if basePath is set but not a readable directory.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	return resolver, nil
}
