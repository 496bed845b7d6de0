package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// DefaultTemplateName is the name of the built-in page template.
const DefaultTemplateName = "default"

// MaxTemplateSize bounds template files read from disk.
const MaxTemplateSize = 1 << 20

var defaultLoader = NewEmbeddedLoader()

// LoadTemplate loads an embedded template by name.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}

// EmbeddedNames lists the templates compiled into the binary.
func EmbeddedNames() []string {
	return defaultLoader.Names()
}

// LoadTemplateFile reads a template from an explicit path and validates it.
func LoadTemplateFile(path string) (string, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided template path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrAssetRead, path)
	}

	content, err := readLimited(f, path)
	if err != nil {
		return "", err
	}
	if err := ValidateTemplate(path, content); err != nil {
		return "", err
	}
	return content, nil
}
