package assets

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed templates/*.html
var embedded embed.FS

const templateExt = ".html"

// AssetLoader loads a page template by name (without extension).
type AssetLoader interface {
	LoadTemplate(name string) (string, error)
}

// Compile-time interface checks.
var (
	_ AssetLoader = (*EmbeddedLoader)(nil)
	_ AssetLoader = (*DirLoader)(nil)
	_ AssetLoader = (*AssetResolver)(nil)
)

// readTemplate reads {name}.html from fsys. origin labels errors.
func readTemplate(fsys fs.FS, name, origin string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	f, err := fsys.Open(name + templateExt)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %q in %s", ErrTemplateNotFound, name, origin)
		}
		return "", fmt.Errorf("%w: %q in %s: %v", ErrAssetRead, name, origin, err)
	}
	defer func() { _ = f.Close() }()

	return readLimited(f, name)
}

// readLimited reads at most MaxTemplateSize bytes and fails beyond that.
func readLimited(r io.Reader, label string) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxTemplateSize+1))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrAssetRead, label, err)
	}
	if len(data) > MaxTemplateSize {
		return "", fmt.Errorf("%w: %s exceeds %d bytes", ErrAssetRead, label, MaxTemplateSize)
	}
	return string(data), nil
}

// ---------------------------------------------------------------------------
// EmbeddedLoader
// ---------------------------------------------------------------------------

// EmbeddedLoader serves the templates compiled into the binary.
type EmbeddedLoader struct {
	fsys fs.FS
}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(fmt.Sprintf("assets: embedded templates: %v", err))
	}
	return &EmbeddedLoader{fsys: sub}
}

// LoadTemplate returns the embedded template called name.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	return readTemplate(e.fsys, name, "embedded templates")
}

// Names lists the embedded template names, sorted.
func (e *EmbeddedLoader) Names() []string {
	matches, _ := fs.Glob(e.fsys, "*"+templateExt)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(m, templateExt))
	}
	sort.Strings(names)
	return names
}

// ---------------------------------------------------------------------------
// DirLoader
// ---------------------------------------------------------------------------

// DirLoader serves {base}/templates/{name}.html from disk. Reads go through
// os.Root, so neither names nor symlinks can leave the templates directory.
type DirLoader struct {
	dir string // absolute {base}/templates
}

// NewDirLoader checks that basePath is a readable directory.
func NewDirLoader(basePath string) (*DirLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	info, err := os.Stat(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, abs)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, abs)
	}

	return &DirLoader{dir: filepath.Join(abs, "templates")}, nil
}

// LoadTemplate returns {base}/templates/{name}.html.
// A missing templates directory means the template is not found.
func (d *DirLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	root, err := os.OpenRoot(d.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %q in %s", ErrTemplateNotFound, name, d.dir)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	defer func() { _ = root.Close() }()

	return readTemplate(root.FS(), name, d.dir)
}

// ---------------------------------------------------------------------------
// AssetResolver
// ---------------------------------------------------------------------------

// AssetResolver tries each loader in turn. Only ErrTemplateNotFound moves on
// to the next loader; any other error is returned as is.
type AssetResolver struct {
	loaders []AssetLoader
}

// NewAssetResolver returns a resolver over the site directory at basePath
// (if any) followed by the embedded templates.
func NewAssetResolver(basePath string) (*AssetResolver, error) {
	r := &AssetResolver{}
	if basePath != "" {
		dir, err := NewDirLoader(basePath)
		if err != nil {
			return nil, err
		}
		r.loaders = append(r.loaders, dir)
	}
	r.loaders = append(r.loaders, NewEmbeddedLoader())
	return r, nil
}

// LoadTemplate returns the first template found.
func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	err := fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	for _, l := range r.loaders {
		var content string
		content, err = l.LoadTemplate(name)
		if err == nil {
			return content, nil
		}
		if !errors.Is(err, ErrTemplateNotFound) {
			return "", err
		}
	}
	return "", err
}

// HasCustomLoader reports whether a site template directory is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return len(r.loaders) > 1
}
