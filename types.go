package md2site

import (
	"github.com/alnah/go-md2site/internal/pipeline"
)

// Render engines.
const (
	// EngineNative renders with the built-in block and inline parsers.
	EngineNative = pipeline.EngineNative

	// EngineGoldmark renders with goldmark (CommonMark, GFM, highlighting).
	EngineGoldmark = pipeline.EngineGoldmark
)

// Input is one Markdown document to render.
type Input struct {
	Markdown string // required
	Title    string // overrides the title extracted from the first "# " line
}

// Result holds a rendered page.
type Result struct {
	Title   string // page title
	Content string // rendered Markdown fragment
	HTML    []byte // full page with the template applied
}

// Option configures a Generator.
type Option func(*Generator)

// generatorConfig holds internal configuration for Generator.
type generatorConfig struct {
	engine        string
	templateInput string // name, file path, or template content
	assetPath     string
	rewriteLinks  bool
}

// WithEngine selects the render engine (EngineNative or EngineGoldmark).
func WithEngine(name string) Option {
	return func(g *Generator) {
		g.cfg.engine = name
	}
}

// WithTemplate sets the page template.
// Accepts a template name ("default"), a file path ("./page.html"),
// or template content containing {{ Content }}.
func WithTemplate(input string) Option {
	return func(g *Generator) {
		g.cfg.templateInput = input
	}
}

// WithAssetPath loads named templates from {path}/templates with fallback to
// the built-in ones. Ignored when WithAssetLoader is also given.
func WithAssetPath(path string) Option {
	return func(g *Generator) {
		g.cfg.assetPath = path
	}
}

// WithAssetLoader sets a custom loader for named templates.
func WithAssetLoader(loader AssetLoader) Option {
	return func(g *Generator) {
		g.publicAssetLoader = loader
	}
}

// WithLinkRewrite rewrites relative links to .md files so they point at the
// generated .html pages.
func WithLinkRewrite(enabled bool) Option {
	return func(g *Generator) {
		g.cfg.rewriteLinks = enabled
	}
}
