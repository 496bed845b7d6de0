package md2site

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.LineEndingPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.NativeConverter)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ AssetLoader                   = (*assets.AssetResolver)(nil)
)

// Generator renders Markdown documents into full HTML pages.
// Create with NewGenerator(); a Generator is immutable and safe for
// concurrent use.
type Generator struct {
	cfg               generatorConfig
	assetLoader       assets.AssetLoader
	publicAssetLoader AssetLoader
	preprocessor      pipeline.MarkdownPreprocessor
	htmlConverter     pipeline.HTMLConverter
	template          string
}

// NewGenerator creates a Generator with the native engine and the built-in
// default template. Returns an error if the engine is unknown or the
// template cannot be loaded.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		cfg:          generatorConfig{engine: EngineNative},
		assetLoader:  assets.NewEmbeddedLoader(),
		preprocessor: &pipeline.LineEndingPreprocessor{},
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(g.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		g.assetLoader = resolver
	}

	// Public and internal loader interfaces share a method set.
	if g.publicAssetLoader != nil {
		g.assetLoader = g.publicAssetLoader
	}

	if g.htmlConverter == nil {
		conv, err := pipeline.NewHTMLConverter(g.cfg.engine)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidEngine, err)
		}
		g.htmlConverter = conv
	}

	if err := g.resolveTemplate(); err != nil {
		return nil, err
	}

	return g, nil
}

// Generate renders one document. Either the whole page is returned or an
// error; there is no partial result.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (g *Generator) Generate(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := validateInput(input); err != nil {
		return nil, err
	}

	mdContent := g.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	title := input.Title
	if title == "" {
		title, err = ExtractTitle(mdContent)
		if err != nil {
			return nil, err
		}
	}

	content, err := g.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	if g.cfg.rewriteLinks {
		content, err = pipeline.RewriteMarkdownLinks(content)
		if err != nil {
			return nil, fmt.Errorf("rewriting links: %w", err)
		}
	}

	return &Result{
		Title:   title,
		Content: content,
		HTML:    []byte(ApplyTemplate(g.template, title, content)),
	}, nil
}

// Template returns the resolved page template.
func (g *Generator) Template() string {
	return g.template
}

// resolveTemplate resolves the template input (name, path, or content) to
// template content. Called during NewGenerator after options are applied.
func (g *Generator) resolveTemplate() error {
	input := g.cfg.templateInput
	if input == "" {
		input = DefaultTemplate
	}

	label := input
	var content string
	switch {
	case strings.Contains(input, assets.ContentPlaceholder):
		label = "inline template"
		content = input
	case fileutil.IsFilePath(input):
		loaded, err := assets.LoadTemplateFile(input)
		if err != nil {
			return fmt.Errorf("loading template file %q: %w", input, err)
		}
		content = loaded
	default:
		loaded, err := g.assetLoader.LoadTemplate(input)
		if err != nil {
			return fmt.Errorf("loading template %q: %w", input, err)
		}
		content = loaded
	}

	if err := assets.ValidateTemplate(label, content); err != nil {
		return err
	}
	g.template = content
	return nil
}

// validateInput checks that the document has something to render.
// An empty document would otherwise surface later as a structural error.
func validateInput(input Input) error {
	if strings.TrimSpace(input.Markdown) == "" {
		return ErrEmptyMarkdown
	}
	return nil
}
