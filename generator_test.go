package md2site

// Notes:
// - Tests Generator.Generate with a mocked HTMLConverter to isolate error
//   handling and data flow from the parsers.
// - Generated pages are inspected with goquery rather than string matching
//   where the structure matters.

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

// ---------------------------------------------------------------------------
// Mock Implementations
// ---------------------------------------------------------------------------

type mockHTMLConverter struct {
	output string
	err    error
	panics bool
}

func (m *mockHTMLConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if m.panics {
		panic("boom")
	}
	if m.err != nil {
		return "", m.err
	}
	return m.output, nil
}

// withHTMLConverter injects a converter (test only).
func withHTMLConverter(c interface {
	ToHTML(context.Context, string) (string, error)
}) Option {
	return func(g *Generator) {
		g.htmlConverter = c
	}
}

type mapLoader map[string]string

func (m mapLoader) LoadTemplate(name string) (string, error) {
	if s, ok := m[name]; ok {
		return s, nil
	}
	return "", ErrTemplateNotFound
}

// parsePage loads generated HTML into a goquery document.
func parsePage(t *testing.T, page []byte) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		t.Fatalf("failed to parse generated page: %v", err)
	}
	return doc
}

// ---------------------------------------------------------------------------
// TestNewGenerator - Construction and template resolution
// ---------------------------------------------------------------------------

func TestNewGenerator(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tmplFile := filepath.Join(dir, "page.html")
	if err := os.WriteFile(tmplFile, []byte("<main>{{ Content }}</main>"), 0o644); err != nil {
		t.Fatal(err)
	}
	site := t.TempDir()
	if err := os.MkdirAll(filepath.Join(site, "templates"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(site, "templates", "post.html"), []byte("<article>{{ Content }}</article>"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name         string
		opts         []Option
		wantTemplate string
		wantErr      error
	}{
		{
			name: "defaults",
		},
		{
			name:         "template content",
			opts:         []Option{WithTemplate("<b>{{ Content }}</b>")},
			wantTemplate: "<b>{{ Content }}</b>",
		},
		{
			name:         "template file",
			opts:         []Option{WithTemplate(tmplFile)},
			wantTemplate: "<main>{{ Content }}</main>",
		},
		{
			name:         "named template from asset path",
			opts:         []Option{WithAssetPath(site), WithTemplate("post")},
			wantTemplate: "<article>{{ Content }}</article>",
		},
		{
			name:         "custom asset loader",
			opts:         []Option{WithAssetLoader(mapLoader{"x": "<x>{{ Content }}</x>"}), WithTemplate("x")},
			wantTemplate: "<x>{{ Content }}</x>",
		},
		{
			name:    "loaded template without content placeholder",
			opts:    []Option{WithAssetLoader(mapLoader{"bad": "<x>{{ Title }}</x>"}), WithTemplate("bad")},
			wantErr: ErrTemplateMissingContent,
		},
		{
			name:    "unknown template name",
			opts:    []Option{WithTemplate("nope")},
			wantErr: ErrTemplateNotFound,
		},
		{
			name:    "missing template file",
			opts:    []Option{WithTemplate(filepath.Join(dir, "missing.html"))},
			wantErr: ErrTemplateNotFound,
		},
		{
			name:    "invalid asset path",
			opts:    []Option{WithAssetPath(filepath.Join(dir, "missing"))},
			wantErr: ErrInvalidAssetPath,
		},
		{
			name:    "unknown engine",
			opts:    []Option{WithEngine("pandoc")},
			wantErr: ErrInvalidEngine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g, err := NewGenerator(tt.opts...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("NewGenerator() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewGenerator() unexpected error: %v", err)
			}
			if tt.wantTemplate != "" && g.Template() != tt.wantTemplate {
				t.Errorf("Template() = %q, want %q", g.Template(), tt.wantTemplate)
			}
			if !strings.Contains(g.Template(), "{{ Content }}") {
				t.Errorf("Template() lacks content placeholder: %q", g.Template())
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestGenerate - Full page rendering
// ---------------------------------------------------------------------------

func TestGenerate_DefaultTemplate(t *testing.T) {
	t.Parallel()

	g, err := NewGenerator()
	if err != nil {
		t.Fatalf("NewGenerator() error: %v", err)
	}

	md := "# Tolkien Fan Club\n\n" +
		"**I like Tolkien**. Read my [first post here](/majesty).\n\n" +
		"> All that is gold does not glitter\n\n" +
		"- elves\n- dwarves\n\n" +
		"1. Gandalf\n2. Bilbo\n\n" +
		"```\nfunc main() {}\n```\n\n" +
		"![dragon](/images/smaug.png)"

	res, err := g.Generate(context.Background(), Input{Markdown: md})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if res.Title != "Tolkien Fan Club" {
		t.Errorf("Title = %q", res.Title)
	}

	doc := parsePage(t, res.HTML)

	if got := doc.Find("title").Text(); got != "Tolkien Fan Club" {
		t.Errorf("<title> = %q", got)
	}
	if got := doc.Find("article > div > h1").Text(); got != "Tolkien Fan Club" {
		t.Errorf("h1 = %q", got)
	}
	if got := doc.Find("p b").First().Text(); got != "I like Tolkien" {
		t.Errorf("bold = %q", got)
	}
	if href, _ := doc.Find("p a").Attr("href"); href != "/majesty" {
		t.Errorf("link href = %q", href)
	}
	if got := doc.Find("blockquote").Text(); got != "All that is gold does not glitter" {
		t.Errorf("blockquote = %q", got)
	}
	if n := doc.Find("ul > li").Length(); n != 2 {
		t.Errorf("ul has %d items, want 2", n)
	}
	if got := doc.Find("ol > li").Last().Text(); got != "Bilbo" {
		t.Errorf("last ol item = %q", got)
	}
	if got := doc.Find("pre > code").Text(); got != "func main() {}" {
		t.Errorf("code block = %q", got)
	}
	img := doc.Find("img")
	if src, _ := img.Attr("src"); src != "/images/smaug.png" {
		t.Errorf("img src = %q", src)
	}
	if alt, _ := img.Attr("alt"); alt != "dragon" {
		t.Errorf("img alt = %q", alt)
	}

	if !strings.Contains(string(res.HTML), res.Content) {
		t.Error("page does not contain the rendered content verbatim")
	}
}

func TestGenerate_Content(t *testing.T) {
	t.Parallel()

	g, err := NewGenerator(WithTemplate("{{ Title }}|{{ Content }}"))
	if err != nil {
		t.Fatalf("NewGenerator() error: %v", err)
	}

	res, err := g.Generate(context.Background(), Input{Markdown: "# Title\r\n\r\nBody text"})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if want := "<div><h1>Title</h1><p>Body text</p></div>"; res.Content != want {
		t.Errorf("Content = %q, want %q", res.Content, want)
	}
	if want := "Title|<div><h1>Title</h1><p>Body text</p></div>"; string(res.HTML) != want {
		t.Errorf("HTML = %q, want %q", res.HTML, want)
	}
}

func TestGenerate_TitleOverride(t *testing.T) {
	t.Parallel()

	g, err := NewGenerator(WithTemplate("{{ Title }}:{{ Content }}"))
	if err != nil {
		t.Fatalf("NewGenerator() error: %v", err)
	}

	res, err := g.Generate(context.Background(), Input{Markdown: "no heading here", Title: "Given"})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if res.Title != "Given" {
		t.Errorf("Title = %q, want Given", res.Title)
	}
}

func TestGenerate_LinkRewrite(t *testing.T) {
	t.Parallel()

	md := "# Docs\n\nSee [intro](guide/intro.md#setup) and [site](https://example.com/a.md)."

	g, err := NewGenerator(WithLinkRewrite(true))
	if err != nil {
		t.Fatalf("NewGenerator() error: %v", err)
	}
	res, err := g.Generate(context.Background(), Input{Markdown: md})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	doc := parsePage(t, res.HTML)
	links := doc.Find("p a")
	if href, _ := links.Eq(0).Attr("href"); href != "guide/intro.html#setup" {
		t.Errorf("relative link = %q, want guide/intro.html#setup", href)
	}
	if href, _ := links.Eq(1).Attr("href"); href != "https://example.com/a.md" {
		t.Errorf("absolute link = %q, want unchanged", href)
	}
}

func TestGenerate_GoldmarkEngine(t *testing.T) {
	t.Parallel()

	g, err := NewGenerator(WithEngine(EngineGoldmark))
	if err != nil {
		t.Fatalf("NewGenerator() error: %v", err)
	}

	res, err := g.Generate(context.Background(), Input{Markdown: "# Hi\n\n| a | b |\n|---|---|\n| 1 | 2 |\n"})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	doc := parsePage(t, res.HTML)
	if doc.Find("article > div > table").Length() != 1 {
		t.Errorf("goldmark engine did not render a table: %s", res.Content)
	}
}

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     []Option
		markdown string
		wantErr  error
	}{
		{
			name:     "empty markdown",
			markdown: "",
			wantErr:  ErrEmptyMarkdown,
		},
		{
			name:     "whitespace only",
			markdown: " \n\n\t",
			wantErr:  ErrEmptyMarkdown,
		},
		{
			name:     "no title",
			markdown: "just a paragraph",
			wantErr:  ErrTitleNotFound,
		},
		{
			name:     "unclosed delimiter",
			markdown: "# T\n\nsome `code",
			wantErr:  ErrUnclosedDelimiter,
		},
		{
			name:     "block with no text",
			markdown: "# T\n\n****",
			wantErr:  ErrMissingChildren,
		},
		{
			name:     "converter failure",
			opts:     []Option{withHTMLConverter(&mockHTMLConverter{err: ErrHTMLConversion})},
			markdown: "# T",
			wantErr:  ErrHTMLConversion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g, err := NewGenerator(tt.opts...)
			if err != nil {
				t.Fatalf("NewGenerator() error: %v", err)
			}

			res, err := g.Generate(context.Background(), Input{Markdown: tt.markdown})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Generate() error = %v, want %v", err, tt.wantErr)
			}
			if res != nil {
				t.Error("Generate() returned a partial result")
			}
		})
	}
}

func TestGenerate_RecoversPanic(t *testing.T) {
	t.Parallel()

	g, err := NewGenerator(withHTMLConverter(&mockHTMLConverter{panics: true}))
	if err != nil {
		t.Fatalf("NewGenerator() error: %v", err)
	}

	res, err := g.Generate(context.Background(), Input{Markdown: "# T"})
	if err == nil || !strings.Contains(err.Error(), "internal error") {
		t.Errorf("Generate() error = %v, want internal error", err)
	}
	if res != nil {
		t.Error("Generate() returned a result after panic")
	}
}

func TestGenerate_CanceledContext(t *testing.T) {
	t.Parallel()

	g, err := NewGenerator()
	if err != nil {
		t.Fatalf("NewGenerator() error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = g.Generate(ctx, Input{Markdown: "# T"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Generate() error = %v, want context.Canceled", err)
	}
}

// ---------------------------------------------------------------------------
// TestGenerate_Concurrent - One generator, many goroutines
// ---------------------------------------------------------------------------

func TestGenerate_Concurrent(t *testing.T) {
	t.Parallel()

	g, err := NewGenerator(WithTemplate("{{ Content }}"))
	if err != nil {
		t.Fatalf("NewGenerator() error: %v", err)
	}

	const n = 16
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			md := "# Page\n\n" + strings.Repeat("*x* ", i+1)
			res, err := g.Generate(context.Background(), Input{Markdown: md})
			if err != nil {
				errs <- err
				return
			}
			if got := strings.Count(res.Content, "<i>x</i>"); got != i+1 {
				errs <- errors.New("wrong italic count")
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
