// Package md2site converts Markdown documents into HTML pages for static sites.
//
// # Quick Start
//
// Create a generator and render a page:
//
//	gen, err := md2site.NewGenerator()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := gen.Generate(ctx, md2site.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("index.html", result.HTML, 0644)
//
// The result holds the page title, the rendered content fragment
// (result.Content) and the full page with the template applied (result.HTML).
//
// # Parsing Pipeline
//
// The native engine works in two stages:
//
//  1. Block parsing: the document is split on blank lines and each block is
//     classified as heading, code, quote, unordered list, ordered list or
//     paragraph.
//  2. Inline parsing: text inside each block is split into plain, bold,
//     italic, code, link and image units.
//
// The blocks are collected under a single <div> and serialized. The lower
// level functions are exported for callers that want the tree itself:
//
//	units, err := md2site.ParseInline("some **bold** text")
//	doc, err := md2site.ParseDocument(markdown)
//	html, err := md2site.Serialize(doc)
//
// Supported syntax is deliberately small: no nesting of inline formatting,
// no escaping of delimiters, no tables and no raw HTML. An unclosed **, *
// or ` fails the whole document with ErrUnclosedDelimiter.
//
// # Configuration
//
// Use functional options to customize the generator:
//
//	gen, err := md2site.NewGenerator(
//	    md2site.WithTemplate("./layouts/page.html"),
//	    md2site.WithEngine(md2site.EngineGoldmark),
//	    md2site.WithLinkRewrite(true),
//	)
//
// # Templates
//
// A template is HTML containing {{ Title }} and {{ Content }}. The built-in
// "default" template is used unless another one is configured. Site
// templates are loaded from {dir}/templates/{name}.html with fallback to the
// built-in ones:
//
//	loader, err := md2site.NewAssetLoader("./site")
//	gen, err := md2site.NewGenerator(md2site.WithAssetLoader(loader))
//
// # Concurrency
//
// Parsing touches no shared state. A Generator is safe for concurrent use
// once constructed, so one instance can serve a whole worker pool.
package md2site
