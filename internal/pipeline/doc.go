// Package pipeline implements the Markdown-to-HTML page pipeline.
//
// This package handles the stages between raw Markdown and the HTML fragment
// spliced into a page template:
//   - Markdown preprocessing (BOM removal, line ending normalization)
//   - Markdown to HTML conversion, either with the native block/inline parser
//     or with Goldmark
//   - Relative .md link rewriting to .html
//
// Template loading and substitution live in the root md2site package.
package pipeline
