package md2site

import (
	"github.com/alnah/go-md2site/internal/block"
	"github.com/alnah/go-md2site/internal/htmlnode"
	"github.com/alnah/go-md2site/internal/inline"
)

// Node model.
type (
	Node       = htmlnode.Node
	Leaf       = htmlnode.Leaf
	Parent     = htmlnode.Parent
	Attr       = htmlnode.Attr
	Attributes = htmlnode.Attributes
)

// Inline and block model.
type (
	InlineUnit = inline.Unit
	InlineKind = inline.Kind
	BlockType  = block.Type
	BlockKind  = block.Kind
)

// Inline kinds.
const (
	InlineText   = inline.Text
	InlineBold   = inline.Bold
	InlineItalic = inline.Italic
	InlineCode   = inline.Code
	InlineLink   = inline.Link
	InlineImage  = inline.Image
)

// Block kinds.
const (
	BlockParagraph     = block.Paragraph
	BlockHeading       = block.Heading
	BlockCode          = block.Code
	BlockQuote         = block.Quote
	BlockUnorderedList = block.UnorderedList
	BlockOrderedList   = block.OrderedList
)

// ParseInline splits text into a flat sequence of inline units.
// Returns ErrUnclosedDelimiter if a **, * or ` has no closing match.
func ParseInline(text string) ([]InlineUnit, error) {
	return inline.Parse(text)
}

// ParseDocument parses a Markdown document into a <div> holding one subtree
// per block. On error no tree is returned.
func ParseDocument(markdown string) (*Parent, error) {
	return block.ParseDocument(markdown)
}

// Serialize renders a node tree to HTML. Text is emitted verbatim.
func Serialize(n Node) (string, error) {
	return htmlnode.Render(n)
}

// SplitIntoBlocks splits a document on blank lines and trims each block.
func SplitIntoBlocks(markdown string) []string {
	return block.SplitBlocks(markdown)
}

// ClassifyBlock returns the type of a trimmed block.
func ClassifyBlock(b string) BlockType {
	return block.Classify(b)
}
