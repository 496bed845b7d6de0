package block

import (
	"fmt"
	"strings"

	"github.com/alnah/go-md2site/internal/htmlnode"
	"github.com/alnah/go-md2site/internal/inline"
)

// ContainerTag wraps all blocks of a document.
const ContainerTag = "div"

// ParseDocument splits markdown into blocks and returns them as children of a
// single container node. On error no tree is returned.
func ParseDocument(markdown string) (*htmlnode.Parent, error) {
	blocks := SplitBlocks(markdown)
	children := make([]htmlnode.Node, 0, len(blocks))
	for i, b := range blocks {
		node, err := ToHTMLNode(b)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i+1, err)
		}
		children = append(children, node)
	}
	return htmlnode.NewParent(ContainerTag, children), nil
}

// ToHTMLNode classifies a trimmed block and expands it.
func ToHTMLNode(block string) (*htmlnode.Parent, error) {
	return Expand(block, Classify(block))
}

// Expand builds the subtree for a block already classified as t.
func Expand(block string, t Type) (*htmlnode.Parent, error) {
	switch t.Kind {
	case Heading:
		return expandHeading(block, t.Level)
	case Code:
		return expandCode(block), nil
	case Quote:
		return expandQuote(block)
	case UnorderedList:
		return expandList(block, "ul", stripUnorderedMarker)
	case OrderedList:
		return expandList(block, "ol", stripOrderedMarker)
	case Paragraph:
		return withInline("p", block)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}
}

// withInline parses text as inline content and wraps it in a tag.
func withInline(tag, text string) (*htmlnode.Parent, error) {
	units, err := inline.Parse(text)
	if err != nil {
		return nil, err
	}
	children, err := inline.ToHTMLNodes(units)
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent(tag, children), nil
}

func expandHeading(block string, level int) (*htmlnode.Parent, error) {
	text := strings.TrimPrefix(block, strings.Repeat("#", level)+" ")
	return withInline(fmt.Sprintf("h%d", level), text)
}

// expandCode keeps the body verbatim: no inline parsing inside fences.
// Overlapping fences ("````") leave an empty body.
func expandCode(block string) *htmlnode.Parent {
	var body string
	if len(block) >= 2*len(codeFence) {
		body = strings.TrimSpace(block[len(codeFence) : len(block)-len(codeFence)])
	}
	return htmlnode.NewParent("pre", []htmlnode.Node{htmlnode.NewLeaf("code", body)})
}

// expandQuote joins the quoted lines with single spaces.
func expandQuote(block string) (*htmlnode.Parent, error) {
	ls := lines(block)
	parts := make([]string, 0, len(ls))
	for _, l := range ls {
		if t := strings.TrimSpace(strings.TrimPrefix(l, ">")); t != "" {
			parts = append(parts, t)
		}
	}
	return withInline("blockquote", strings.Join(parts, " "))
}

func expandList(block, tag string, strip func(string) string) (*htmlnode.Parent, error) {
	ls := lines(block)
	items := make([]htmlnode.Node, 0, len(ls))
	for _, l := range ls {
		item, err := withInline("li", strip(l))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return htmlnode.NewParent(tag, items), nil
}

func stripUnorderedMarker(line string) string {
	if hasUnorderedMarker(line) {
		return line[2:]
	}
	return line
}

func stripOrderedMarker(line string) string {
	if loc := orderedPrefix.FindStringIndex(line); loc != nil {
		return line[loc[1]:]
	}
	return line
}
