package inline

import (
	"fmt"

	"github.com/alnah/go-md2site/internal/htmlnode"
)

// Unit is a typed fragment of inline content.
// For Image, Text holds the alt text. URL is only meaningful for Link and Image.
type Unit struct {
	Text string
	Kind Kind
	URL  string
}

// NewText creates a plain text unit.
func NewText(text string) Unit {
	return Unit{Text: text, Kind: Text}
}

// String implements fmt.Stringer for test and debug output.
func (u Unit) String() string {
	if u.URL != "" {
		return fmt.Sprintf("%s(%q, %q)", u.Kind, u.Text, u.URL)
	}
	return fmt.Sprintf("%s(%q)", u.Kind, u.Text)
}

// ToHTMLNode converts u to a leaf node.
func (u Unit) ToHTMLNode() (*htmlnode.Leaf, error) {
	switch u.Kind {
	case Text:
		return htmlnode.Text(u.Text), nil
	case Bold:
		return htmlnode.NewLeaf("b", u.Text), nil
	case Italic:
		return htmlnode.NewLeaf("i", u.Text), nil
	case Code:
		return htmlnode.NewLeaf("code", u.Text), nil
	case Link:
		return htmlnode.NewLeaf("a", u.Text, htmlnode.Attr{Key: "href", Val: u.URL}), nil
	case Image:
		return htmlnode.NewLeaf("img", "",
			htmlnode.Attr{Key: "src", Val: u.URL},
			htmlnode.Attr{Key: "alt", Val: u.Text},
		), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(u.Kind))
	}
}

// ToHTMLNodes converts a unit sequence to leaf nodes, in order.
func ToHTMLNodes(units []Unit) ([]htmlnode.Node, error) {
	nodes := make([]htmlnode.Node, 0, len(units))
	for _, u := range units {
		leaf, err := u.ToHTMLNode()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, leaf)
	}
	return nodes, nil
}
