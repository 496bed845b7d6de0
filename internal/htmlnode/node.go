package htmlnode

import (
	"fmt"
	"strings"
)

// Attr is a single HTML attribute.
type Attr struct {
	Key string
	Val string
}

// Attributes is an ordered attribute list. Order is insertion order and is
// preserved on output.
type Attributes []Attr

// Get returns the value of the first attribute named key.
func (a Attributes) Get(key string) (string, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// String renders the list as ` key="value"` pairs; an empty list renders as "".
func (a Attributes) String() string {
	if len(a) == 0 {
		return ""
	}
	var b strings.Builder
	for _, attr := range a {
		fmt.Fprintf(&b, ` %s="%s"`, attr.Key, attr.Val)
	}
	return b.String()
}

// Node is either a *Leaf or a *Parent.
type Node interface {
	render(b *strings.Builder) error
}

// Compile-time interface implementation checks.
var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Parent)(nil)
)

// Leaf is a terminal node. An empty Tag means the value is emitted as-is.
type Leaf struct {
	Tag   string
	Value string
	Attrs Attributes
}

// NewLeaf creates a Leaf.
func NewLeaf(tag, value string, attrs ...Attr) *Leaf {
	return &Leaf{Tag: tag, Value: value, Attrs: attrs}
}

// Text creates an untagged Leaf for raw text.
func Text(value string) *Leaf {
	return &Leaf{Value: value}
}

func (l *Leaf) render(b *strings.Builder) error {
	// a nil leaf is the only way a leaf can lack a value; "" is a valid value
	if l == nil {
		return ErrMissingValue
	}
	if l.Tag == "" {
		b.WriteString(l.Value)
		return nil
	}
	b.WriteString("<" + l.Tag + l.Attrs.String() + ">")
	b.WriteString(l.Value)
	b.WriteString("</" + l.Tag + ">")
	return nil
}

// Parent is a container node. Tag and at least one child are required.
type Parent struct {
	Tag      string
	Children []Node
	Attrs    Attributes
}

// NewParent creates a Parent.
func NewParent(tag string, children []Node, attrs ...Attr) *Parent {
	return &Parent{Tag: tag, Children: children, Attrs: attrs}
}

func (p *Parent) render(b *strings.Builder) error {
	if p == nil {
		return ErrNilNode
	}
	if p.Tag == "" {
		return ErrMissingTag
	}
	if len(p.Children) == 0 {
		return fmt.Errorf("%w: <%s>", ErrMissingChildren, p.Tag)
	}

	b.WriteString("<" + p.Tag + p.Attrs.String() + ">")
	for i, child := range p.Children {
		if child == nil {
			return fmt.Errorf("%w: <%s> child %d", ErrNilNode, p.Tag, i)
		}
		if err := child.render(b); err != nil {
			return err
		}
	}
	b.WriteString("</" + p.Tag + ">")
	return nil
}

// Render serializes n and its descendants to HTML.
// Nothing is returned on error; the output is all or nothing.
func Render(n Node) (string, error) {
	if n == nil {
		return "", ErrNilNode
	}
	var b strings.Builder
	if err := n.render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}
