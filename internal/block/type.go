package block

import "fmt"

// Kind identifies the structural type of a block.
type Kind int

// Block kinds. The zero value is invalid.
const (
	_ Kind = iota
	Paragraph
	Heading
	Code
	Quote
	UnorderedList
	OrderedList
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Paragraph:
		return "paragraph"
	case Heading:
		return "heading"
	case Code:
		return "code"
	case Quote:
		return "quote"
	case UnorderedList:
		return "unordered_list"
	case OrderedList:
		return "ordered_list"
	default:
		return "unknown"
	}
}

// Type is the classification of a block. Level is 1-6 for headings, 0 otherwise.
type Type struct {
	Kind  Kind
	Level int
}

// String implements fmt.Stringer.
func (t Type) String() string {
	if t.Kind == Heading {
		return fmt.Sprintf("heading(%d)", t.Level)
	}
	return t.Kind.String()
}
