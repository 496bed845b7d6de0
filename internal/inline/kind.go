package inline

// Kind identifies the type of an inline unit.
type Kind int

// Inline kinds. The zero value is deliberately invalid so an uninitialized
// unit is caught at conversion time.
const (
	_ Kind = iota
	Text
	Bold
	Italic
	Code
	Link
	Image
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Code:
		return "code"
	case Link:
		return "link"
	case Image:
		return "image"
	default:
		return "unknown"
	}
}
