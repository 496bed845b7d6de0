package inline

import (
	"errors"
	"testing"

	"github.com/alnah/go-md2site/internal/htmlnode"
)

// ---------------------------------------------------------------------------
// TestUnit_ToHTMLNode - Unit to leaf conversion
// ---------------------------------------------------------------------------

func TestUnit_ToHTMLNode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		unit Unit
		want string
	}{
		{name: "text", unit: NewText("hi"), want: "hi"},
		{name: "bold", unit: Unit{Text: "hi", Kind: Bold}, want: "<b>hi</b>"},
		{name: "italic", unit: Unit{Text: "hi", Kind: Italic}, want: "<i>hi</i>"},
		{name: "code", unit: Unit{Text: "x := 1", Kind: Code}, want: "<code>x := 1</code>"},
		{
			name: "link",
			unit: Unit{Text: "docs", Kind: Link, URL: "https://go.dev"},
			want: `<a href="https://go.dev">docs</a>`,
		},
		{
			name: "image",
			unit: Unit{Text: "gopher", Kind: Image, URL: "/img/g.png"},
			want: `<img src="/img/g.png" alt="gopher"></img>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			leaf, err := tt.unit.ToHTMLNode()
			if err != nil {
				t.Fatalf("ToHTMLNode() unexpected error: %v", err)
			}
			got, err := htmlnode.Render(leaf)
			if err != nil {
				t.Fatalf("Render() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ToHTMLNode() rendered %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnit_ToHTMLNode_UnknownKind(t *testing.T) {
	t.Parallel()

	if _, err := (Unit{Text: "x"}).ToHTMLNode(); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ToHTMLNode() error = %v, want ErrUnknownKind", err)
	}
	if _, err := ToHTMLNodes([]Unit{NewText("ok"), {Kind: Kind(42)}}); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ToHTMLNodes() error = %v, want ErrUnknownKind", err)
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	want := map[Kind]string{
		Text:     "text",
		Bold:     "bold",
		Italic:   "italic",
		Code:     "code",
		Link:     "link",
		Image:    "image",
		Kind(0):  "unknown",
		Kind(99): "unknown",
	}
	for k, s := range want {
		if got := k.String(); got != s {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), got, s)
		}
	}
}
