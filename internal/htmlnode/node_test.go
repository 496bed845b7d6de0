package htmlnode

// Notes:
// - render is unexported; every case goes through Render, the only entry point
//   callers have.
// - Values are not escaped on purpose, the "raw value" cases pin that down.

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// TestAttributes - Attribute serialization
// ---------------------------------------------------------------------------

func TestAttributes_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		attrs Attributes
		want  string
	}{
		{
			name:  "nil list",
			attrs: nil,
			want:  "",
		},
		{
			name:  "single attribute",
			attrs: Attributes{{Key: "href", Val: "https://i.am.url/"}},
			want:  ` href="https://i.am.url/"`,
		},
		{
			name: "insertion order preserved",
			attrs: Attributes{
				{Key: "target", Val: "_blank"},
				{Key: "href", Val: "https://i.am.url/"},
			},
			want: ` target="_blank" href="https://i.am.url/"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.attrs.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAttributes_Get(t *testing.T) {
	t.Parallel()

	attrs := Attributes{{Key: "src", Val: "a.png"}, {Key: "alt", Val: "a"}}

	if got, ok := attrs.Get("alt"); !ok || got != "a" {
		t.Errorf("Get(alt) = %q, %v, want %q, true", got, ok, "a")
	}
	if _, ok := attrs.Get("href"); ok {
		t.Error("Get(href) found a missing attribute")
	}
}

// ---------------------------------------------------------------------------
// TestRender - Leaf and parent serialization
// ---------------------------------------------------------------------------

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "untagged leaf is raw value",
			node: Text("just text"),
			want: "just text",
		},
		{
			name: "untagged leaf keeps markup in value",
			node: Text("<b>raw</b>"),
			want: "<b>raw</b>",
		},
		{
			name: "tagged leaf",
			node: NewLeaf("b", "bold"),
			want: "<b>bold</b>",
		},
		{
			name: "leaf with empty value",
			node: NewLeaf("img", "", Attr{Key: "src", Val: "a.png"}, Attr{Key: "alt", Val: "a"}),
			want: `<img src="a.png" alt="a"></img>`,
		},
		{
			name: "leaf with attributes",
			node: NewLeaf("a", "I'm a link!", Attr{Key: "href", Val: "https://i.am.url/"}),
			want: `<a href="https://i.am.url/">I'm a link!</a>`,
		},
		{
			name: "parent with one text child",
			node: NewParent("p", []Node{Text("hi")}),
			want: "<p>hi</p>",
		},
		{
			name: "nested parents",
			node: NewParent("div", []Node{
				NewLeaf("h1", "heading"),
				NewParent("p", []Node{
					NewParent("p", []Node{Text("paragraph right here!")}),
					NewParent("p", []Node{
						NewLeaf("a", "linkylink", Attr{Key: "href", Val: "https://u.r.l/"}),
					}),
				}, Attr{Key: "class", Val: "myParagraph"}),
			}, Attr{Key: "class", Val: "myDiv"}),
			want: `<div class="myDiv"><h1>heading</h1><p class="myParagraph"><p>paragraph right here!</p><p><a href="https://u.r.l/">linkylink</a></p></p></div>`,
		},
		{
			name: "mixed inline children",
			node: NewParent("p", []Node{
				Text("I "),
				NewLeaf("b", "can't"),
				Text(" do "),
				NewLeaf("code", "that"),
			}),
			want: "<p>I <b>can't</b> do <code>that</code></p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Render(tt.node)
			if err != nil {
				t.Fatalf("Render() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender_StructuralErrors(t *testing.T) {
	t.Parallel()

	var nilLeaf *Leaf

	tests := []struct {
		name    string
		node    Node
		wantErr error
	}{
		{
			name:    "nil node",
			node:    nil,
			wantErr: ErrNilNode,
		},
		{
			name:    "nil leaf has no value",
			node:    nilLeaf,
			wantErr: ErrMissingValue,
		},
		{
			name:    "parent without tag",
			node:    NewParent("", []Node{Text("x")}),
			wantErr: ErrMissingTag,
		},
		{
			name:    "parent without children",
			node:    NewParent("p", nil),
			wantErr: ErrMissingChildren,
		},
		{
			name:    "parent with empty children",
			node:    NewParent("p", []Node{}),
			wantErr: ErrMissingChildren,
		},
		{
			name:    "error in nested child propagates",
			node:    NewParent("div", []Node{Text("ok"), NewParent("ul", nil)}),
			wantErr: ErrMissingChildren,
		},
		{
			name:    "nil leaf child",
			node:    NewParent("p", []Node{Text("ok"), nilLeaf}),
			wantErr: ErrMissingValue,
		},
		{
			name:    "untyped nil child",
			node:    NewParent("p", []Node{nil}),
			wantErr: ErrNilNode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Render(tt.node)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Render() error = %v, want %v", err, tt.wantErr)
			}
			if got != "" {
				t.Errorf("Render() returned partial output %q on error", got)
			}
		})
	}
}
