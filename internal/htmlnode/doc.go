// Package htmlnode models the HTML tree produced by the Markdown parser.
//
// A tree is built from two node variants:
//
//	Leaf   - a terminal element holding raw text (tag + value + attributes)
//	Parent - a container holding ordered children (tag + children + attributes)
//
// A Leaf without a tag renders its value verbatim, which is how plain inline
// text is represented. Values are never escaped: the tree is trusted output of
// the parser, not a sanitizer.
//
// Render walks the tree and returns the HTML string, failing with a structural
// error (ErrMissingTag, ErrMissingChildren, ErrMissingValue) when a node
// violates its invariants.
package htmlnode
