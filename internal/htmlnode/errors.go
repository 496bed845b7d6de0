package htmlnode

import "errors"

// Structural errors returned by Render.
// These signal a bug in tree construction, not malformed Markdown.
var (
	ErrMissingTag      = errors.New("tag required for parent node")
	ErrMissingChildren = errors.New("children required for parent node")
	ErrMissingValue    = errors.New("value required for leaf node")
	ErrNilNode         = errors.New("nil node")
)
