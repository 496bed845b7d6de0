package inline

import "errors"

// Sentinel errors for inline parsing.
var (
	// ErrUnclosedDelimiter indicates a delimiter without its closing match.
	ErrUnclosedDelimiter = errors.New("unclosed formatting syntax")

	// ErrUnknownKind indicates a unit whose kind has no HTML mapping.
	ErrUnknownKind = errors.New("unknown inline kind")
)
