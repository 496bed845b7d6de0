package block

import "errors"

// ErrUnknownType indicates a block type Expand cannot build.
var ErrUnknownType = errors.New("unknown block type")
