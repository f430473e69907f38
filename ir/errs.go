package ir

import "errors"

// ErrInternal reports a node holding a value it cannot render. Parsed and
// encoded trees never produce one.
var ErrInternal = errors.New("internal error")
