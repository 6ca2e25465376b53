package corpus

import "errors"

// ErrClosed is returned by Writer methods called after Close.
var ErrClosed = errors.New("corpus: writer closed")
