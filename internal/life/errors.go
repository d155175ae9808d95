package life

import "errors"

// ErrInvalidHealth indicates a serialized cell value other than 0 or 1.
var ErrInvalidHealth = errors.New("life: cell value must be 0 or 1")
