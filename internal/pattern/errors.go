package pattern

import "errors"

// Catalog loading errors.
var (
	// ErrEmptyCatalog indicates a catalog without pattern types, or a type
	// without patterns.
	ErrEmptyCatalog = errors.New("pattern: catalog is empty")

	// ErrEmptyMatrix indicates a pattern with no rows or no columns.
	ErrEmptyMatrix = errors.New("pattern: matrix has no cells")

	// ErrRaggedMatrix indicates a pattern whose rows differ in length.
	ErrRaggedMatrix = errors.New("pattern: matrix rows differ in length")

	// ErrUnsupportedFormat indicates a catalog file with an unknown extension.
	ErrUnsupportedFormat = errors.New("pattern: unsupported catalog format")
)
