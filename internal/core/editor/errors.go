package editor

import "errors"

// Storage errors. Implementations wrap the underlying cause so callers can
// match with errors.Is.
var (
	// ErrNotFound is returned by Load when no document has the given name.
	ErrNotFound = errors.New("document not found")
	// ErrUnavailable is returned when the backing store cannot be read or
	// written.
	ErrUnavailable = errors.New("storage unavailable")
	// ErrInvalidName is returned for names that are empty, too long, or
	// would escape the document directory.
	ErrInvalidName = errors.New("invalid document name")
)
