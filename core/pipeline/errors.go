package pipeline

import (
	"errors"
	"fmt"
)

// errMissingStorageClient guards spec construction for storage-backed sources.
var errMissingStorageClient = errors.New("storage source configured but no storage client available")

// ErrMissingSource marks a source file that does not exist or is unreadable.
// The engine treats it as recoverable: the run yields an empty table plus a
// warning rather than a failure.
var ErrMissingSource = errors.New("missing source")

// MissingSourceError reports which source was missing.
type MissingSourceError struct {
	// Source is the resolved identity of the missing source.
	Source string
	// Err is the underlying cause, if any.
	Err error
}

func (e *MissingSourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("missing source %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("missing source %s", e.Source)
}

// Unwrap makes errors.Is(err, ErrMissingSource) hold for every instance.
func (e *MissingSourceError) Unwrap() error {
	return ErrMissingSource
}
