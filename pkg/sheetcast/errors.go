package sheetcast

import (
	"errors"
	"fmt"
)

// ErrUnknownFormat indicates a requested output format that is not
// registered. It is a client fault, not a processing failure.
var ErrUnknownFormat = errors.New("unknown output format")

// IngestionError represents a failure to build the canonical table
// from a source. Conversions never return a partial table alongside
// one of these.
type IngestionError struct {
	Source string
	Err    error
}

func (e *IngestionError) Error() string {
	return fmt.Sprintf("ingesting %q: %v", e.Source, e.Err)
}

func (e *IngestionError) Unwrap() error {
	return e.Err
}
