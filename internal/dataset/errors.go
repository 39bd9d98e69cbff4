package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingColumn is wrapped when a required header is absent.
	ErrMissingColumn = errors.New("missing required column")
	// ErrUnsupportedFormat is wrapped when no reader handles the source format.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// DataSourceError reports a source that is missing, unreadable or malformed.
type DataSourceError struct {
	Source string
	Op     string // open, read, header
	Err    error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("data source %s: %s: %v", e.Source, e.Op, e.Err)
}

func (e *DataSourceError) Unwrap() error { return e.Err }
