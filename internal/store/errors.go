package store

import "fmt"

// ReadError reports a table file that exists but cannot be read or does not
// match its schema.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("storage read error: %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports a table file that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("storage write error: %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
