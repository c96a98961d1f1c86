package compose

import (
	"errors"
	"fmt"
)

// Sentinel errors for document generation failure conditions.
var (
	ErrTemplateNotFound = errors.New("compose: template not found")
	ErrNotComposed      = errors.New("compose: no document has been composed")
	ErrNoRecords        = errors.New("compose: no records to compile")
)

// ComposeError wraps an error raised during a specific composition step.
type ComposeError struct {
	Op  string // step name, e.g. "metadata", "fields", "output"
	Err error
}

func (e *ComposeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("compose.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("compose.%s: unknown error", e.Op)
}

func (e *ComposeError) Unwrap() error {
	return e.Err
}

func newComposeError(op string, err error) *ComposeError {
	return &ComposeError{Op: op, Err: err}
}
