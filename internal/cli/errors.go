package cli

import (
	"errors"
	"fmt"
	"io"
)

// UserError is an error with guidance on how to fix the invocation.
type UserError struct {
	Err      error
	Hint     string
	NextStep string
}

func (e *UserError) Error() string {
	return e.Err.Error()
}

func (e *UserError) Unwrap() error {
	return e.Err
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)

	var userErr *UserError
	if !errors.As(err, &userErr) {
		return
	}
	if userErr.Hint != "" {
		fmt.Fprintf(w, "Hint: %s\n", userErr.Hint)
	}
	if userErr.NextStep != "" {
		fmt.Fprintf(w, "Try: %s\n", userErr.NextStep)
	}
}
