package sampler

import "fmt"

// ListError reports a directory that could not be listed.
type ListError struct {
	Dir string
	Err error
}

func (e *ListError) Error() string {
	return fmt.Sprintf("failed to list directory: %s - %v", e.Dir, e.Err)
}

func (e *ListError) Unwrap() error {
	return e.Err
}
