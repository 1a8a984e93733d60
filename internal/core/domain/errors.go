package domain

import "fmt"

// FetchError reports a failed or rejected call. It is recoverable: the
// collector logs it and the category or item is left out of the snapshot.
type FetchError struct {
	Region     string
	Service    Service
	Operation  Operation
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s in %s (status %d): %v", e.Service, e.Operation, e.Region, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s in %s: %v", e.Service, e.Operation, e.Region, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
