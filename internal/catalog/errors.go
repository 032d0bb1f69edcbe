package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrKindInvalid  = errors.New("catalog: kind must be product or solution")
	ErrSlugRequired = errors.New("catalog: slug is required")
	ErrSlugInvalid  = errors.New("catalog: slug contains invalid characters")
	ErrNameRequired = errors.New("catalog: name is required")
)

// NotFoundError represents missing records from repository lookups. It is a
// successful "no such record" answer, distinct from FetchError.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

// FetchError wraps transport or store failures. Callers must never treat a
// FetchError as an empty collection; an empty slice always means "legitimately
// no records".
type FetchError struct {
	Resource string
	Err      error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s fetch failed", e.Resource)
	}
	return fmt.Sprintf("%s fetch failed: %v", e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsFetchFailure reports whether err wraps a FetchError.
func IsFetchFailure(err error) bool {
	var fetch *FetchError
	return errors.As(err, &fetch)
}
