package record

import (
	"errors"
	"fmt"
)

// LoadErrorKind classifies why a record load failed.
type LoadErrorKind string

const (
	// LoadErrorNetwork is a transport failure reaching the source.
	LoadErrorNetwork LoadErrorKind = "network"
	// LoadErrorStatus is a non-success response status from the source.
	LoadErrorStatus LoadErrorKind = "status"
	// LoadErrorParse is a payload that is not a sequence of records.
	LoadErrorParse LoadErrorKind = "parse"
	// LoadErrorIO is a local read failure (file or cache).
	LoadErrorIO LoadErrorKind = "io"
)

// LoadError is the only error kind a record load surfaces.
type LoadError struct {
	Kind       LoadErrorKind
	Source     string
	StatusCode int // set for LoadErrorStatus
	Err        error
}

// NewLoadError wraps err as a LoadError of the given kind.
func NewLoadError(kind LoadErrorKind, source string, err error) *LoadError {
	return &LoadError{Kind: kind, Source: source, Err: err}
}

// NewStatusError reports a non-success status code from source.
func NewStatusError(source string, statusCode int) *LoadError {
	return &LoadError{
		Kind:       LoadErrorStatus,
		Source:     source,
		StatusCode: statusCode,
		Err:        fmt.Errorf("HTTP error! status: %d", statusCode),
	}
}

func (e *LoadError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("load failed (%s): %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("load from %s failed (%s): %v", e.Source, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// AsLoadError returns err as a *LoadError. Errors that are not already a
// LoadError are classified as network failures of source. A nil err
// returns nil.
func AsLoadError(err error, source string) *LoadError {
	if err == nil {
		return nil
	}
	var le *LoadError
	if errors.As(err, &le) {
		return le
	}
	return NewLoadError(LoadErrorNetwork, source, err)
}
