package bind

import (
	"errors"
	"fmt"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a misuse of the API, such as a nil binding target.
	KindConfig
	// KindTraversal indicates a change key path that could not be resolved.
	KindTraversal
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindTraversal:
		return "traversal"
	default:
		return "unknown"
	}
}

var (
	ErrNilTarget      = errors.New("nil binding target")
	ErrNilElement     = errors.New("nil element")
	ErrNotList        = errors.New("element cannot hold list items")
	ErrNotSelect      = errors.New("element cannot hold select options")
	ErrNotSlice       = errors.New("value is not a slice")
	ErrLengthMismatch = errors.New("content lists differ in length")
)

// BindError represents a structured error raised by this package.
type BindError struct {
	// Op is the operation that failed (e.g., "Observable.SetVal").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

func configError(op string, err error) *BindError {
	return &BindError{Op: op, Kind: KindConfig, Err: err}
}
