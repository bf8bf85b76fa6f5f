package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidConfig  = errors.New("invalid config")
	ErrInvalidRoot    = errors.New("root is not an array or object")
	ErrResponseTooBig = errors.New("response body too large")
	ErrHTTPStatus     = errors.New("error status from server")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindFileNotFound            ErrorKind = "file_not_found"
	KindReadFailed              ErrorKind = "read_failed"
	KindInvalidJSON             ErrorKind = "invalid_json"
	KindInvalidRootShape        ErrorKind = "invalid_root_shape"
	KindRequestFailed           ErrorKind = "request_failed"
	KindInvalidResponseJSON     ErrorKind = "invalid_response_json"
	KindUnexpectedResponseShape ErrorKind = "unexpected_response_shape"
	KindInvalidConfig           ErrorKind = "invalid_config"
)

// Fatal reports whether an error of this kind must stop the run.
func (k ErrorKind) Fatal() bool {
	return k != KindUnexpectedResponseShape
}

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path or URL
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

// KindOf returns the kind of the outermost OpError in the chain, or "" if none.
func KindOf(err error) ErrorKind {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return ""
}

// Cause returns the error wrapped by the outermost OpError, or err itself.
func Cause(err error) error {
	var oe *OpError
	if errors.As(err, &oe) && oe.Err != nil {
		return oe.Err
	}
	return err
}
