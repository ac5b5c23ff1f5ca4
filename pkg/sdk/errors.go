package sdk

import (
	"errors"
	"fmt"
	"strings"

	"connectrpc.com/connect"
)

// ErrorKind classifies a failure surfaced by the data layer.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNotFound
	KindPermissionDenied
	KindUnauthenticated
	KindRemoteUnavailable
	KindValidationFailed
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindPermissionDenied:
		return "permission_denied"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindRemoteUnavailable:
		return "remote_unavailable"
	case KindValidationFailed:
		return "validation_failed"
	default:
		return "unknown"
	}
}

// KindOf classifies err. Remote errors keep their Connect code, so wrapped
// errors are unwrapped with errors.As before classification.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}

	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return KindValidationFailed
	}

	switch connect.CodeOf(err) {
	case connect.CodeNotFound:
		return KindNotFound
	case connect.CodePermissionDenied:
		return KindPermissionDenied
	case connect.CodeUnauthenticated:
		return KindUnauthenticated
	case connect.CodeUnavailable, connect.CodeDeadlineExceeded:
		return KindRemoteUnavailable
	default:
		return KindUnknown
	}
}

// IsNotFound reports whether err means the requested entity has no record.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsPermissionDenied reports whether the caller's role was insufficient.
func IsPermissionDenied(err error) bool { return KindOf(err) == KindPermissionDenied }

// IsUnauthenticated reports whether the call required an identity.
func IsUnauthenticated(err error) bool { return KindOf(err) == KindUnauthenticated }

// FieldError is used to indicate an error with a specific form field.
type FieldError struct {
	Field string
	Error string
}

// ValidationError is raised client side before any remote call is made.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Error))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Field returns the message recorded for name, if any.
func (e *ValidationError) Field(name string) (string, bool) {
	for _, f := range e.Fields {
		if f.Field == name {
			return f.Error, true
		}
	}
	return "", false
}
