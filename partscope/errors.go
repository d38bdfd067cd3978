package partscope

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	ErrIO               ErrorKind = "io"
	ErrSQL              ErrorKind = "sql"
	ErrDecode           ErrorKind = "decode"
	ErrDuplicateID      ErrorKind = "duplicate_id"
	ErrUnknownDimension ErrorKind = "unknown_dimension"
	ErrUnknownField     ErrorKind = "unknown_field"
	ErrConfig           ErrorKind = "config"
)

type Error struct {
	Kind    ErrorKind
	Message string
	Field   string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	base := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if e.Field != "" {
		base = fmt.Sprintf("%s (field=%s)", base, e.Field)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", base, e.Cause)
	}
	return base
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func Wrap(kind ErrorKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

func New(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func DuplicateIDError(id RecordID) *Error {
	return &Error{Kind: ErrDuplicateID, Message: fmt.Sprintf("duplicate record id %d", id)}
}

func UnknownDimensionError(name string) *Error {
	return &Error{Kind: ErrUnknownDimension, Message: "unknown dimension", Field: name}
}

func UnknownFieldError(field string) *Error {
	return &Error{Kind: ErrUnknownField, Message: "unknown field", Field: field}
}

func ConfigError(field, msg string) *Error {
	return &Error{Kind: ErrConfig, Field: field, Message: msg}
}

func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
