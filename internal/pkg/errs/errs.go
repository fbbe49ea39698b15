package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Every typed error in this
// package unwraps to exactly one of these.
var (
	ErrValueIsRequired  = errors.New("value is required")
	ErrValueIsInvalid   = errors.New("value is invalid")
	ErrObjectNotFound   = errors.New("object not found")
	ErrRemoteCallFailed = errors.New("remote call failed")
	ErrAuthRequired     = errors.New("authentication required")
)

// sanitize strips newlines from values interpolated into error messages so a
// single error always renders as a single log line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%s", v), "\n", " ")
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates an error for a missing required value.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates an error for a missing required
// value with an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a value fails a validation rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates an error for an invalid value.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates an error for an invalid value with
// an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates that a target entity is absent, either in the
// local working set or on the backend during an update or delete.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an error for a missing entity.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an error for a missing entity with
// an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, sanitize(e.ParamName), sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// RemoteCallFailedError indicates that a call to the backend could not be
// completed: the transport failed or the backend answered with a non-success
// status. The operation name identifies the failing call for the caller.
type RemoteCallFailedError struct {
	Operation string
	Cause     error
}

// NewRemoteCallFailedError creates an error for a failed backend call.
func NewRemoteCallFailedError(operation string) *RemoteCallFailedError {
	return &RemoteCallFailedError{Operation: operation}
}

// NewRemoteCallFailedErrorWithCause creates an error for a failed backend call
// with an underlying cause.
func NewRemoteCallFailedErrorWithCause(operation string, cause error) *RemoteCallFailedError {
	return &RemoteCallFailedError{Operation: operation, Cause: cause}
}

func (e *RemoteCallFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrRemoteCallFailed, sanitize(e.Operation), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrRemoteCallFailed, sanitize(e.Operation))
}

func (e *RemoteCallFailedError) Unwrap() error {
	return ErrRemoteCallFailed
}

// AuthRequiredError indicates that no user identity could be resolved from the
// local session record.
type AuthRequiredError struct {
	Cause error
}

// NewAuthRequiredError creates an error for a missing user identity.
func NewAuthRequiredError() *AuthRequiredError {
	return &AuthRequiredError{}
}

// NewAuthRequiredErrorWithCause creates an error for a missing user identity
// with an underlying cause.
func NewAuthRequiredErrorWithCause(cause error) *AuthRequiredError {
	return &AuthRequiredError{Cause: cause}
}

func (e *AuthRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", ErrAuthRequired, e.Cause)
	}
	return ErrAuthRequired.Error()
}

func (e *AuthRequiredError) Unwrap() error {
	return ErrAuthRequired
}
