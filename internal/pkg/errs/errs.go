package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the application error taxonomy. Each custom error type
// unwraps to exactly one of these, so callers can classify failures with
// errors.Is without depending on concrete types.
var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrValueIsRequired     = errors.New("value is required")
	ErrAlreadyExists       = errors.New("object already exists")
	ErrResourceUnavailable = errors.New("resource is unavailable")
	ErrPreconditionNotMet  = errors.New("precondition is not met")
	ErrForbidden           = errors.New("operation is forbidden")
	ErrInvalidState        = errors.New("state is invalid for this operation")
)

// sanitize strips newlines from values interpolated into error messages
// so a single log line stays a single log line.
func sanitize(value string) string {
	return strings.ReplaceAll(value, "\n", " ")
}

// ObjectNotFoundError indicates that an object could not be located by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a value is outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// AlreadyExistsError indicates a write-once record (checklist, signature,
// QR credential) already exists for the given key.
type AlreadyExistsError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewAlreadyExistsError creates an AlreadyExistsError without an underlying cause.
func NewAlreadyExistsError(paramName string, id any) *AlreadyExistsError {
	return &AlreadyExistsError{ParamName: paramName, ID: id}
}

// NewAlreadyExistsErrorWithCause creates an AlreadyExistsError wrapping an underlying cause.
func NewAlreadyExistsErrorWithCause(paramName string, id any, cause error) *AlreadyExistsError {
	return &AlreadyExistsError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *AlreadyExistsError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrAlreadyExists, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s %s", ErrAlreadyExists, e.ParamName, e.ID))
}

func (e *AlreadyExistsError) Unwrap() error {
	return ErrAlreadyExists
}

// ResourceUnavailableError indicates a carrier or vehicle could not be
// reserved because it is not currently Available.
type ResourceUnavailableError struct {
	ResourceName string
	ID           any
	Cause        error
}

// NewResourceUnavailableError creates a ResourceUnavailableError without an underlying cause.
func NewResourceUnavailableError(resourceName string, id any) *ResourceUnavailableError {
	return &ResourceUnavailableError{ResourceName: resourceName, ID: id}
}

// NewResourceUnavailableErrorWithCause creates a ResourceUnavailableError wrapping an underlying cause.
func NewResourceUnavailableErrorWithCause(resourceName string, id any, cause error) *ResourceUnavailableError {
	return &ResourceUnavailableError{ResourceName: resourceName, ID: id, Cause: cause}
}

func (e *ResourceUnavailableError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s %s (cause: %s)",
			ErrResourceUnavailable, e.ResourceName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s %s", ErrResourceUnavailable, e.ResourceName, e.ID))
}

func (e *ResourceUnavailableError) Unwrap() error {
	return ErrResourceUnavailable
}

// PreconditionNotMetError indicates that a gate guarding a lifecycle
// transition (checklist, signature) has not been satisfied.
type PreconditionNotMetError struct {
	Precondition string
	Cause        error
}

// NewPreconditionNotMetError creates a PreconditionNotMetError without an underlying cause.
func NewPreconditionNotMetError(precondition string) *PreconditionNotMetError {
	return &PreconditionNotMetError{Precondition: precondition}
}

// NewPreconditionNotMetErrorWithCause creates a PreconditionNotMetError wrapping an underlying cause.
func NewPreconditionNotMetErrorWithCause(precondition string, cause error) *PreconditionNotMetError {
	return &PreconditionNotMetError{Precondition: precondition, Cause: cause}
}

func (e *PreconditionNotMetError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrPreconditionNotMet, e.Precondition, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrPreconditionNotMet, e.Precondition))
}

func (e *PreconditionNotMetError) Unwrap() error {
	return ErrPreconditionNotMet
}

// ForbiddenError indicates a role or ownership mismatch between the
// authenticated principal and the operation it attempted.
type ForbiddenError struct {
	Reason string
	Cause  error
}

// NewForbiddenError creates a ForbiddenError without an underlying cause.
func NewForbiddenError(reason string) *ForbiddenError {
	return &ForbiddenError{Reason: reason}
}

// NewForbiddenErrorWithCause creates a ForbiddenError wrapping an underlying cause.
func NewForbiddenErrorWithCause(reason string, cause error) *ForbiddenError {
	return &ForbiddenError{Reason: reason, Cause: cause}
}

func (e *ForbiddenError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrForbidden, e.Reason, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrForbidden, e.Reason))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// InvalidStateError indicates that an entity is not in the state a
// lifecycle transition requires.
type InvalidStateError struct {
	ParamName string
	State     string
	Cause     error
}

// NewInvalidStateError creates an InvalidStateError without an underlying cause.
func NewInvalidStateError(paramName, state string) *InvalidStateError {
	return &InvalidStateError{ParamName: paramName, State: state}
}

// NewInvalidStateErrorWithCause creates an InvalidStateError wrapping an underlying cause.
func NewInvalidStateErrorWithCause(paramName, state string, cause error) *InvalidStateError {
	return &InvalidStateError{ParamName: paramName, State: state, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s is %s (cause: %s)", ErrInvalidState, e.ParamName, e.State, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s is %s", ErrInvalidState, e.ParamName, e.State))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}
