// Package errors holds the error kinds shared by the service and HTTP
// layers. Handlers pick the response status from the kind alone.
package errors

import (
	"errors"
	"fmt"
)

// NotFoundError reports a missing record. Two values match under errors.Is
// when they name the same entity.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	return ok && t.Entity == e.Entity
}

// AlreadyExistsError reports a unique name collision (409)
type AlreadyExistsError struct {
	Entity  string
	Context string
}

func (e *AlreadyExistsError) Error() string {
	msg := e.Entity + " already exists"
	if e.Context != "" {
		msg += " " + e.Context
	}
	return msg
}

func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	return ok && t.Entity == e.Entity
}

// ValidationError rejects input before anything is written (400)
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation error: " + e.Message
	}
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// StorageError is a persistence failure. Op names the operation that was
// rolled back.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// ConfigurationError is raised at startup for settings the process cannot run with
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string { return e.Message }

var (
	ErrTeamMemberNotFound   = &NotFoundError{Entity: "team member"}
	ErrProjectNotFound      = &NotFoundError{Entity: "project"}
	ErrTaskNotFound         = &NotFoundError{Entity: "task"}
	ErrSubtaskNotFound      = &NotFoundError{Entity: "subtask"}
	ErrProjectImageNotFound = &NotFoundError{Entity: "project image"}
	ErrProjectLinkNotFound  = &NotFoundError{Entity: "project link"}

	ErrTeamMemberExists = &AlreadyExistsError{Entity: "team member", Context: "with this name"}
	ErrProjectExists    = &AlreadyExistsError{Entity: "project", Context: "with this name"}

	ErrNoSnapshotData     = &ValidationError{Message: "no data provided"}
	ErrInvalidSnapshot    = &ValidationError{Message: "invalid data format, expected a JSON object"}
	ErrIncompleteSnapshot = &ValidationError{Message: "invalid data format, expected teamMembers and projects"}

	ErrUnsupportedStorage  = &ConfigurationError{Message: "unsupported storage backend"}
	ErrUnsupportedDBDriver = &ConfigurationError{Message: "unsupported database driver"}
)

func isKind[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}

// IsNotFound reports whether err wraps a NotFoundError
func IsNotFound(err error) bool { return isKind[*NotFoundError](err) }

// IsAlreadyExists reports whether err wraps an AlreadyExistsError
func IsAlreadyExists(err error) bool { return isKind[*AlreadyExistsError](err) }

// IsValidation reports whether err wraps a ValidationError
func IsValidation(err error) bool { return isKind[*ValidationError](err) }

// IsStorage reports whether err wraps a StorageError
func IsStorage(err error) bool { return isKind[*StorageError](err) }

// IsConfiguration reports whether err wraps a ConfigurationError
func IsConfiguration(err error) bool { return isKind[*ConfigurationError](err) }

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewStorageError wraps err for op
func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
