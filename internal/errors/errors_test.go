package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "project"}
		assert.Equal(t, "project not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "task"}
		err2 := &NotFoundError{Entity: "task"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrTaskNotFound, ErrSubtaskNotFound))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to delete: %w", ErrTeamMemberNotFound)
		assert.True(t, errors.Is(wrapped, ErrTeamMemberNotFound))
		assert.True(t, IsNotFound(wrapped))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrProjectImageNotFound))
		assert.False(t, IsNotFound(ErrProjectExists))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "team member already exists with this name", ErrTeamMemberExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "project"}
		assert.Equal(t, "project already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "project", Context: "in snapshot"}
		assert.True(t, errors.Is(err, ErrProjectExists))
		assert.False(t, errors.Is(err, ErrTeamMemberExists))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrProjectExists))
		assert.False(t, IsAlreadyExists(ErrProjectNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "workload", Message: "must be between 0 and 100"}
		assert.Equal(t, "validation error: workload - must be between 0 and 100", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		assert.Equal(t, "validation error: no data provided", ErrNoSnapshotData.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("role", "is required")))
		assert.True(t, IsValidation(ErrIncompleteSnapshot))
		assert.False(t, IsValidation(ErrTaskNotFound))
	})
}

func TestStorageError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewStorageError("replace", cause)

	assert.Equal(t, "storage error during replace: disk full", err.Error())
	assert.True(t, IsStorage(err))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, IsStorage(cause))
	assert.True(t, IsStorage(fmt.Errorf("apply: %w", err)))
}

func TestConfigurationError(t *testing.T) {
	err := fmt.Errorf("%w: %q", ErrUnsupportedStorage, "redis")

	assert.True(t, IsConfiguration(err))
	assert.Contains(t, err.Error(), "unsupported storage backend")
	assert.True(t, IsConfiguration(NewConfigurationError("bad")))
	assert.False(t, IsConfiguration(ErrNoSnapshotData))
}
