package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "sprint"}
		assert.Equal(t, "sprint not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "sprint"}
		err2 := &NotFoundError{Entity: "sprint"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "sprint"}
		err2 := &NotFoundError{Entity: "issue"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrSprintNotFound, ErrSprintNotFound))
		assert.False(t, errors.Is(ErrSprintNotFound, ErrIssueNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrSprintNotFound))
		assert.False(t, IsNotFound(ErrInvalidStatus))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "project", Context: "with this key"}
		assert.Equal(t, "project already exists with this key", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "project"}
		assert.Equal(t, "project already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "project", Context: "with this key"}
		err2 := &AlreadyExistsError{Entity: "project", Context: "with this key"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrProjectExists))
		assert.False(t, IsAlreadyExists(ErrProjectNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "status", Message: "invalid value"}
		assert.Equal(t, "validation error: status - invalid value", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid payload"}
		assert.Equal(t, "validation error: invalid payload", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("role", "unknown role")))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})
}

func TestConflictError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := NewConflictError("project %d already has an active sprint", 7)
		assert.Equal(t, "project 7 already has an active sprint", err.Error())
	})

	t.Run("IsConflict helper", func(t *testing.T) {
		assert.True(t, IsConflict(NewConflictError("conflict")))
		assert.False(t, IsConflict(ErrTeamNotFound))
	})
}

func TestAuthErrors(t *testing.T) {
	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidToken))
		assert.True(t, IsAuthentication(ErrInvalidRefreshToken))
		assert.False(t, IsAuthentication(ErrTeamNotFound))
	})

	t.Run("IsAuthorization helper", func(t *testing.T) {
		assert.True(t, IsAuthorization(NewAuthorizationError("owner role required")))
		assert.False(t, IsAuthorization(ErrInvalidToken))
	})
}

func TestNewErrorConstructors(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("dashboard")
		assert.Equal(t, "dashboard not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("issue", "with this key")
		assert.Equal(t, "issue already exists with this key", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})
}
