package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestApiErr_KindMatching(t *testing.T) {
	err := NewNotFoundError("project not found")
	assert.True(t, IsNotFound(err))
	assert.False(t, IsBadRequest(err))
	assert.Equal(t, "project not found", err.Error())
	assert.Equal(t, http.StatusNotFound, err.StatusCode)

	assert.True(t, IsBadRequest(NewBadRequestError("invalid projectID")))
	assert.True(t, IsBadRequest(NewInvalidFieldError("approved", "must be true, false or unset")))
	assert.True(t, IsBadRequest(NewMissingRequiredFieldError("title")))
	assert.True(t, IsBadRequest(NewInvalidJSONError(errors.New("eof"))))
	assert.True(t, IsBadRequest(NewDatabaseError("create", "project", errors.New("violates foreign key constraint"))))
	assert.False(t, IsBadRequest(NewDatabaseError("find", "project", errors.New("syntax error"))))

	wrapped := fmt.Errorf("loading: %w", NewNotFound("teacher"))
	assert.True(t, IsNotFound(wrapped))
	assert.Equal(t, "loading: teacher not found", wrapped.Error())
}

func TestApiErr_GetFullError(t *testing.T) {
	inner := NewInternalErrorWithCause("inner", errors.New("boom"))
	assert.ErrorIs(t, inner, ErrInternal)
	outer := &ApiErr{StatusCode: 500, err: errors.New("outer"), Details: "ctx", Cause: inner}
	assert.Equal(t, "outer: ctx -> inner -> boom", outer.GetFullError())
}

func TestNewDatabaseError(t *testing.T) {
	tests := []struct {
		name   string
		cause  error
		status int
		is     error
	}{
		{"record not found", fmt.Errorf("find: %w", gorm.ErrRecordNotFound), http.StatusNotFound, ErrNotFound},
		{"duplicate", errors.New("ERROR: duplicate key value violates unique constraint"), http.StatusConflict, ErrAlreadyExists},
		{"foreign key", errors.New("violates foreign key constraint \"fk_projects_teacher\""), http.StatusBadRequest, ErrForeignKeyConstraint},
		{"connection", errors.New("failed to connect: connection refused"), http.StatusServiceUnavailable, ErrDatabaseConnection},
		{"generic", errors.New("syntax error"), http.StatusInternalServerError, ErrDatabaseQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDatabaseError("find", "project", tt.cause)
			assert.Equal(t, tt.status, err.StatusCode)
			assert.ErrorIs(t, err, tt.is)
			assert.Equal(t, tt.cause, err.Cause)
		})
	}
}

func TestServiceErrors(t *testing.T) {
	err := NewServiceUnreachableError("donorschoose", errors.New("dial tcp: i/o timeout"))
	assert.True(t, IsServiceUnreachableError(err))
	assert.Equal(t, http.StatusBadGateway, err.StatusCode)
	assert.Contains(t, err.GetFullError(), "i/o timeout")

	assert.True(t, IsConfigError(NewConfigError("DB_TYPE", nil)))
	assert.True(t, IsMissingRequiredFieldError(NewMissingRequiredFieldError("title")))
	assert.True(t, IsInvalidFieldError(NewInvalidFieldError("approved", "must be true, false or unset")))
	assert.True(t, IsInvalidJSONError(NewInvalidJSONError(errors.New("eof"))))
}
