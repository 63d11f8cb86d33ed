package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rpupo63/emp-classrooms-backend/errs"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponder_WriteError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		status    int
		field     string
		wantCause string
	}{
		{"unexpected error", errors.New("disk on fire"), http.StatusInternalServerError, "", "Internal Server Error -> disk on fire"},
		{"invalid field", errs.NewInvalidFieldError("approved", "must be true, false or unset"), http.StatusBadRequest, "approved", ""},
		{"not found", errs.NewNotFoundError("project not found"), http.StatusNotFound, "", ""},
	}

	responder := NewResponder(zerolog.Nop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			responder.WriteError(rec, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "error", body.Status)
			assert.Equal(t, tt.field, body.Field)
			assert.Equal(t, tt.wantCause, body.Cause)
		})
	}
}
