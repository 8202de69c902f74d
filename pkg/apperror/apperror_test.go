package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NewNotFound("skill", "999"), http.StatusNotFound},
		{"invalid input", NewInvalidInput("bad", nil), http.StatusBadRequest},
		{"conflict", NewConflict("skill", "name", "Go"), http.StatusConflict},
		{"method", NewMethodNotAllowed("getSkills is a query"), http.StatusMethodNotAllowed},
		{"write failure", NewWriteFailure("insert skill", errors.New("connection reset")), http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("update skill failed: %w", NewNotFound("skill", "1")), http.StatusNotFound},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ToHTTPStatus(tc.err))
		})
	}
}

func TestNotFoundNamesIdentifier(t *testing.T) {
	err := NewNotFound("project", "999999")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "999999")
	assert.Equal(t, "project with id '999999' was not found", err.ToJSON()["details"])
}

func TestWriteFailureKeepsCause(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	err := NewWriteFailure("failed to insert skill", cause)

	assert.ErrorIs(t, err, ErrWriteFailure)
	assert.Equal(t, cause, err.Cause())
	assert.Contains(t, err.Error(), cause.Error())
	assert.NotContains(t, err.ToJSON(), "details")
}
