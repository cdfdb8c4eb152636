package common

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name   string
		method string
		err    error
		want   int
	}{
		{"validation", http.MethodPost, NewValidationError("bad"), http.StatusBadRequest},
		{"referential integrity", http.MethodPost, NewReferentialIntegrityError("user does not exist"), http.StatusBadRequest},
		{"conflict", http.MethodPut, NewConflictError("taken"), http.StatusBadRequest},
		{"unauthorized", http.MethodPost, NewUnauthorizedError("nope"), http.StatusUnauthorized},
		{"not found on read", http.MethodGet, NewNotFoundError("comment", 1), http.StatusNotFound},
		{"not found on update", http.MethodPut, NewNotFoundError("comment", 1), http.StatusBadRequest},
		{"not found on delete", http.MethodDelete, NewNotFoundError("comment", 1), http.StatusBadRequest},
		{"plain error", http.MethodGet, errors.New("boom"), http.StatusInternalServerError},
		{"wrapped internal", http.MethodGet, NewInternalError(errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.method, tt.err))
		})
	}
}

func TestRespondError_HidesInternalCause(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/x", nil)

	RespondError(w, r, errors.New("dial tcp: connection refused"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body.Error)
	assert.Equal(t, string(KindInternal), body.Code)
}

func TestRespondList(t *testing.T) {
	w := httptest.NewRecorder()
	RespondList(w, []string{})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = httptest.NewRecorder()
	var nilSlice []int
	RespondList(w, nilSlice)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	RespondList(w, []string{"a"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["a"]`, w.Body.String())
}

func TestParseID(t *testing.T) {
	tests := []struct {
		raw     string
		want    uint64
		wantErr bool
	}{
		{"12", 12, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": tt.raw})
			id, err := ParseID(r, "id")
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, KindValidation, KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

type sampleRequest struct {
	Name   string `json:"name" validate:"required,max=5"`
	UserID uint64 `json:"user_id" validate:"gt=0"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		errContains string
	}{
		{"valid", `{"name":"abc","user_id":1}`, ""},
		{"malformed", `{"name":`, "invalid JSON body"},
		{"missing name", `{"user_id":1}`, "name is required"},
		{"too long", `{"name":"abcdefg","user_id":1}`, "name must be at most 5 characters"},
		{"zero user", `{"name":"a","user_id":0}`, "user_id must be greater than 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst sampleRequest
			err := DecodeJSON(r, &dst)
			if tt.errContains == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
			assert.Equal(t, KindValidation, KindOf(err))
		})
	}
}
