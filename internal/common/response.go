package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"

	"github.com/gorilla/mux"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

type ExistsResponse struct {
	Exists bool `json:"exists"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// RespondList writes 204 for an empty slice and 200 with the slice otherwise.
func RespondList(w http.ResponseWriter, list interface{}) {
	v := reflect.ValueOf(list)
	if list == nil || (v.Kind() == reflect.Slice && v.Len() == 0) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	RespondJSON(w, http.StatusOK, list)
}

func RespondCount(w http.ResponseWriter, count int64) {
	RespondJSON(w, http.StatusOK, CountResponse{Count: count})
}

// StatusFor maps an error to its HTTP status. Not-found is 404 on read
// requests and 400 on mutations.
func StatusFor(method string, err error) int {
	switch KindOf(err) {
	case KindValidation, KindReferentialIntegrity, KindConflict:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		if method == http.MethodGet || method == http.MethodHead {
			return http.StatusNotFound
		}
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func RespondError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(r.Method, err)

	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = NewInternalError(err)
	}

	if status == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
	}

	RespondJSON(w, status, ErrorResponse{Error: appErr.Message, Code: string(appErr.Kind)})
}

// ParseID reads a positive numeric route variable.
func ParseID(r *http.Request, name string) (uint64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, NewValidationError(fmt.Sprintf("invalid %s: must be a positive integer", name))
	}
	return uint64(id), nil
}

// DecodeJSON decodes the request body into dst and runs struct validation.
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return NewValidationError("request body is required")
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return NewValidationError("invalid JSON body")
	}
	return ValidateStruct(dst)
}

// DecodeOptionalJSON is DecodeJSON for endpoints whose body may be omitted.
func DecodeOptionalJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil || r.Body == http.NoBody || r.ContentLength == 0 {
		return nil
	}
	return DecodeJSON(r, dst)
}

// HideRequest is the body of PUT .../{id}/hide.
type HideRequest struct {
	Reason string `json:"reason"`
}

// QueryBool reads an optional boolean query parameter.
func QueryBool(r *http.Request, name string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(name))
	return err == nil && v
}
