package core

import (
	"encoding/json"
	"errors"
	"net/http"
)

// JSONResponse is the standard JSON envelope for API responses.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail contains machine-readable error information.
type ErrorDetail struct {
	Code    int    `json:"code"`
	Key     string `json:"key"`
	Message string `json:"message,omitempty"`
}

// WriteJSON writes v wrapped in the standard envelope with the given status.
// Encoding errors are unrecoverable at this point (headers already sent),
// so they are ignored.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(JSONResponse{Data: v})
}

// WriteError writes an error as a minimal machine-readable JSON body.
// HTTPError values map to their own status code and key; anything else
// is masked as an internal server error so internals never leak to clients.
func WriteError(w http.ResponseWriter, err error) {
	httpErr := ErrInternalServerError

	var he HTTPError
	if errors.As(err, &he) {
		httpErr = he
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(httpErr.Code)
	_ = json.NewEncoder(w).Encode(JSONResponse{Error: &ErrorDetail{
		Code:    httpErr.Code,
		Key:     httpErr.Key,
		Message: http.StatusText(httpErr.Code),
	}})
}
