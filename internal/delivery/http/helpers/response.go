package helpers

import (
	"encoding/json"
	"net/http"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeBadRequest    = "bad_request"
	ErrCodeNotFound      = "not_found"
	ErrCodeInternalError = "internal_error"
)

// APIError is the body of every non-2xx response.
// swagger:model APIError
type APIError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// DeleteResponse is the body returned by a successful DELETE.
type DeleteResponse struct {
	Success bool `json:"success"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes data as the bare response body.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteJSONError sets Content-Type to application/json, writes statusCode, and
// encodes an APIError with the given code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	WriteJSON(w, statusCode, APIError{Error: message, Code: code})
}
