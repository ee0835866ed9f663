package helpers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// maxBodyBytes caps request bodies; a seminar record is a handful of short strings.
const maxBodyBytes = 1 << 20

// DecodeJSON decodes the request body into dest with DisallowUnknownFields.
// On failure it writes a 400 JSON error and returns false; otherwise returns true.
// Callers should return immediately when DecodeJSON returns false.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		msg := err.Error()
		if errors.Is(err, io.EOF) {
			msg = "request body must not be empty"
		}
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, msg)
		return false
	}
	return true
}
