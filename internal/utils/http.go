package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrTrailingData is returned by DecodeJSON when the body holds more than
// one JSON value.
var ErrTrailingData = errors.New("unexpected data after JSON body")

// WriteJSON encodes data and writes it with statusCode. Nothing is written
// but a 500 if data cannot be encoded.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("encode response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return w.Write(payload)
}

// DecodeJSON reads exactly one JSON value from the request body into v.
// Bodies larger than maxBytes fail with *http.MaxBytesError.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any, maxBytes int64) error {
	if r.Body == nil {
		return errors.New("decode request: empty body")
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}
	if dec.More() {
		return fmt.Errorf("decode request: %w", ErrTrailingData)
	}
	return nil
}
