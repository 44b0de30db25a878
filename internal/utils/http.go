package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var (
	// ErrEmptyBody is returned by DecodeJSON when the request carries no body.
	ErrEmptyBody = errors.New("request body is empty")
	// ErrTrailingData is returned by DecodeJSON when the body holds more than
	// one JSON document.
	ErrTrailingData = errors.New("request body must contain a single JSON document")
)

// WriteJSON marshals data and writes it with the given status code and an
// "application/json" content type. When data cannot be marshaled nothing but
// a plain 500 is written and the marshal error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("error encoding response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}

// DecodeJSON decodes exactly one JSON document from r into dst, reading at
// most maxBytes. Unknown fields are rejected.
func DecodeJSON(r io.Reader, dst any, maxBytes int64) error {
	decoder := json.NewDecoder(io.LimitReader(r, maxBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("error decoding JSON body: %w", err)
	}
	if decoder.More() {
		return ErrTrailingData
	}

	return nil
}
