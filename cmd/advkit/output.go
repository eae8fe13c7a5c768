package main

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// outputJSON writes a value as formatted JSON.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputHuman writes a human-readable line.
func outputHuman(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}
