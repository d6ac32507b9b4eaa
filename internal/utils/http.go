package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// WriteJSON marshals data and writes it with the given status code and
// "Content-Type: application/json". It returns the number of body bytes
// written.
//
// If marshaling fails nothing but a plain 500 is written and the wrapped
// error is returned.
//
//	WriteJSON(w, endpointsResponse{...}, http.StatusOK)
//	WriteJSON(w, errorResponse{Error: "route not found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteBytes writes a raw body such as a generated PNG or styled text with an
// explicit content type and Content-Length.
func WriteBytes(w http.ResponseWriter, contentType string, data []byte, statusCode int) (int, error) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(statusCode)

	return w.Write(data)
}
