package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON writes data as an application/json body with statusCode and
// returns the number of body bytes written. When data cannot be marshaled a
// plain 500 is sent instead.
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

// ErrorResponse is the JSON body written for failed API requests.
type ErrorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// WriteJSONError writes an [ErrorResponse] with the given message and status.
func WriteJSONError(w http.ResponseWriter, message string, statusCode int) {
	_, _ = WriteJSON(w, ErrorResponse{Message: message, Status: statusCode}, statusCode)
}
