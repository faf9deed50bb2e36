package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"blogapi/apperr"
)

type ApiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the single error envelope every failure is rendered as.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteAppError funnels any error through apperr.From and renders the
// envelope. Unclassified errors are logged with full detail here and reach
// the client only as a generic 500.
func WriteAppError(w http.ResponseWriter, err error) {
	appErr := apperr.From(err)
	if appErr.Kind == apperr.KindInternal {
		log.Printf("internal error: %v", err)
	}
	writeJSON(w, appErr.Status(), ErrorResponse{
		Success: false,
		Error:   string(appErr.Kind),
		Message: appErr.Message,
		Details: appErr.Details,
	})
}

func MethodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{
		Success: false,
		Error:   "MethodNotAllowed",
		Message: "Invalid request method",
	})
}
