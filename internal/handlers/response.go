package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/nailstudio-booking/internal/apperr"
	"github.com/sbilibin2017/nailstudio-booking/internal/logger"
)

// ErrorResponse represents a failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Always false
	// default: false
	Success bool `json:"success"`

	// Error message
	// default: method not allowed
	Message string `json:"message"`
}

// writeJSON writes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Success: false, Message: msg})
}

// NewMethodNotAllowedHandler answers 405 with a JSON body.
func NewMethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, apperr.ErrMethodNotAllowed.Error())
	}
}
