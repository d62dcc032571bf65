package handlers

import (
	"encoding/json"
	"net/http"

	"focustube-backend/internal/middleware"
	"focustube-backend/internal/models"
	"focustube-backend/internal/services"
)

// Listing responses carry a status alongside the records so the UI can
// tell a real result from the degrade-gracefully placeholders:
// "ok", "empty" (genuine zero matches) or "degraded" (upstream failed,
// placeholder data substituted).
type listingResponse struct {
	Status    string               `json:"status"`
	ErrorKind services.ErrorKind   `json:"error_kind,omitempty"`
	Results   []models.VideoRecord `json:"results"`
}

func statusFor(outcome services.Outcome) string {
	switch outcome {
	case services.OutcomeEmpty:
		return "empty"
	case services.OutcomeUpstream:
		return "degraded"
	default:
		return "ok"
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get(middleware.RequestIDHeader),
		},
	}
}
