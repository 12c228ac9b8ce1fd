package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"roomstay-backend/internal/domain"
	"roomstay-backend/internal/logger"
	"roomstay-backend/internal/service"
)

type errorBody struct {
	Kind    domain.ErrorKind `json:"kind"`
	Message string           `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// respondError maps the domain error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is an unexpected failure: the operation is treated as
// not-applied and the caller gets a generic internal error.
func respondError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrInvalidCredentials) {
		respondJSON(w, http.StatusUnauthorized, errorResponse{errorBody{Kind: "UNAUTHORIZED", Message: err.Error()}})
		return
	}

	kind := domain.KindOf(err)
	var status int
	message := err.Error()
	switch kind {
	case domain.KindConflict:
		status = http.StatusConflict
	case domain.KindValidation:
		status = http.StatusBadRequest
	case domain.KindNotFound:
		status = http.StatusNotFound
	default:
		status = http.StatusInternalServerError
		message = "internal error"
		logger.Error("Unexpected error handling request", "error", err)
	}
	respondJSON(w, status, errorResponse{errorBody{Kind: kind, Message: message}})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{errorBody{Kind: domain.KindValidation, Message: "invalid request body"}})
		return false
	}
	return true
}
