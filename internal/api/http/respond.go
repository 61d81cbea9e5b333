package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"frota-backend/internal/domain"
	"frota-backend/internal/logger"
	"frota-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`

	// Set for occupied-position conflicts so the client can tell the
	// operator which tire must be dismounted first.
	OccupantTireID     string `json:"occupant_tire_id,omitempty"`
	OccupantFireNumber string `json:"occupant_fire_number,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// writeError maps business errors onto HTTP statuses. Anything unmapped is
// a 500 with a generic body; the real error goes to the log only.
func writeError(w http.ResponseWriter, err error) {
	var validation *domain.ValidationError
	var occupied *domain.PositionOccupiedError

	switch {
	case errors.As(err, &validation):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: validation.Reason,
			Field: validation.Field,
		})
	case errors.As(err, &occupied):
		writeJSON(w, http.StatusConflict, errorResponse{
			Error:              occupied.Error(),
			OccupantTireID:     occupied.OccupantTireID,
			OccupantFireNumber: occupied.OccupantFireNumber,
		})
	case errors.Is(err, domain.ErrTireScrapped):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	default:
		logger.Error("Request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.NewValidationError("", "malformed request body")
	}
	return nil
}
