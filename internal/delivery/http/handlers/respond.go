package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	rateResponse "github.com/airmailops/tariff-service/internal/delivery/http/dto/rate/response"
	"github.com/airmailops/tariff-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps engine errors onto HTTP statuses: structural validation
// to 400, conflicts to 409 with the full conflicting-record list, missing
// records to 404, referenced-rate deletion to 409.
func writeError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(w, http.StatusBadRequest, rateResponse.ErrorResponse{Error: err.Error()})
		return
	}

	var conflictErr *domain.ConflictError
	if errors.As(err, &conflictErr) {
		writeJSON(w, http.StatusConflict, rateResponse.ErrorResponse{
			Error:     "conflicting tariff rates found",
			Conflicts: rateResponse.FromConflicts(conflictErr.Conflicts),
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrRateNotFound), errors.Is(err, domain.ErrShipmentNotFound):
		writeJSON(w, http.StatusNotFound, rateResponse.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrRateReferenced):
		writeJSON(w, http.StatusConflict, rateResponse.ErrorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, rateResponse.ErrorResponse{Error: err.Error()})
	}
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, rateResponse.ErrorResponse{Error: msg})
}
