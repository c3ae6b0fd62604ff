package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"budgetbuddy/internal/core"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// writeServiceError maps a service error onto the API taxonomy:
// validation failures are 422, a missing entity is 404, and anything
// else is a storage write failure surfaced as a generic 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case isValidationError(err):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "failed to save, try again")
	}
}

func isValidationError(err error) bool {
	for _, sentinel := range []error{
		core.ErrInvalidAmount,
		core.ErrEmptyLabel,
		core.ErrEmptyDescription,
		core.ErrEmptyName,
		core.ErrMissingCategory,
		core.ErrInvalidDate,
		core.ErrInvalidFrequency,
		core.ErrNegativeLimit,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
