package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/sahadan/halisaha/internal/fields"
	"github.com/sahadan/halisaha/internal/matches"
	"github.com/sahadan/halisaha/internal/users"
)

// Every response uses the same envelope: {success:true,data} on
// success, {success:false,error} on failure.

func respondOK(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": data})
}

func respondError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"success": false, "error": msg})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

// respondStoreError maps domain sentinel errors onto the envelope.
func respondStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, users.ErrNotFound), errors.Is(err, matches.ErrNotFound), errors.Is(err, fields.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, users.ErrUsernameTaken):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, users.ErrInvalidCredentials):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, matches.ErrAlreadyScored):
		respondError(w, http.StatusConflict, err.Error())
	default:
		log.Error("Unexpected store error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
