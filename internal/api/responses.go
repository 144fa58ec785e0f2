package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Divyanshgupta04/lern-deployment/internal/generate"
)

type errorBody struct {
	Error string        `json:"error"`
	Kind  generate.Kind `json:"kind,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

// respondError maps a failure to its stable status code and user-safe
// message. Raw provider text never reaches the wire; it was logged where
// the failure was classified.
func respondError(w http.ResponseWriter, err error) {
	nerr := generate.AsError(err)
	respondJSON(w, nerr.Status, errorBody{Error: nerr.Message, Kind: nerr.Kind})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body", Kind: generate.KindInvalidRequest})
		return false
	}
	return true
}
