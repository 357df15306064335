package api

import (
	"encoding/json"
	"net/http"

	"github.com/barbosa-jorge/game-deck/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func readJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// writeError maps a service failure to its HTTP status.
func writeError(w http.ResponseWriter, err error) {
	code := service.CodeOf(err)
	status := http.StatusInternalServerError
	switch code {
	case service.CodeInvalidArgument:
		status = http.StatusBadRequest
	case service.CodeNotFound:
		status = http.StatusNotFound
	case service.CodeAlreadyExists, service.CodeNoCardsAvailable:
		status = http.StatusConflict
	}
	writeJSON(w, status, map[string]any{"error": err.Error(), "code": code})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "method not allowed"})
}
