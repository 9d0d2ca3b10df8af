package handler

import (
	"encoding/json"
	"net/http"
)

// respondJSON marshals payload and writes it with the given status. A
// marshal failure degrades to a bare 500 since there is nothing sensible
// left to send.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// respondError writes a single-message error envelope. The message is
// always client-safe wording, never an internal error string.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondFieldErrors writes a 422 with the per-field validation messages.
func respondFieldErrors(w http.ResponseWriter, errs map[string]string) {
	respondJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": errs})
}
