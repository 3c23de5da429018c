package api

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/MrAnandSharan/spacex-launch-tracker/pkg/client"
)

type errorBody struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	// Encoding failures past this point cannot change the response.
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorBody{Error: message})
}

// respondServiceError maps a service failure to a response without leaking
// internals. Upstream fetch failures are a bad gateway; everything else is
// an internal error.
func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		h.logger.Warn().
			Err(err).
			Str("path", r.URL.Path).
			Str("error_class", string(apiErr.Class)).
			Msg("Upstream fetch failed")
		respondError(w, http.StatusBadGateway, "upstream API unavailable")
		return
	}

	h.logger.Error().Err(err).Str("path", r.URL.Path).Msg("Request failed")
	respondError(w, http.StatusInternalServerError, "internal error")
}
