package api

import (
	"fmt"
	"net/http"

	"github.com/MrAnandSharan/spacex-launch-tracker/pkg/launch"
)

// GetLaunches serves the filtered, paginated launch listing.
func (h *Handler) GetLaunches(w http.ResponseWriter, r *http.Request) {
	filter, err := h.parseFilter(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	pageSize, page, err := h.parsePagination(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	views, err := h.service.GetLaunches(r.Context(), filter)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	result, err := launch.Paginate(views, pageSize, page, r.URL.Path, r.URL.Query())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// ExportLaunches streams the filtered launch set as a CSV or JSON
// attachment.
func (h *Handler) ExportLaunches(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	switch format {
	case launch.FormatCSV, launch.FormatJSON:
	default:
		respondError(w, http.StatusBadRequest,
			fmt.Sprintf("format: expected csv or json, got %q", format))
		return
	}

	filter, err := h.parseFilter(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	views, err := h.service.GetLaunches(r.Context(), filter)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	if format == launch.FormatCSV {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	} else {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="launches.%s"`, format))
	w.WriteHeader(http.StatusOK)

	// The status line is already written; a failure here only truncates
	// the attachment.
	if err := launch.Export(w, views, format); err != nil {
		h.logger.Error().Err(err).Str("format", format).Msg("Export write failed")
	}
}

// RocketSuccessRate serves per-rocket launch counts and success rates.
func (h *Handler) RocketSuccessRate(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.RocketSuccessRate(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// LaunchSiteRate serves per-launchpad launch counts.
func (h *Handler) LaunchSiteRate(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.LaunchSiteRate(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// LaunchFrequency serves launch counts bucketed by year and by month.
func (h *Handler) LaunchFrequency(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.LaunchFrequency(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// Health reports process liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
