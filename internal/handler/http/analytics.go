package http

import (
	"net/http"

	"github.com/MKhiriev/go-waste-tracker/internal/packaging"
)

func (h *Handler) getSummaries(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.getSummaries", err)
		return
	}

	timeRange, err := packaging.ParseTimeRange(r.URL.Query().Get("range"))
	if err != nil {
		writeError(w, r, "*Handler.getSummaries", err)
		return
	}

	today, err := h.today(r)
	if err != nil {
		writeError(w, r, "*Handler.getSummaries", err)
		return
	}

	summaries, err := h.services.AnalyticsService.Summaries(r.Context(), userID, timeRange, today)
	if err != nil {
		writeError(w, r, "*Handler.getSummaries", err)
		return
	}

	h.writeJSON(w, r, summaries, http.StatusOK)
}

func (h *Handler) getScoreboard(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.getScoreboard", err)
		return
	}

	board, err := h.services.AnalyticsService.Scoreboard(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.getScoreboard", err)
		return
	}

	h.writeJSON(w, r, board, http.StatusOK)
}

func (h *Handler) getInsights(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.getInsights", err)
		return
	}

	today, err := h.today(r)
	if err != nil {
		writeError(w, r, "*Handler.getInsights", err)
		return
	}

	insights, err := h.services.AnalyticsService.Insights(r.Context(), userID, today)
	if err != nil {
		writeError(w, r, "*Handler.getInsights", err)
		return
	}

	h.writeJSON(w, r, insights, http.StatusOK)
}

func (h *Handler) suggestAlternatives(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.suggestAlternatives", err)
		return
	}

	alternatives, err := h.services.AlternativesService.Suggest(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.suggestAlternatives", err)
		return
	}

	h.writeJSON(w, r, alternatives, http.StatusOK)
}

// today returns the "today" query parameter, or the current UTC date when
// the client does not send one.
func (h *Handler) today(r *http.Request) (string, error) {
	today := r.URL.Query().Get("today")
	if today == "" {
		return packaging.Today(h.now()), nil
	}
	if err := packaging.ValidateDate(today); err != nil {
		return "", err
	}
	return today, nil
}
