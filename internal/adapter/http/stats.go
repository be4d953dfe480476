package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ideaproof/internal/core/domain"
)

// handleInsights returns the summary and daily series of a campaign. The
// `range` query parameter defaults to LAST_7_DAYS; unknown ranges result in
// HTTP 400.
func (h *Handler) handleInsights(w http.ResponseWriter, r *http.Request) {
	caller, err := pathCaller(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	raw := r.URL.Query().Get("range")
	if raw == "" {
		raw = string(domain.RangeLast7Days)
	}
	dr, err := domain.ParseDateRange(raw)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	insights, err := h.svc.Campaigns.GetInsights(r.Context(), caller,
		chi.URLParam(r, "accountID"), chi.URLParam(r, "campaignID"), dr)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, insights)
}

// handleHistory returns recorded snapshots, newest first. An optional
// `limit` must be a positive integer.
func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	caller, err := pathCaller(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil || limit <= 0 {
			h.fail(w, r, domain.NewValidationError("history", "invalid limit"))
			return
		}
	}

	snapshots, err := h.svc.Campaigns.History(r.Context(), caller,
		chi.URLParam(r, "accountID"), chi.URLParam(r, "campaignID"), limit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, snapshots)
}
