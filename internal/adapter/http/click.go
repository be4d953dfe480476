package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ideaproof/internal/core/domain"
)

type statusBody struct {
	Status string `json:"status"`
}

// handleUpdateStatus toggles a campaign between ENABLED and PAUSED. Sending
// the current status again succeeds without a platform mutation.
func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	caller, err := pathCaller(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var body statusBody
	if err = decodeBody(r, "update_status", &body); err != nil {
		h.fail(w, r, err)
		return
	}
	status, ok := domain.ParseCampaignStatus(body.Status)
	if !ok {
		h.fail(w, r, domain.NewValidationError("update_status", "unknown campaign status "+body.Status))
		return
	}

	campaign, err := h.svc.Campaigns.UpdateStatus(r.Context(), caller,
		chi.URLParam(r, "accountID"), chi.URLParam(r, "campaignID"), status)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, campaign)
}
