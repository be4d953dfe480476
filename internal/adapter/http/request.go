package httpadapter

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"ideaproof/internal/core/content"
	"ideaproof/internal/core/domain"
	"ideaproof/internal/core/port"
)

type createCampaignBody struct {
	UserID      string            `json:"user_id"`
	AccountID   string            `json:"account_id"`
	Idea        string            `json:"idea"`
	Customer    string            `json:"customer"`
	Problem     string            `json:"problem"`
	Label       string            `json:"label"`
	Locale      string            `json:"locale,omitempty"`
	Targeting   *domain.Targeting `json:"targeting,omitempty"`
	Assessment  string            `json:"assessment"`
	StrictScore bool              `json:"strict_score,omitempty"`
}

// handleCreateCampaign creates a paused validation campaign. The gate is
// evaluated on the assessment text carried by the body, never on a
// client-supplied score. On success it returns HTTP 201 with the campaign.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	mode, err := pathMode(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var body createCampaignBody
	if err = decodeBody(r, "create_campaign", &body); err != nil {
		h.fail(w, r, err)
		return
	}
	userID := strings.TrimSpace(body.UserID)
	if userID == "" {
		h.fail(w, r, domain.NewValidationError("create_campaign", "user id is required"))
		return
	}

	campaign, err := h.svc.Campaigns.CreateCampaign(r.Context(), port.CreateCampaignReq{
		Caller:    port.Caller{UserID: userID, Mode: mode},
		AccountID: strings.TrimSpace(body.AccountID),
		Content: content.Input{
			Idea:      body.Idea,
			Customer:  body.Customer,
			Problem:   body.Problem,
			Label:     body.Label,
			Locale:    body.Locale,
			Targeting: body.Targeting,
		},
		Assessment:  body.Assessment,
		StrictScore: body.StrictScore,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, campaign)
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	caller, err := pathCaller(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	campaigns, err := h.svc.Campaigns.ListCampaigns(r.Context(), caller, chi.URLParam(r, "accountID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, campaigns)
}

func (h *Handler) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	caller, err := pathCaller(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	accounts, err := h.svc.Campaigns.ListAccounts(r.Context(), caller)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, accounts)
}
