package httpadapter

import (
	"net/http"

	"ideaproof/internal/core/content"
	"ideaproof/internal/core/validation"
	"ideaproof/internal/metrics"
)

type assessBody struct {
	Assessment string `json:"assessment"`

	// StrictScore ignores numbers that are neither labeled nor out of 100.
	StrictScore bool `json:"strict_score"`
}

// handleAssess extracts the readiness score from an assessment and returns
// the gate decision. It never fails on content: an assessment without a
// score is simply blocked.
func (h *Handler) handleAssess(w http.ResponseWriter, r *http.Request) {
	var body assessBody
	if err := decodeBody(r, "assess", &body); err != nil {
		h.fail(w, r, err)
		return
	}
	decision := validation.AssessWith(body.Assessment, body.StrictScore)
	metrics.GateDecisionsTotal.WithLabelValues(string(decision.Tier)).Inc()
	writeJSON(w, h.logger, http.StatusOK, decision)
}

// handleDraft previews the campaign that create-campaign would submit.
func (h *Handler) handleDraft(w http.ResponseWriter, r *http.Request) {
	var in content.Input
	if err := decodeBody(r, "draft", &in); err != nil {
		h.fail(w, r, err)
		return
	}
	draft, err := h.svc.Drafts.Generate(in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, draft)
}
