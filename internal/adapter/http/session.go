package httpadapter

import (
	"net/http"
	"strings"

	"ideaproof/internal/core/domain"
)

type switchModeBody struct {
	UserID string `json:"user_id"`
	Mode   string `json:"mode"`
}

type sessionResponse struct {
	UserID string      `json:"user_id"`
	Mode   domain.Mode `json:"mode,omitempty"`
}

// handleSwitchMode tears down everything bound to the old mode. The user
// has to authenticate again in the new one.
func (h *Handler) handleSwitchMode(w http.ResponseWriter, r *http.Request) {
	var body switchModeBody
	if err := decodeBody(r, "switch_mode", &body); err != nil {
		h.fail(w, r, err)
		return
	}
	mode, ok := domain.ParseMode(body.Mode)
	if !ok {
		h.fail(w, r, domain.NewConfigurationError("switch_mode", "unknown mode "+body.Mode))
		return
	}
	userID := strings.TrimSpace(body.UserID)
	if err := h.svc.Sessions.SwitchMode(r.Context(), userID, mode); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, sessionResponse{UserID: userID, Mode: mode})
}

type logoutBody struct {
	UserID string `json:"user_id"`
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	var body logoutBody
	if err := decodeBody(r, "logout", &body); err != nil {
		h.fail(w, r, err)
		return
	}
	if strings.TrimSpace(body.UserID) == "" {
		h.fail(w, r, domain.NewValidationError("logout", "user id is required"))
		return
	}
	if err := h.svc.Sessions.Logout(r.Context(), strings.TrimSpace(body.UserID)); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
