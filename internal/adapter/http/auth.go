package httpadapter

import (
	"net/http"
	"net/url"
	"strings"

	"ideaproof/internal/core/domain"
)

type authCallbackBody struct {
	State string `json:"state"`
	Code  string `json:"code"`
}

type authenticatedResponse struct {
	Authenticated bool `json:"authenticated"`
}

// handleAuthURL starts authentication. Demo mode answers with
// authenticated=true straight away; live mode returns the consent URL and
// the state the client later waits on.
func (h *Handler) handleAuthURL(w http.ResponseWriter, r *http.Request) {
	mode, err := pathMode(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	view, err := h.svc.Auth.Begin(r.Context(), strings.TrimSpace(r.URL.Query().Get("user_id")), mode)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, view)
}

// handleAuthCallback completes a pending attempt with the code relayed by
// the client.
func (h *Handler) handleAuthCallback(w http.ResponseWriter, r *http.Request) {
	mode, err := pathMode(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var body authCallbackBody
	if err = decodeBody(r, "auth_callback", &body); err != nil {
		h.fail(w, r, err)
		return
	}
	if err = h.svc.Auth.Complete(r.Context(), mode, body.State, body.Code); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, authenticatedResponse{Authenticated: true})
}

// handleAuthRedirect is the target of the platform's consent redirect. A
// denied consent cancels the attempt. With a return URL configured the
// browser is sent back to the frontend with the outcome in the query.
func (h *Handler) handleAuthRedirect(w http.ResponseWriter, r *http.Request) {
	mode, err := pathMode(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	q := r.URL.Query()
	state := q.Get("state")
	if denied := q.Get("error"); denied != "" {
		if state != "" {
			_ = h.svc.Auth.Cancel(state)
		}
		err = domain.NewAuthCancelled("auth_callback")
	} else {
		err = h.svc.Auth.Complete(r.Context(), mode, state, q.Get("code"))
	}

	if h.svc.AuthReturnURL == "" {
		if err != nil {
			h.fail(w, r, err)
			return
		}
		writeJSON(w, h.logger, http.StatusOK, authenticatedResponse{Authenticated: true})
		return
	}

	target, perr := url.Parse(h.svc.AuthReturnURL)
	if perr != nil {
		h.fail(w, r, domain.NewConfigurationError("auth_callback", "invalid return url"))
		return
	}
	params := target.Query()
	params.Set("mode", string(mode))
	if err != nil {
		params.Set("auth", "failed")
		params.Set("kind", string(domain.KindOf(err)))
	} else {
		params.Set("auth", "ok")
	}
	target.RawQuery = params.Encode()
	http.Redirect(w, r, target.String(), http.StatusFound)
}

type authStateBody struct {
	State string `json:"state"`
}

func (h *Handler) handleAuthCancel(w http.ResponseWriter, r *http.Request) {
	if _, err := pathMode(r); err != nil {
		h.fail(w, r, err)
		return
	}
	var body authStateBody
	if err := decodeBody(r, "auth_cancel", &body); err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.svc.Auth.Cancel(body.State); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleAuthWait blocks until the attempt named by `state` resolves or the
// client goes away.
func (h *Handler) handleAuthWait(w http.ResponseWriter, r *http.Request) {
	if _, err := pathMode(r); err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.svc.Auth.Wait(r.Context(), r.URL.Query().Get("state")); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, authenticatedResponse{Authenticated: true})
}
