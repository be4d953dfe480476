package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ideaproof/internal/core/content"
	"ideaproof/internal/core/domain"
	"ideaproof/internal/core/port"
	"ideaproof/internal/realtime"
)

// DraftGenerator builds a campaign draft without touching any backend.
type DraftGenerator interface {
	Generate(in content.Input) (domain.CampaignDraft, error)
}

// Subscriber is the part of the realtime hub used by the websocket
// endpoint.
type Subscriber interface {
	Subscribe(subscriberID, userID, accountID string, handler realtime.Handler) error
	Unsubscribe(subscriberID, accountID string)
	UnsubscribeAll(subscriberID string)
}

// Services groups the inbound ports served over HTTP. Gatherer may be nil,
// in which case /metrics is not mounted. AuthReturnURL is where the browser
// lands after the consent redirect; empty answers with JSON instead.
type Services struct {
	Campaigns     port.CampaignUseCase
	Auth          port.AuthUseCase
	Sessions      port.SessionUseCase
	Drafts        DraftGenerator
	Realtime      Subscriber
	Gatherer      prometheus.Gatherer
	AuthReturnURL string
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// Routes are registered on a chi.Router; mode-scoped routes share the
// {mode} prefix so the caller's mode can be checked against the session.
type Handler struct {
	svc    Services
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc Services, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger.With(slog.String("component", "http"))}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	if svc.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(svc.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/validation/assess", h.handleAssess)
		r.Post("/validation/draft", h.handleDraft)

		r.Post("/session/mode", h.handleSwitchMode)
		r.Post("/session/logout", h.handleLogout)

		r.Route("/{mode}", func(r chi.Router) {
			r.Get("/auth-url", h.handleAuthURL)
			r.Get("/auth-callback", h.handleAuthRedirect)
			r.Post("/auth-callback", h.handleAuthCallback)
			r.Post("/auth-cancel", h.handleAuthCancel)
			r.Get("/auth-wait", h.handleAuthWait)

			r.Get("/accounts/{userID}", h.handleListAccounts)

			r.Post("/campaigns", h.handleCreateCampaign)
			r.Get("/campaigns/{userID}/{accountID}", h.handleListCampaigns)
			r.Patch("/campaigns/{userID}/{accountID}/{campaignID}", h.handleUpdateStatus)
			r.Get("/campaigns/{userID}/{accountID}/{campaignID}/insights", h.handleInsights)
			r.Get("/campaigns/{userID}/{accountID}/{campaignID}/history", h.handleHistory)

			r.Get("/ws", h.handleWS)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
