package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"

	"ideaproof/internal/adapter/demo"
	"ideaproof/internal/adapter/memory"
	"ideaproof/internal/adapter/usecase"
	"ideaproof/internal/core/content"
	"ideaproof/internal/core/domain"
	"ideaproof/internal/core/port"
	"ideaproof/internal/core/port/mocks"
	"ideaproof/internal/metrics"
	"ideaproof/internal/realtime"
)

type testServer struct {
	srv   *httptest.Server
	relay *usecase.MetricsRelay
	hub   *realtime.Hub
}

// newTestServer wires the real services on the demo backend. Extra
// backends, such as a mocked live backend, are registered next to it.
func newTestServer(t *testing.T, returnURL string, extra ...port.AdBackend) *testServer {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	sessions := memory.NewSessionStore()
	backends := append([]port.AdBackend{demo.New()}, extra...)
	router := usecase.NewModeRouter(sessions, logger, backends...)
	auth := usecase.NewAuthenticator(router, time.Minute, logger)

	var hub *realtime.Hub
	relay := usecase.NewMetricsRelay(router, sessions, publisherFunc(func(ctx context.Context, u domain.CampaignUpdate) error {
		return hub.Publish(ctx, u)
	}), nil, 20*time.Millisecond, logger)
	hub = realtime.NewHub(0, realtime.Hooks{OnRoomOpen: relay.Ensure, OnRoomClose: relay.Release}, logger)

	router.OnTeardown(auth.CancelUser)
	router.OnTeardown(relay.ReleaseUser)
	router.OnTeardown(hub.UnsubscribeUser)

	registry := prometheus.NewRegistry()
	metrics.MustRegister(registry)

	h := NewHandler(Services{
		Campaigns:     usecase.NewCampaignService(router, sessions, content.NewGenerator(0), nil, "https://example.test/landing", logger),
		Auth:          auth,
		Sessions:      usecase.NewSessionService(router, logger),
		Drafts:        content.NewGenerator(0),
		Realtime:      hub,
		Gatherer:      registry,
		AuthReturnURL: returnURL,
	}, logger)

	srv := httptest.NewServer(h.Router())
	t.Cleanup(func() {
		srv.Close()
		hub.Close()
		relay.Close()
	})
	return &testServer{srv: srv, relay: relay, hub: hub}
}

type publisherFunc func(ctx context.Context, u domain.CampaignUpdate) error

func (f publisherFunc) Publish(ctx context.Context, u domain.CampaignUpdate) error { return f(ctx, u) }

func (s *testServer) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, s.srv.URL+path, r)
	require.NoError(t, err)
	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }}
	resp, err := client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func (s *testServer) loginDemo(t *testing.T, userID string) string {
	t.Helper()
	resp := s.do(t, http.MethodGet, "/api/v1/demo/auth-url?user_id="+userID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	view := decodeJSON[port.AuthAttemptView](t, resp)
	require.True(t, view.Authenticated)
	return demo.AccountID(userID)
}

func (s *testServer) createCampaign(t *testing.T, userID, accountID string) domain.Campaign {
	t.Helper()
	resp := s.do(t, http.MethodPost, "/api/v1/demo/campaigns", map[string]string{
		"user_id":    userID,
		"account_id": accountID,
		"idea":       "TimeTracker",
		"customer":   "Freelancers",
		"problem":    "lost billable hours",
		"label":      "Q3",
		"assessment": "Startup Score: 72/100",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeJSON[domain.Campaign](t, resp)
}

func TestAssess(t *testing.T) {
	s := newTestServer(t, "")

	resp := s.do(t, http.MethodPost, "/api/v1/validation/assess", map[string]string{"assessment": "Startup Score: 72/100"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeJSON[map[string]any](t, resp)
	assert.Equal(t, "READY", got["tier"])
	assert.Equal(t, true, got["can_validate"])

	resp = s.do(t, http.MethodPost, "/api/v1/validation/assess", map[string]string{"assessment": "no number here"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got = decodeJSON[map[string]any](t, resp)
	assert.Equal(t, "BLOCKED", got["tier"])
	assert.Equal(t, false, got["can_validate"])

	text := "Top 90 ideas.\nNo overall rating."
	resp = s.do(t, http.MethodPost, "/api/v1/validation/assess", map[string]any{"assessment": text})
	got = decodeJSON[map[string]any](t, resp)
	assert.Equal(t, "READY", got["tier"])

	resp = s.do(t, http.MethodPost, "/api/v1/validation/assess", map[string]any{"assessment": text, "strict_score": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got = decodeJSON[map[string]any](t, resp)
	assert.Equal(t, "BLOCKED", got["tier"])
	assert.Equal(t, false, got["known"])
}

func TestDraft(t *testing.T) {
	s := newTestServer(t, "")

	resp := s.do(t, http.MethodPost, "/api/v1/validation/draft", map[string]string{
		"idea": "TimeTracker", "customer": "Freelancers", "problem": "lost billable hours", "label": "Q3",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	draft := decodeJSON[domain.CampaignDraft](t, resp)
	assert.Equal(t, "TimeTracker - Validation Q3", draft.Name)
	assert.NotEmpty(t, draft.Keywords)

	resp = s.do(t, http.MethodPost, "/api/v1/validation/draft", map[string]string{"customer": "Freelancers"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	env := decodeJSON[errorResponse](t, resp)
	assert.Equal(t, domain.KindValidation, env.Kind)
}

func TestDemoCampaignLifecycle(t *testing.T) {
	s := newTestServer(t, "")
	accountID := s.loginDemo(t, "u1")

	resp := s.do(t, http.MethodGet, "/api/v1/demo/accounts/u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	accounts := decodeJSON[[]domain.Account](t, resp)
	require.Len(t, accounts, 1)
	assert.Equal(t, accountID, accounts[0].ID)

	created := s.createCampaign(t, "u1", accountID)
	assert.Equal(t, domain.StatusPaused, created.Status)
	assert.Equal(t, "TimeTracker - Validation Q3", created.Name)

	resp = s.do(t, http.MethodGet, "/api/v1/demo/campaigns/u1/"+accountID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeJSON[[]domain.Campaign](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	base := "/api/v1/demo/campaigns/u1/" + accountID + "/" + created.ID
	resp = s.do(t, http.MethodPatch, base, map[string]string{"status": "enabled"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, domain.StatusEnabled, decodeJSON[domain.Campaign](t, resp).Status)

	resp = s.do(t, http.MethodPatch, base, map[string]string{"status": "ARCHIVED"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = s.do(t, http.MethodGet, base+"/insights", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	insights := decodeJSON[domain.Insights](t, resp)
	assert.Equal(t, domain.RangeLast7Days, insights.Range)
	assert.Len(t, insights.Daily, 7)

	resp = s.do(t, http.MethodGet, base+"/insights?range=LAST_YEAR", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = s.do(t, http.MethodGet, base+"/history?limit=5", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeJSON[[]domain.MetricsSnapshot](t, resp))

	resp = s.do(t, http.MethodGet, base+"/history?limit=-1", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateCampaignBlockedByGate(t *testing.T) {
	s := newTestServer(t, "")
	accountID := s.loginDemo(t, "u1")

	resp := s.do(t, http.MethodPost, "/api/v1/demo/campaigns", map[string]string{
		"user_id":    "u1",
		"account_id": accountID,
		"idea":       "TimeTracker",
		"customer":   "Freelancers",
		"problem":    "lost billable hours",
		"assessment": "Gesamtbewertung: 12 von 100",
	})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	env := decodeJSON[errorResponse](t, resp)
	assert.Equal(t, domain.KindGateBlocked, env.Kind)
	assert.NotEmpty(t, env.Guidance)
}

func TestErrorStatusMapping(t *testing.T) {
	s := newTestServer(t, "")

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		kind   domain.Kind
	}{
		{"unknown mode", http.MethodGet, "/api/v1/sandbox/accounts/u1", nil, http.StatusConflict, domain.KindConfiguration},
		{"no session", http.MethodGet, "/api/v1/demo/accounts/nobody", nil, http.StatusUnauthorized, domain.KindNotAuthenticated},
		{"unavailable mode", http.MethodPost, "/api/v1/session/mode", map[string]string{"user_id": "u1", "mode": "live"}, http.StatusConflict, domain.KindConfiguration},
		{"bad json", http.MethodPost, "/api/v1/validation/assess", "{", http.StatusBadRequest, domain.KindValidation},
		{"unknown auth state", http.MethodGet, "/api/v1/demo/auth-wait?state=nope", nil, http.StatusBadRequest, domain.KindValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := s.do(t, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.kind, decodeJSON[errorResponse](t, resp).Kind)
		})
	}
}

func TestLogoutEndsSession(t *testing.T) {
	s := newTestServer(t, "")
	s.loginDemo(t, "u1")

	resp := s.do(t, http.MethodPost, "/api/v1/session/logout", map[string]string{"user_id": "u1"})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/v1/demo/accounts/u1", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLiveConsentRedirect(t *testing.T) {
	live := mocks.NewMockAdBackend(t)
	live.EXPECT().Mode().Return(domain.ModeLive)
	live.EXPECT().BeginAuth(mock.Anything, "u1", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, state string) (port.AuthStart, error) {
			return port.AuthStart{URL: "https://consent.example/?state=" + state}, nil
		})
	live.EXPECT().ExchangeCode(mock.Anything, "good-code").
		Return(domain.Credentials{Subject: "live-subject"}, nil)

	s := newTestServer(t, "https://app.example/dashboard", live)

	resp := s.do(t, http.MethodGet, "/api/v1/live/auth-url?user_id=u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	view := decodeJSON[port.AuthAttemptView](t, resp)
	require.NotEmpty(t, view.State)
	assert.Contains(t, view.AuthURL, view.State)

	resp = s.do(t, http.MethodGet, "/api/v1/live/auth-callback?state="+view.State+"&code=good-code", nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	loc, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "ok", loc.Query().Get("auth"))
	assert.Equal(t, "live", loc.Query().Get("mode"))

	resp = s.do(t, http.MethodGet, "/api/v1/live/auth-wait?state="+view.State, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// a repeated callback is stale
	resp = s.do(t, http.MethodGet, "/api/v1/live/auth-callback?state="+view.State+"&code=good-code", nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	loc, err = url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "failed", loc.Query().Get("auth"))
	assert.Equal(t, string(domain.KindAuthCancelled), loc.Query().Get("kind"))
}

func TestLiveConsentDenied(t *testing.T) {
	live := mocks.NewMockAdBackend(t)
	live.EXPECT().Mode().Return(domain.ModeLive)
	live.EXPECT().BeginAuth(mock.Anything, "u1", mock.Anything).Return(port.AuthStart{URL: "https://consent.example/"}, nil)

	s := newTestServer(t, "", live)

	resp := s.do(t, http.MethodGet, "/api/v1/live/auth-url?user_id=u1", nil)
	view := decodeJSON[port.AuthAttemptView](t, resp)

	resp = s.do(t, http.MethodGet, "/api/v1/live/auth-callback?state="+view.State+"&error=access_denied", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/v1/live/auth-wait?state="+view.State, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, domain.KindAuthCancelled, decodeJSON[errorResponse](t, resp).Kind)
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t, "")

	resp := s.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	s.do(t, http.MethodPost, "/api/v1/validation/assess", map[string]string{"assessment": "Score: 40"})
	resp = s.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "gate_decisions_total")
}

func dialWS(t *testing.T, s *testServer, path string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(s.srv.URL, "http") + path
	conn, err := websocket.Dial(wsURL, "", s.srv.URL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func sendFrame(t *testing.T, conn *websocket.Conn, frameType, accountID string) {
	t.Helper()
	raw, err := json.Marshal(realtime.AccountPayload{AccountID: accountID})
	require.NoError(t, err)
	require.NoError(t, websocket.JSON.Send(conn, realtime.Frame{Type: frameType, Payload: raw}))
}

func readFrame(t *testing.T, conn *websocket.Conn) realtime.Frame {
	t.Helper()
	require.NoError(t, conn.SetDeadline(time.Now().Add(2*time.Second)))
	var f realtime.Frame
	require.NoError(t, websocket.JSON.Receive(conn, &f))
	return f
}

func TestWebsocketPushesCampaignUpdates(t *testing.T) {
	s := newTestServer(t, "")
	accountID := s.loginDemo(t, "u1")
	created := s.createCampaign(t, "u1", accountID)

	conn := dialWS(t, s, "/api/v1/demo/ws?user_id=u1")
	sendFrame(t, conn, realtime.FrameJoin, accountID)

	var (
		joined bool
		update domain.CampaignUpdate
	)
	for i := 0; i < 5 && (!joined || update.CampaignID == ""); i++ {
		f := readFrame(t, conn)
		switch f.Type {
		case realtime.FrameJoined:
			joined = true
		case realtime.FrameCampaignUpdate:
			require.NoError(t, json.Unmarshal(f.Payload, &update))
		}
	}
	assert.True(t, joined)
	assert.Equal(t, created.ID, update.CampaignID)
	assert.Equal(t, accountID, update.AccountID)
	assert.True(t, s.relay.Active(accountID))

	sendFrame(t, conn, realtime.FrameLeave, accountID)
	for i := 0; i < 5; i++ {
		if readFrame(t, conn).Type == realtime.FrameLeft {
			break
		}
	}
	assert.Eventually(t, func() bool { return !s.relay.Active(accountID) }, time.Second, 10*time.Millisecond)
}

func TestWebsocketRejectsForeignAccount(t *testing.T) {
	s := newTestServer(t, "")
	s.loginDemo(t, "u1")

	conn := dialWS(t, s, "/api/v1/demo/ws?user_id=u1")
	sendFrame(t, conn, realtime.FrameJoin, demo.AccountID("someone-else"))

	f := readFrame(t, conn)
	require.Equal(t, realtime.FrameError, f.Type)
	var e realtime.ErrorPayload
	require.NoError(t, json.Unmarshal(f.Payload, &e))
	assert.Equal(t, domain.KindValidation, e.Kind)
	assert.Zero(t, s.hub.Subscribers(demo.AccountID("someone-else")))
}
