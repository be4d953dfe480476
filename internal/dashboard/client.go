// Package dashboard is the client side of the orchestrator: a REST client,
// the realtime channel with its polling fallback and the aggregator that
// folds everything into the view a dashboard renders.
package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"ideaproof/internal/core/domain"
)

// APIClient calls the REST routes of one user in one mode.
type APIClient struct {
	baseURL string
	mode    domain.Mode
	userID  string
	http    *http.Client
}

// NewAPIClient returns a client for baseURL, e.g. http://localhost:8080. A
// nil client selects one with a 30s timeout.
func NewAPIClient(baseURL string, mode domain.Mode, userID string, client *http.Client) *APIClient {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		mode:    mode,
		userID:  userID,
		http:    client,
	}
}

func (c *APIClient) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	var out []domain.Account
	err := c.do(ctx, http.MethodGet, c.path("accounts", c.userID), nil, &out)
	return out, err
}

func (c *APIClient) ListCampaigns(ctx context.Context, accountID string) ([]domain.Campaign, error) {
	var out []domain.Campaign
	err := c.do(ctx, http.MethodGet, c.path("campaigns", c.userID, accountID), nil, &out)
	return out, err
}

// SetStatus toggles a campaign and returns it with the new status.
func (c *APIClient) SetStatus(ctx context.Context, accountID, campaignID string, status domain.CampaignStatus) (domain.Campaign, error) {
	var out domain.Campaign
	body := map[string]string{"status": string(status)}
	err := c.do(ctx, http.MethodPatch, c.path("campaigns", c.userID, accountID, campaignID), body, &out)
	return out, err
}

func (c *APIClient) History(ctx context.Context, accountID, campaignID string, limit int) ([]domain.MetricsSnapshot, error) {
	var out []domain.MetricsSnapshot
	p := c.path("campaigns", c.userID, accountID, campaignID, "history")
	if limit > 0 {
		p += "?limit=" + strconv.Itoa(limit)
	}
	err := c.do(ctx, http.MethodGet, p, nil, &out)
	return out, err
}

func (c *APIClient) Insights(ctx context.Context, accountID, campaignID string, r domain.DateRange) (domain.Insights, error) {
	var out domain.Insights
	p := c.path("campaigns", c.userID, accountID, campaignID, "insights") + "?range=" + url.QueryEscape(string(r))
	err := c.do(ctx, http.MethodGet, p, nil, &out)
	return out, err
}

// WebsocketURL is the push endpoint of the user.
func (c *APIClient) WebsocketURL() string {
	u := c.baseURL + c.path("ws") + "?user_id=" + url.QueryEscape(c.userID)
	switch {
	case strings.HasPrefix(u, "https://"):
		return "wss://" + strings.TrimPrefix(u, "https://")
	case strings.HasPrefix(u, "http://"):
		return "ws://" + strings.TrimPrefix(u, "http://")
	}
	return u
}

// Origin is sent on the websocket handshake.
func (c *APIClient) Origin() string {
	return c.baseURL
}

func (c *APIClient) path(parts ...string) string {
	escaped := make([]string, 0, len(parts)+1)
	escaped = append(escaped, string(c.mode))
	for _, p := range parts {
		escaped = append(escaped, url.PathEscape(p))
	}
	return "/api/v1/" + strings.Join(escaped, "/")
}

type errorEnvelope struct {
	Error    string      `json:"error"`
	Kind     domain.Kind `json:"kind"`
	Guidance string      `json:"guidance"`
}

// do decodes error envelopes back into *domain.Error so callers can match
// the same kinds as on the server.
func (c *APIClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.NewServiceError("dashboard."+strings.ToLower(method), "orchestrator unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var env errorEnvelope
		if err = json.NewDecoder(resp.Body).Decode(&env); err != nil || env.Kind == "" {
			return domain.NewServiceError("dashboard", fmt.Sprintf("unexpected status %d", resp.StatusCode), err)
		}
		return &domain.Error{Kind: env.Kind, Op: "dashboard", Message: env.Error, Guidance: env.Guidance}
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
