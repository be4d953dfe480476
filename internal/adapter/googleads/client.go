package googleads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/oauth2"

	"ideaproof/internal/core/domain"
)

const maxErrorBody = 64 << 10

// apiError is the error envelope of the REST interface.
type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// flexInt accepts int64 values encoded either as JSON numbers or, as the
// REST interface does for 64-bit fields, as strings.
type flexInt int64

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("parse int64 %q: %w", s, err)
	}
	*f = flexInt(v)
	return nil
}

// httpClient returns an authorized client for creds. The token source
// refreshes expired access tokens with the stored refresh token.
func (b *Backend) httpClient(ctx context.Context, creds domain.Credentials) (*http.Client, error) {
	if len(creds.Token) == 0 {
		return nil, domain.NewNotAuthenticated("googleads")
	}
	var tok oauth2.Token
	if err := json.Unmarshal(creds.Token, &tok); err != nil {
		return nil, domain.NewNotAuthenticated("googleads")
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, b.base)
	return b.oauth.Client(ctx, &tok), nil
}

// do sends one JSON request to path below the versioned API root and
// decodes the response into out when out is not nil.
func (b *Backend) do(ctx context.Context, creds domain.Credentials, method, path string, in, out any) error {
	client, err := b.httpClient(ctx, creds)
	if err != nil {
		return err
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	url := strings.TrimRight(b.cfg.BaseURL, "/") + "/" + b.cfg.APIVersion + path
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("developer-token", b.cfg.DeveloperToken)
	if b.cfg.LoginCustomerID != "" {
		req.Header.Set("login-customer-id", b.cfg.LoginCustomerID)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return domain.NewNotAuthenticated("googleads")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		var apiErr apiError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("%s %s: %d %s: %s", method, path, resp.StatusCode, apiErr.Error.Status, apiErr.Error.Message)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

type mutateResponse struct {
	Results []struct {
		ResourceName string `json:"resourceName"`
	} `json:"results"`
}

// mutate posts operations to /customers/{id}/{service}:mutate and returns
// the resource names of the results in operation order.
func (b *Backend) mutate(ctx context.Context, creds domain.Credentials, customerID, service string, ops []map[string]any) ([]string, error) {
	var resp mutateResponse
	path := fmt.Sprintf("/customers/%s/%s:mutate", customerID, service)
	if err := b.do(ctx, creds, http.MethodPost, path, map[string]any{"operations": ops}, &resp); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(resp.Results))
	for _, r := range resp.Results {
		names = append(names, r.ResourceName)
	}
	if len(names) != len(ops) {
		return nil, fmt.Errorf("%s: expected %d results, got %d", service, len(ops), len(names))
	}
	return names, nil
}

// search runs a query and follows result pages.
func (b *Backend) search(ctx context.Context, creds domain.Credentials, customerID, query string) ([]searchRow, error) {
	var rows []searchRow
	path := fmt.Sprintf("/customers/%s/googleAds:search", customerID)
	page := ""
	for {
		in := map[string]any{"query": query}
		if page != "" {
			in["pageToken"] = page
		}
		var resp struct {
			Results       []searchRow `json:"results"`
			NextPageToken string      `json:"nextPageToken"`
		}
		if err := b.do(ctx, creds, http.MethodPost, path, in, &resp); err != nil {
			return nil, err
		}
		rows = append(rows, resp.Results...)
		if resp.NextPageToken == "" {
			return rows, nil
		}
		page = resp.NextPageToken
	}
}
