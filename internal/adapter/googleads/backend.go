// Package googleads implements the live ad backend on the Google Ads REST
// interface. Consent and token refresh go through golang.org/x/oauth2.
package googleads

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"

	"ideaproof/internal/core/domain"
	"ideaproof/internal/core/port"
)

const (
	scope          = "https://www.googleapis.com/auth/adwords"
	defaultBaseURL = "https://googleads.googleapis.com"
	defaultVersion = "v17"

	// platform amounts are in micros; the orchestrator uses minor units.
	microsPerMinor = 10_000
	defaultCPC     = 100_000
)

// Config holds the live credentials. Endpoint is only overridden in tests.
type Config struct {
	ClientID        string
	ClientSecret    string
	DeveloperToken  string
	RedirectURI     string
	LoginCustomerID string
	APIVersion      string
	BaseURL         string
	Endpoint        oauth2.Endpoint
	HTTPClient      *http.Client
}

// Backend implements port.AdBackend for live mode.
type Backend struct {
	cfg    Config
	oauth  *oauth2.Config
	base   *http.Client
	logger *slog.Logger
}

// New validates cfg and returns the live backend. Missing credentials are
// a ConfigurationError.
func New(cfg Config, logger *slog.Logger) (*Backend, error) {
	var missing []string
	for name, v := range map[string]string{
		"client id":       cfg.ClientID,
		"client secret":   cfg.ClientSecret,
		"developer token": cfg.DeveloperToken,
		"redirect uri":    cfg.RedirectURI,
	} {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, domain.NewConfigurationError("googleads", "missing live credentials: "+strings.Join(missing, ", "))
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = defaultVersion
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Endpoint.AuthURL == "" {
		cfg.Endpoint = endpoints.Google
	}
	cfg.LoginCustomerID = strings.ReplaceAll(cfg.LoginCustomerID, "-", "")
	base := cfg.HTTPClient
	if base == nil {
		base = &http.Client{Timeout: 30 * time.Second}
	}
	return &Backend{
		cfg: cfg,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Endpoint:     cfg.Endpoint,
			Scopes:       []string{scope},
		},
		base:   base,
		logger: logger.With(slog.String("component", "googleads")),
	}, nil
}

func (b *Backend) Mode() domain.Mode { return domain.ModeLive }

// BeginAuth returns the consent URL bound to state. Offline access is
// requested so the session can refresh its token.
func (b *Backend) BeginAuth(_ context.Context, _ string, state string) (port.AuthStart, error) {
	return port.AuthStart{
		URL: b.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce),
	}, nil
}

func (b *Backend) ExchangeCode(ctx context.Context, code string) (domain.Credentials, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, b.base)
	tok, err := b.oauth.Exchange(ctx, code)
	if err != nil {
		return domain.Credentials{}, fmt.Errorf("exchange code: %w", err)
	}
	raw, err := json.Marshal(tok)
	if err != nil {
		return domain.Credentials{}, fmt.Errorf("encode token: %w", err)
	}
	return domain.Credentials{Subject: uuid.NewString(), Token: raw}, nil
}

// ListAccounts lists the customers accessible to the token and resolves
// their display names. A customer whose details cannot be read is still
// listed under its id.
func (b *Backend) ListAccounts(ctx context.Context, creds domain.Credentials) ([]domain.Account, error) {
	var resp struct {
		ResourceNames []string `json:"resourceNames"`
	}
	if err := b.do(ctx, creds, http.MethodGet, "/customers:listAccessibleCustomers", nil, &resp); err != nil {
		return nil, err
	}
	accounts := make([]domain.Account, 0, len(resp.ResourceNames))
	for _, name := range resp.ResourceNames {
		id := strings.TrimPrefix(name, "customers/")
		acc := domain.Account{ID: id, DisplayName: id}
		rows, err := b.search(ctx, creds, id, "SELECT customer.id, customer.descriptive_name, customer.currency_code FROM customer LIMIT 1")
		if err != nil {
			b.logger.Debug("customer details unavailable", slog.String("customer_id", id), slog.Any("error", err))
		} else if len(rows) > 0 {
			if rows[0].Customer.DescriptiveName != "" {
				acc.DisplayName = rows[0].Customer.DescriptiveName
			}
			acc.Currency = rows[0].Customer.CurrencyCode
		}
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

// CreateCampaign creates the daily budget and a search campaign using it.
func (b *Backend) CreateCampaign(ctx context.Context, creds domain.Credentials, accountID string, req port.CampaignRequest) (string, error) {
	budgets, err := b.mutate(ctx, creds, accountID, "campaignBudgets", []map[string]any{{
		"create": map[string]any{
			"name":             fmt.Sprintf("%s budget %s", req.Name, uuid.NewString()[:8]),
			"amountMicros":     fmt.Sprint(req.DailyBudgetMinorUnits * microsPerMinor),
			"deliveryMethod":   "STANDARD",
			"explicitlyShared": false,
		},
	}})
	if err != nil {
		return "", fmt.Errorf("create budget: %w", err)
	}

	campaigns, err := b.mutate(ctx, creds, accountID, "campaigns", []map[string]any{{
		"create": map[string]any{
			"name":                   req.Name,
			"status":                 string(req.Status),
			"advertisingChannelType": "SEARCH",
			"campaignBudget":         budgets[0],
			"manualCpc":              map[string]any{},
			"networkSettings": map[string]any{
				"targetGoogleSearch":  true,
				"targetSearchNetwork": true,
			},
		},
	}})
	if err != nil {
		return "", fmt.Errorf("create campaign: %w", err)
	}

	if ops := targetingOps(campaigns[0], req.Targeting); len(ops) > 0 {
		if _, err = b.mutate(ctx, creds, accountID, "campaignCriteria", ops); err != nil {
			return "", fmt.Errorf("campaign %s targeting: %w", domain.CampaignIDFromResource(campaigns[0]), err)
		}
	}
	return campaigns[0], nil
}

// targetingOps maps language and location ids onto campaign criteria. Age
// and interest hints only steer the generated copy on search campaigns.
func targetingOps(campaignResource string, t domain.Targeting) []map[string]any {
	var ops []map[string]any
	for _, lang := range t.Languages {
		ops = append(ops, map[string]any{"create": map[string]any{
			"campaign": campaignResource,
			"language": map[string]any{"languageConstant": "languageConstants/" + lang},
		}})
	}
	for _, geo := range t.Geos {
		ops = append(ops, map[string]any{"create": map[string]any{
			"campaign": campaignResource,
			"location": map[string]any{"geoTargetConstant": "geoTargetConstants/" + geo},
		}})
	}
	return ops
}

func (b *Backend) CreateAdGroup(ctx context.Context, creds domain.Credentials, accountID, campaignResource, name string) (string, error) {
	groups, err := b.mutate(ctx, creds, accountID, "adGroups", []map[string]any{{
		"create": map[string]any{
			"name":         name,
			"campaign":     campaignResource,
			"status":       "ENABLED",
			"type":         "SEARCH_STANDARD",
			"cpcBidMicros": fmt.Sprint(defaultCPC),
		},
	}})
	if err != nil {
		return "", err
	}
	return groups[0], nil
}

func (b *Backend) AddKeywords(ctx context.Context, creds domain.Credentials, accountID, adGroupResource string, keywords []domain.Keyword) error {
	if len(keywords) == 0 {
		return nil
	}
	ops := make([]map[string]any, 0, len(keywords))
	for _, kw := range keywords {
		ops = append(ops, map[string]any{"create": map[string]any{
			"adGroup": adGroupResource,
			"status":  "ENABLED",
			"keyword": map[string]any{"text": kw.Text, "matchType": string(kw.MatchType)},
		}})
	}
	_, err := b.mutate(ctx, creds, accountID, "adGroupCriteria", ops)
	return err
}

func (b *Backend) CreateAds(ctx context.Context, creds domain.Credentials, accountID, adGroupResource string, ad port.AdRequest) error {
	_, err := b.mutate(ctx, creds, accountID, "adGroupAds", []map[string]any{{
		"create": map[string]any{
			"adGroup": adGroupResource,
			"status":  "ENABLED",
			"ad": map[string]any{
				"finalUrls": []string{ad.FinalURL},
				"responsiveSearchAd": map[string]any{
					"headlines":    textAssets(ad.Copy.Headlines),
					"descriptions": textAssets(ad.Copy.Descriptions),
				},
			},
		},
	}})
	return err
}

func textAssets(texts []string) []map[string]string {
	out := make([]map[string]string, 0, len(texts))
	for _, t := range texts {
		out = append(out, map[string]string{"text": t})
	}
	return out
}

func (b *Backend) SetCampaignStatus(ctx context.Context, creds domain.Credentials, accountID, campaignID string, status domain.CampaignStatus) error {
	if !numeric(campaignID) {
		return domain.NewValidationError("googleads.set_status", "campaign id must be numeric")
	}
	_, err := b.mutate(ctx, creds, accountID, "campaigns", []map[string]any{{
		"update": map[string]any{
			"resourceName": fmt.Sprintf("customers/%s/campaigns/%s", accountID, campaignID),
			"status":       string(status),
		},
		"updateMask": "status",
	}})
	return err
}

var errNotFound = errors.New("campaign not found")
