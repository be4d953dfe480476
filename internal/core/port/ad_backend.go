package port

import (
	"context"

	"ideaproof/internal/core/domain"
)

// AdBackend is the execution strategy behind one mode. The demo and live
// implementations share this interface so that orchestration code never
// branches on mode. Implementations must be safe for concurrent use.
type AdBackend interface {
	// Mode identifies the strategy.
	Mode() domain.Mode

	// BeginAuth starts authentication for userID. Backends that need no
	// consent return a completed AuthStart carrying credentials; others
	// return the consent URL bound to state.
	BeginAuth(ctx context.Context, userID, state string) (AuthStart, error)
	// ExchangeCode turns a consent callback code into credentials.
	ExchangeCode(ctx context.Context, code string) (domain.Credentials, error)

	// ListAccounts returns the accounts visible to creds.
	ListAccounts(ctx context.Context, creds domain.Credentials) ([]domain.Account, error)

	// CreateCampaign creates the campaign and its budget with the requested
	// status and returns the campaign resource name.
	CreateCampaign(ctx context.Context, creds domain.Credentials, accountID string, req CampaignRequest) (string, error)
	// CreateAdGroup attaches an ad group to campaignResource and returns
	// the ad group resource name.
	CreateAdGroup(ctx context.Context, creds domain.Credentials, accountID, campaignResource, name string) (string, error)
	// AddKeywords attaches keyword criteria to the ad group.
	AddKeywords(ctx context.Context, creds domain.Credentials, accountID, adGroupResource string, keywords []domain.Keyword) error
	// CreateAds attaches a responsive search ad to the ad group.
	CreateAds(ctx context.Context, creds domain.Credentials, accountID, adGroupResource string, ad AdRequest) error

	// ListCampaigns returns every campaign of the account with its latest
	// metrics snapshot.
	ListCampaigns(ctx context.Context, creds domain.Credentials, accountID string) ([]domain.Campaign, error)
	// GetCampaign returns one campaign with its latest metrics snapshot.
	GetCampaign(ctx context.Context, creds domain.Credentials, accountID, campaignID string) (domain.Campaign, error)
	// SetCampaignStatus mutates the serving status.
	SetCampaignStatus(ctx context.Context, creds domain.Credentials, accountID, campaignID string, status domain.CampaignStatus) error
	// GetInsights returns the aggregate and daily metrics for the range.
	GetInsights(ctx context.Context, creds domain.Credentials, accountID, campaignID string, r domain.DateRange) (domain.Insights, error)
}

// AuthStart is the first step of authentication.
type AuthStart struct {
	URL         string
	Completed   bool
	Credentials domain.Credentials
}

// CampaignRequest is the first step of the creation sequence.
type CampaignRequest struct {
	Name                  string
	DailyBudgetMinorUnits int64
	Status                domain.CampaignStatus
	Targeting             domain.Targeting
}

// AdRequest is the last step of the creation sequence.
type AdRequest struct {
	Copy     domain.AdCopy
	FinalURL string
}
