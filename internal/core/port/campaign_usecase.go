package port

import (
	"context"

	"ideaproof/internal/core/content"
	"ideaproof/internal/core/domain"
)

// Caller identifies who issues a request and which mode variant of the API
// was used. The mode must match the session's active mode.
type Caller struct {
	UserID string
	Mode   domain.Mode
}

// CampaignUseCase defines the campaign operations exposed by the
// orchestrator. This interface is the primary port used by the HTTP layer.
type CampaignUseCase interface {
	// ListAccounts returns the accounts visible to the authenticated
	// session and caches them on it.
	ListAccounts(ctx context.Context, caller Caller) ([]domain.Account, error)

	// CreateCampaign checks the readiness gate, builds and validates the
	// draft, then runs the campaign, ad group, keywords and ads steps. The
	// campaign is always created paused.
	CreateCampaign(ctx context.Context, req CreateCampaignReq) (*domain.Campaign, error)

	// ListCampaigns returns the campaigns of one account.
	ListCampaigns(ctx context.Context, caller Caller, accountID string) ([]domain.Campaign, error)

	// UpdateStatus sets the serving status. Re-issuing the current status
	// succeeds without touching the backend.
	UpdateStatus(ctx context.Context, caller Caller, accountID, campaignID string, status domain.CampaignStatus) (*domain.Campaign, error)

	// GetInsights returns the summary and daily series for the range.
	GetInsights(ctx context.Context, caller Caller, accountID, campaignID string, r domain.DateRange) (*domain.Insights, error)

	// History returns recorded snapshots of a campaign, newest first.
	History(ctx context.Context, caller Caller, accountID, campaignID string, limit int) ([]domain.MetricsSnapshot, error)
}

// CreateCampaignReq carries everything needed to create a validation
// campaign. Assessment is the raw analysis text; the gate is evaluated on it
// server side.
type CreateCampaignReq struct {
	Caller     Caller
	AccountID  string
	Content    content.Input
	Assessment string

	// StrictScore skips the bare-number fallback of score extraction.
	StrictScore bool
}

// AuthUseCase drives the consent flow. Each attempt resolves exactly once.
type AuthUseCase interface {
	Begin(ctx context.Context, userID string, mode domain.Mode) (AuthAttemptView, error)
	Complete(ctx context.Context, mode domain.Mode, state, code string) error
	Cancel(state string) error
	Wait(ctx context.Context, state string) error
}

// AuthAttemptView is what a client needs to continue authentication.
type AuthAttemptView struct {
	State         string `json:"state,omitempty"`
	AuthURL       string `json:"auth_url,omitempty"`
	Authenticated bool   `json:"authenticated"`
}

// SessionUseCase switches modes and signs users out.
type SessionUseCase interface {
	SwitchMode(ctx context.Context, userID string, mode domain.Mode) error
	Logout(ctx context.Context, userID string) error
}
