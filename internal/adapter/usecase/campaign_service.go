package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ideaproof/internal/core/content"
	"ideaproof/internal/core/domain"
	"ideaproof/internal/core/port"
	"ideaproof/internal/core/validation"
	"ideaproof/internal/metrics"
)

const (
	defaultHistoryLimit = 100
	maxHistoryLimit     = 1000
)

// CampaignService implements port.CampaignUseCase on top of the backend
// selected by the ModeRouter. Backend failures are wrapped into
// ServiceErrors and never retried; the caller decides whether to re-invoke.
type CampaignService struct {
	router    *ModeRouter
	sessions  port.SessionStore
	generator *content.Generator
	snapshots port.SnapshotRepository
	finalURL  string
	logger    *slog.Logger
}

// NewCampaignService wires the service. snapshots may be nil, in which case
// History returns no data. finalURL is the landing page every ad points to.
func NewCampaignService(
	router *ModeRouter,
	sessions port.SessionStore,
	generator *content.Generator,
	snapshots port.SnapshotRepository,
	finalURL string,
	logger *slog.Logger,
) *CampaignService {
	return &CampaignService{
		router:    router,
		sessions:  sessions,
		generator: generator,
		snapshots: snapshots,
		finalURL:  finalURL,
		logger:    logger.With(slog.String("component", "campaign_service")),
	}
}

// ListAccounts returns the accounts of the session and caches them so later
// calls can check account ownership without a round trip.
func (s *CampaignService) ListAccounts(ctx context.Context, caller port.Caller) ([]domain.Account, error) {
	sess, backend, err := s.router.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	return s.refreshAccounts(ctx, sess, backend)
}

// CreateCampaign evaluates the gate and validates the draft before anything
// reaches the backend, then runs the creation sequence. The campaign
// resource returned by the first step is threaded unchanged into the ad
// group step, and the ad group resource into the keyword and ad steps.
func (s *CampaignService) CreateCampaign(ctx context.Context, req port.CreateCampaignReq) (*domain.Campaign, error) {
	const op = "campaign.create"

	decision := validation.AssessWith(req.Assessment, req.StrictScore)
	metrics.GateDecisionsTotal.WithLabelValues(string(decision.Tier)).Inc()
	if err := decision.Allow(op); err != nil {
		return nil, err
	}
	draft, err := s.generator.Generate(req.Content)
	if err != nil {
		return nil, err
	}
	if req.AccountID == "" {
		return nil, domain.NewValidationError(op, "account id is required")
	}

	sess, backend, err := s.router.Resolve(ctx, req.Caller)
	if err != nil {
		return nil, err
	}
	if err = s.ensureAccount(ctx, sess, backend, req.AccountID); err != nil {
		return nil, err
	}

	mode := string(sess.Mode)
	creds := sess.Credentials
	var campaignResource, adGroupResource string

	err = s.call(mode, "create_campaign", func() (err error) {
		campaignResource, err = backend.CreateCampaign(ctx, creds, req.AccountID, port.CampaignRequest{
			Name:                  draft.Name,
			DailyBudgetMinorUnits: draft.DailyBudgetMinorUnits,
			Status:                domain.StatusPaused,
			Targeting:             draft.Targeting,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	campaignID := domain.CampaignIDFromResource(campaignResource)

	err = s.call(mode, "create_ad_group", func() (err error) {
		adGroupResource, err = backend.CreateAdGroup(ctx, creds, req.AccountID, campaignResource, draft.AdGroupName)
		return err
	})
	if err != nil {
		return nil, s.partial(campaignID, "ad group", err)
	}
	err = s.call(mode, "add_keywords", func() error {
		return backend.AddKeywords(ctx, creds, req.AccountID, adGroupResource, draft.Keywords)
	})
	if err != nil {
		return nil, s.partial(campaignID, "keywords", err)
	}
	err = s.call(mode, "create_ads", func() error {
		return backend.CreateAds(ctx, creds, req.AccountID, adGroupResource, port.AdRequest{
			Copy:     draft.AdCopy,
			FinalURL: s.finalURL,
		})
	})
	if err != nil {
		return nil, s.partial(campaignID, "ads", err)
	}

	metrics.CampaignsCreatedTotal.WithLabelValues(mode).Inc()
	s.logger.Info("campaign created",
		slog.String("user_id", sess.UserID),
		slog.String("mode", mode),
		slog.String("account_id", req.AccountID),
		slog.String("campaign_id", campaignID),
	)
	return &domain.Campaign{
		ID:                    campaignID,
		AccountID:             req.AccountID,
		ResourceName:          campaignResource,
		Name:                  draft.Name,
		Status:                domain.StatusPaused,
		DailyBudgetMinorUnits: draft.DailyBudgetMinorUnits,
	}, nil
}

// ListCampaigns returns the campaigns of accountID.
func (s *CampaignService) ListCampaigns(ctx context.Context, caller port.Caller, accountID string) ([]domain.Campaign, error) {
	sess, backend, err := s.router.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	if err = s.ensureAccount(ctx, sess, backend, accountID); err != nil {
		return nil, err
	}
	var campaigns []domain.Campaign
	err = s.call(string(sess.Mode), "list_campaigns", func() (err error) {
		campaigns, err = backend.ListCampaigns(ctx, sess.Credentials, accountID)
		return err
	})
	return campaigns, err
}

// UpdateStatus sets the campaign status. When the campaign already has the
// requested status nothing is mutated and the call succeeds.
func (s *CampaignService) UpdateStatus(ctx context.Context, caller port.Caller, accountID, campaignID string, status domain.CampaignStatus) (*domain.Campaign, error) {
	const op = "campaign.update_status"
	if _, ok := domain.ParseCampaignStatus(string(status)); !ok {
		return nil, domain.NewValidationError(op, fmt.Sprintf("unknown status %q", status))
	}
	sess, backend, err := s.router.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	if err = s.ensureAccount(ctx, sess, backend, accountID); err != nil {
		return nil, err
	}

	mode := string(sess.Mode)
	var current domain.Campaign
	err = s.call(mode, "get_campaign", func() (err error) {
		current, err = backend.GetCampaign(ctx, sess.Credentials, accountID, campaignID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if current.Status == status {
		return &current, nil
	}
	if current.Status == domain.StatusRemoved {
		return nil, domain.NewValidationError(op, "a removed campaign cannot change status")
	}
	err = s.call(mode, "set_campaign_status", func() error {
		return backend.SetCampaignStatus(ctx, sess.Credentials, accountID, campaignID, status)
	})
	if err != nil {
		return nil, err
	}
	current.Status = status
	s.logger.Info("campaign status updated",
		slog.String("campaign_id", campaignID),
		slog.String("status", string(status)),
	)
	return &current, nil
}

// GetInsights returns the metrics of one campaign for the range.
func (s *CampaignService) GetInsights(ctx context.Context, caller port.Caller, accountID, campaignID string, r domain.DateRange) (*domain.Insights, error) {
	if _, err := domain.ParseDateRange(string(r)); err != nil {
		return nil, err
	}
	sess, backend, err := s.router.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	if err = s.ensureAccount(ctx, sess, backend, accountID); err != nil {
		return nil, err
	}
	var insights domain.Insights
	err = s.call(string(sess.Mode), "get_insights", func() (err error) {
		insights, err = backend.GetInsights(ctx, sess.Credentials, accountID, campaignID, r)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &insights, nil
}

// History returns recorded snapshots, newest first.
func (s *CampaignService) History(ctx context.Context, caller port.Caller, accountID, campaignID string, limit int) ([]domain.MetricsSnapshot, error) {
	sess, backend, err := s.router.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	if err = s.ensureAccount(ctx, sess, backend, accountID); err != nil {
		return nil, err
	}
	if s.snapshots == nil {
		return []domain.MetricsSnapshot{}, nil
	}
	switch {
	case limit <= 0:
		limit = defaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}
	history, err := s.snapshots.History(ctx, sess.Mode, campaignID, limit)
	if err != nil {
		return nil, domain.NewServiceError("campaign.history", "snapshot history unavailable", err)
	}
	return history, nil
}

// ensureAccount checks that accountID belongs to the session's mode. The
// account cache is filled on first use.
func (s *CampaignService) ensureAccount(ctx context.Context, sess domain.Session, backend port.AdBackend, accountID string) error {
	if accountID == "" {
		return domain.NewValidationError("account", "account id is required")
	}
	if sess.HasAccount(accountID) {
		return nil
	}
	if len(sess.Accounts) == 0 {
		accounts, err := s.refreshAccounts(ctx, sess, backend)
		if err != nil {
			return err
		}
		sess.Accounts = accounts
		if sess.HasAccount(accountID) {
			return nil
		}
	}
	return domain.NewValidationError("account",
		fmt.Sprintf("account %s is not available in %s mode", accountID, sess.Mode))
}

func (s *CampaignService) refreshAccounts(ctx context.Context, sess domain.Session, backend port.AdBackend) ([]domain.Account, error) {
	var accounts []domain.Account
	err := s.call(string(sess.Mode), "list_accounts", func() (err error) {
		accounts, err = backend.ListAccounts(ctx, sess.Credentials)
		return err
	})
	if err != nil {
		return nil, err
	}

	// A logout or mode switch may have run during the call; its session
	// must not be replaced by the one resolved before it.
	current, ok, err := s.sessions.Get(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("reload session: %w", err)
	}
	if !ok || !current.Authenticated || current.Mode != sess.Mode || current.Credentials.Subject != sess.Credentials.Subject {
		return nil, domain.NewNotAuthenticated("account")
	}
	current.Accounts = accounts
	if err = s.sessions.Put(ctx, current); err != nil {
		s.logger.Warn("caching accounts failed", slog.String("user_id", sess.UserID), slog.Any("error", err))
	}
	return accounts, nil
}

// call runs one backend operation, records it and normalises its error.
func (s *CampaignService) call(mode, operation string, fn func() error) error {
	start := time.Now()
	err := fn()
	metrics.ObserveBackend(mode, operation, start, err)
	if err == nil {
		return nil
	}
	s.logger.Error("backend call failed", slog.String("mode", mode), slog.String("operation", operation), slog.Any("error", err))
	if domain.KindOf(err) != "" {
		return err
	}
	return domain.NewServiceError(operation, "the ad platform request failed", err)
}

func (s *CampaignService) partial(campaignID, step string, err error) error {
	return domain.NewServiceError("campaign.create",
		fmt.Sprintf("campaign %s was created paused but attaching %s failed", campaignID, step), err)
}
