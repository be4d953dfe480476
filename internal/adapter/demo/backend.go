// Package demo implements the simulated ad backend. It authenticates
// immediately, keeps campaigns in memory and derives metrics from the time
// a campaign has spent ENABLED, so repeated reads are deterministic for a
// fixed clock.
package demo

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"ideaproof/internal/core/domain"
	"ideaproof/internal/core/port"
)

// namespace for deterministic demo account ids.
var accountNamespace = uuid.MustParse("6f1c8a52-3a0e-4c1b-9a55-0d7e2c4b9f10")

const (
	currency = "EUR"
	// metrics only advance in whole minutes, so a paused or idle campaign
	// keeps the same snapshot timestamp between polls.
	tick = time.Minute
)

type interval struct {
	from, to time.Time // zero to means still enabled
}

type campaign struct {
	domain.Campaign
	created   time.Time
	changedAt time.Time
	enabled   []interval
	adGroups  map[string]*adGroup
}

type adGroup struct {
	name     string
	keywords []domain.Keyword
	ads      []port.AdRequest
}

// Backend implements port.AdBackend without any network access.
type Backend struct {
	now func() time.Time

	mu        sync.RWMutex
	campaigns map[string]map[string]*campaign // account id -> campaign id
	adGroups  map[string]*campaign            // ad group resource -> owner
}

// Option configures a Backend.
type Option func(*Backend)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(b *Backend) { b.now = now }
}

func New(opts ...Option) *Backend {
	b := &Backend{
		now:       time.Now,
		campaigns: make(map[string]map[string]*campaign),
		adGroups:  make(map[string]*campaign),
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

func (b *Backend) Mode() domain.Mode { return domain.ModeDemo }

// BeginAuth completes at once with placeholder credentials.
func (b *Backend) BeginAuth(_ context.Context, userID, _ string) (port.AuthStart, error) {
	return port.AuthStart{
		Completed:   true,
		Credentials: domain.Credentials{Subject: userID},
	}, nil
}

func (b *Backend) ExchangeCode(context.Context, string) (domain.Credentials, error) {
	return domain.Credentials{}, domain.NewConfigurationError("demo.exchange_code", "demo mode does not use consent codes")
}

// AccountID is the id of the single demo account of subject.
func AccountID(subject string) string {
	id := uuid.NewSHA1(accountNamespace, []byte(subject))
	return "demo-" + strings.ReplaceAll(id.String(), "-", "")[:10]
}

func (b *Backend) ListAccounts(_ context.Context, creds domain.Credentials) ([]domain.Account, error) {
	if creds.Subject == "" {
		return nil, domain.NewNotAuthenticated("demo.list_accounts")
	}
	return []domain.Account{{
		ID:          AccountID(creds.Subject),
		DisplayName: "Demo Account",
		Currency:    currency,
	}}, nil
}

func (b *Backend) CreateCampaign(_ context.Context, creds domain.Credentials, accountID string, req port.CampaignRequest) (string, error) {
	if err := owns(creds, accountID); err != nil {
		return "", err
	}
	now := b.now().UTC()
	id := uuid.NewString()
	c := &campaign{
		Campaign: domain.Campaign{
			ID:                    id,
			AccountID:             accountID,
			ResourceName:          fmt.Sprintf("customers/%s/campaigns/%s", accountID, id),
			Name:                  req.Name,
			Status:                req.Status,
			DailyBudgetMinorUnits: req.DailyBudgetMinorUnits,
		},
		created:   now,
		changedAt: now,
		adGroups:  make(map[string]*adGroup),
	}
	if c.Status == "" {
		c.Status = domain.StatusPaused
	}
	if c.Status == domain.StatusEnabled {
		c.enabled = append(c.enabled, interval{from: now})
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.campaigns[accountID] == nil {
		b.campaigns[accountID] = make(map[string]*campaign)
	}
	b.campaigns[accountID][id] = c
	return c.ResourceName, nil
}

func (b *Backend) CreateAdGroup(_ context.Context, creds domain.Credentials, accountID, campaignResource, name string) (string, error) {
	if err := owns(creds, accountID); err != nil {
		return "", err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	c, ok := b.campaigns[accountID][domain.CampaignIDFromResource(campaignResource)]
	if !ok || c.ResourceName != campaignResource {
		return "", notFound("demo.create_ad_group", campaignResource)
	}
	resource := fmt.Sprintf("customers/%s/adGroups/%s", accountID, uuid.NewString())
	c.adGroups[resource] = &adGroup{name: name}
	b.adGroups[resource] = c
	return resource, nil
}

func (b *Backend) AddKeywords(_ context.Context, creds domain.Credentials, accountID, adGroupResource string, keywords []domain.Keyword) error {
	if err := owns(creds, accountID); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	g, err := b.adGroup(accountID, adGroupResource)
	if err != nil {
		return err
	}
	g.keywords = append(g.keywords, keywords...)
	return nil
}

func (b *Backend) CreateAds(_ context.Context, creds domain.Credentials, accountID, adGroupResource string, ad port.AdRequest) error {
	if err := owns(creds, accountID); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	g, err := b.adGroup(accountID, adGroupResource)
	if err != nil {
		return err
	}
	g.ads = append(g.ads, ad)
	return nil
}

// ListCampaigns returns campaigns oldest first.
func (b *Backend) ListCampaigns(_ context.Context, creds domain.Credentials, accountID string) ([]domain.Campaign, error) {
	if err := owns(creds, accountID); err != nil {
		return nil, err
	}
	now := b.now().UTC()
	b.mu.RLock()
	defer b.mu.RUnlock()

	list := make([]*campaign, 0, len(b.campaigns[accountID]))
	for _, c := range b.campaigns[accountID] {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].created.Equal(list[j].created) {
			return list[i].ID < list[j].ID
		}
		return list[i].created.Before(list[j].created)
	})

	out := make([]domain.Campaign, 0, len(list))
	for _, c := range list {
		out = append(out, c.view(now))
	}
	return out, nil
}

func (b *Backend) GetCampaign(_ context.Context, creds domain.Credentials, accountID, campaignID string) (domain.Campaign, error) {
	if err := owns(creds, accountID); err != nil {
		return domain.Campaign{}, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	c, ok := b.campaigns[accountID][campaignID]
	if !ok {
		return domain.Campaign{}, notFound("demo.get_campaign", campaignID)
	}
	return c.view(b.now().UTC()), nil
}

func (b *Backend) SetCampaignStatus(_ context.Context, creds domain.Credentials, accountID, campaignID string, status domain.CampaignStatus) error {
	if err := owns(creds, accountID); err != nil {
		return err
	}
	now := b.now().UTC()
	b.mu.Lock()
	defer b.mu.Unlock()
	c, ok := b.campaigns[accountID][campaignID]
	if !ok {
		return notFound("demo.set_campaign_status", campaignID)
	}
	if c.Status == status {
		return nil
	}
	if c.Status == domain.StatusEnabled {
		c.enabled[len(c.enabled)-1].to = now
	}
	if status == domain.StatusEnabled {
		c.enabled = append(c.enabled, interval{from: now})
	}
	c.Status = status
	c.changedAt = now
	return nil
}

// GetInsights splits the simulated metrics into UTC days.
func (b *Backend) GetInsights(_ context.Context, creds domain.Credentials, accountID, campaignID string, r domain.DateRange) (domain.Insights, error) {
	if err := owns(creds, accountID); err != nil {
		return domain.Insights{}, err
	}
	now := b.now().UTC()
	b.mu.RLock()
	defer b.mu.RUnlock()
	c, ok := b.campaigns[accountID][campaignID]
	if !ok {
		return domain.Insights{}, notFound("demo.get_insights", campaignID)
	}

	from, to := r.Window(now)
	if to.After(now) {
		to = now
	}
	ins := domain.Insights{CampaignID: campaignID, Range: r, Daily: []domain.DailyMetrics{}}
	var minutes int64
	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		end := day.AddDate(0, 0, 1)
		if end.After(to) {
			end = to
		}
		m := c.enabledMinutes(day, end)
		minutes += m
		s := simulate(c.ID, m)
		ins.Daily = append(ins.Daily, domain.DailyMetrics{
			Date:           day.Format(time.DateOnly),
			Impressions:    s.Impressions,
			Clicks:         s.Clicks,
			CostMinorUnits: s.CostMinorUnits,
			Conversions:    s.Conversions,
		})
	}
	ins.Summary = simulate(c.ID, minutes)
	ins.Summary.AsOf = c.asOf(now)
	return ins, nil
}

func (b *Backend) adGroup(accountID, resource string) (*adGroup, error) {
	c, ok := b.adGroups[resource]
	if !ok || c.AccountID != accountID {
		return nil, notFound("demo.ad_group", resource)
	}
	return c.adGroups[resource], nil
}

func (c *campaign) view(now time.Time) domain.Campaign {
	out := c.Campaign
	out.Metrics = simulate(c.ID, c.enabledMinutes(c.created, now))
	out.Metrics.AsOf = c.asOf(now)
	return out
}

// asOf is the last instant the snapshot changed.
func (c *campaign) asOf(now time.Time) time.Time {
	if c.Status == domain.StatusEnabled {
		if t := now.Truncate(tick); t.After(c.changedAt) {
			return t
		}
	}
	return c.changedAt
}

func (c *campaign) enabledMinutes(from, to time.Time) int64 {
	var total time.Duration
	for _, iv := range c.enabled {
		end := iv.to
		if end.IsZero() || end.After(to) {
			end = to
		}
		start := iv.from
		if start.Before(from) {
			start = from
		}
		if end.After(start) {
			total += end.Sub(start)
		}
	}
	return int64(total / tick)
}

// simulate derives metrics for the given number of enabled minutes. The
// per-campaign rates come from a hash of the campaign id.
func simulate(campaignID string, minutes int64) domain.MetricsSnapshot {
	h := uuid.NewSHA1(uuid.NameSpaceOID, []byte(campaignID))
	perMinute := 3 + int64(h[0]%5)         // impressions
	ctrBasisPts := 150 + int64(h[1]%30)*10 // 1.5% .. 4.4%
	cpc := 40 + int64(h[2]%80)             // minor units
	convPct := 5 + float64(h[3]%11)        // per click

	impressions := minutes * perMinute
	clicks := impressions * ctrBasisPts / 10000
	s := domain.MetricsSnapshot{
		Impressions:    impressions,
		Clicks:         clicks,
		CostMinorUnits: clicks * cpc,
		Conversions:    math.Round(float64(clicks)*convPct) / 100,
	}
	if impressions > 0 {
		s.CTR = float64(clicks) / float64(impressions)
	}
	return s
}

func owns(creds domain.Credentials, accountID string) error {
	if creds.Subject == "" {
		return domain.NewNotAuthenticated("demo")
	}
	if accountID != AccountID(creds.Subject) {
		return domain.NewValidationError("demo", fmt.Sprintf("account %s does not belong to this session", accountID))
	}
	return nil
}

func notFound(op, what string) error {
	return domain.NewValidationError(op, fmt.Sprintf("%s not found", what))
}
