package dashboard

import (
	"sort"
	"sync"
	"time"

	"ideaproof/internal/core/domain"
)

// DefaultHistoryLen caps the history series held per campaign.
const DefaultHistoryLen = 500

// CampaignView is one row of the dashboard.
type CampaignView struct {
	domain.Campaign
	CTRPercent            float64                  `json:"ctr_percent"`
	ConversionRatePercent float64                  `json:"conversion_rate_percent"`
	History               []domain.MetricsSnapshot `json:"history,omitempty"`
}

// Totals sums the metrics of every campaign in the view.
type Totals struct {
	Impressions           int64   `json:"impressions"`
	Clicks                int64   `json:"clicks"`
	CostMinorUnits        int64   `json:"cost_minor_units"`
	Conversions           float64 `json:"conversions"`
	CTRPercent            float64 `json:"ctr_percent"`
	ConversionRatePercent float64 `json:"conversion_rate_percent"`
}

// View is what a dashboard renders for one account.
type View struct {
	AccountID string         `json:"account_id"`
	Campaigns []CampaignView `json:"campaigns"`
	Totals    Totals         `json:"totals"`
	Stale     bool           `json:"stale"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type entry struct {
	campaign domain.Campaign
	history  []domain.MetricsSnapshot // oldest first
}

// Aggregator folds campaign lists, push updates and history into a View.
// Metrics are last-writer-wins by AsOf; status is applied independently.
type Aggregator struct {
	accountID  string
	historyLen int
	now        func() time.Time

	mu        sync.Mutex
	entries   map[string]*entry
	stale     bool
	updatedAt time.Time
}

func NewAggregator(accountID string) *Aggregator {
	return &Aggregator{
		accountID:  accountID,
		historyLen: DefaultHistoryLen,
		now:        time.Now,
		entries:    make(map[string]*entry),
	}
}

// ApplyCampaigns replaces the campaign set with list. Names, statuses and
// budgets are taken as is, metrics only when not older than the held ones.
func (a *Aggregator) ApplyCampaigns(list []domain.Campaign) {
	a.mu.Lock()
	defer a.mu.Unlock()

	seen := make(map[string]struct{}, len(list))
	for _, c := range list {
		if c.AccountID != "" && c.AccountID != a.accountID {
			continue
		}
		seen[c.ID] = struct{}{}
		e, ok := a.entries[c.ID]
		if !ok {
			e = &entry{campaign: c}
			a.entries[c.ID] = e
			a.record(e, c.Metrics)
			continue
		}
		held := e.campaign.Metrics
		e.campaign = c
		e.campaign.Metrics = held
		a.applyMetrics(e, c.Metrics)
	}
	for id := range a.entries {
		if _, ok := seen[id]; !ok {
			delete(a.entries, id)
		}
	}
	a.updatedAt = a.now()
}

// ApplyUpdate folds a push update in. It reports whether the snapshot was
// taken; an older snapshot or another account's update is discarded.
func (a *Aggregator) ApplyUpdate(u domain.CampaignUpdate) bool {
	if u.AccountID != a.accountID || u.CampaignID == "" {
		return false
	}
	snap := u.Metrics
	if snap.AsOf.IsZero() {
		snap.AsOf = u.Timestamp
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	e, ok := a.entries[u.CampaignID]
	if !ok {
		// known from the next list
		e = &entry{campaign: domain.Campaign{ID: u.CampaignID, AccountID: u.AccountID}}
		a.entries[u.CampaignID] = e
	}
	if !a.applyMetrics(e, snap) {
		return false
	}
	a.updatedAt = a.now()
	return true
}

// ApplyStatus sets the status of a campaign without touching its metrics.
func (a *Aggregator) ApplyStatus(campaignID string, status domain.CampaignStatus) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if e, ok := a.entries[campaignID]; ok {
		e.campaign.Status = status
		a.updatedAt = a.now()
	}
}

// ApplyHistory merges recorded snapshots in any order.
func (a *Aggregator) ApplyHistory(campaignID string, snaps []domain.MetricsSnapshot) {
	a.mu.Lock()
	defer a.mu.Unlock()
	e, ok := a.entries[campaignID]
	if !ok {
		return
	}
	for _, s := range snaps {
		a.record(e, s)
	}
}

// Status returns the held status of a campaign.
func (a *Aggregator) Status(campaignID string) (domain.CampaignStatus, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	e, ok := a.entries[campaignID]
	if !ok {
		return "", false
	}
	return e.campaign.Status, true
}

func (a *Aggregator) SetStale(stale bool) {
	a.mu.Lock()
	a.stale = stale
	a.mu.Unlock()
}

// View returns a copy of the current state, campaigns sorted by name then
// id.
func (a *Aggregator) View() View {
	a.mu.Lock()
	defer a.mu.Unlock()

	v := View{
		AccountID: a.accountID,
		Campaigns: make([]CampaignView, 0, len(a.entries)),
		Stale:     a.stale,
		UpdatedAt: a.updatedAt,
	}
	for _, e := range a.entries {
		m := e.campaign.Metrics
		v.Campaigns = append(v.Campaigns, CampaignView{
			Campaign:              e.campaign,
			CTRPercent:            ctrPercent(m.Impressions, m.Clicks),
			ConversionRatePercent: m.ConversionRate(),
			History:               append([]domain.MetricsSnapshot(nil), e.history...),
		})
		v.Totals.Impressions += m.Impressions
		v.Totals.Clicks += m.Clicks
		v.Totals.CostMinorUnits += m.CostMinorUnits
		v.Totals.Conversions += m.Conversions
	}
	sort.Slice(v.Campaigns, func(i, j int) bool {
		ci, cj := v.Campaigns[i], v.Campaigns[j]
		if ci.Name != cj.Name {
			return ci.Name < cj.Name
		}
		return ci.ID < cj.ID
	})
	v.Totals.CTRPercent = ctrPercent(v.Totals.Impressions, v.Totals.Clicks)
	if v.Totals.Clicks > 0 {
		v.Totals.ConversionRatePercent = v.Totals.Conversions / float64(v.Totals.Clicks) * 100
	}
	return v
}

// applyMetrics requires a.mu.
func (a *Aggregator) applyMetrics(e *entry, snap domain.MetricsSnapshot) bool {
	if snap.OlderThan(e.campaign.Metrics) {
		return false
	}
	e.campaign.Metrics = snap
	a.record(e, snap)
	return true
}

// record keeps the history sorted and free of duplicate timestamps.
func (a *Aggregator) record(e *entry, snap domain.MetricsSnapshot) {
	if snap.AsOf.IsZero() {
		return
	}
	i := sort.Search(len(e.history), func(i int) bool { return !e.history[i].AsOf.Before(snap.AsOf) })
	if i < len(e.history) && e.history[i].AsOf.Equal(snap.AsOf) {
		e.history[i] = snap
		return
	}
	e.history = append(e.history, domain.MetricsSnapshot{})
	copy(e.history[i+1:], e.history[i:])
	e.history[i] = snap
	if len(e.history) > a.historyLen {
		e.history = e.history[len(e.history)-a.historyLen:]
	}
}

func ctrPercent(impressions, clicks int64) float64 {
	if impressions == 0 {
		return 0
	}
	return float64(clicks) / float64(impressions) * 100
}
