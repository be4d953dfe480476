package domain

import (
	"strings"
	"time"
)

// CampaignStatus mirrors the serving states exposed by both backends.
type CampaignStatus string

const (
	StatusEnabled CampaignStatus = "ENABLED"
	StatusPaused  CampaignStatus = "PAUSED"
	StatusRemoved CampaignStatus = "REMOVED"
)

// ParseCampaignStatus accepts any letter case and rejects unknown values.
func ParseCampaignStatus(s string) (CampaignStatus, bool) {
	switch CampaignStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusEnabled:
		return StatusEnabled, true
	case StatusPaused:
		return StatusPaused, true
	case StatusRemoved:
		return StatusRemoved, true
	}
	return "", false
}

// Campaign represents an advertising campaign owned by exactly one Account.
// Budgets are stored in integer minor units (e.g. cents). ID is assigned
// by the platform and never reused.
type Campaign struct {
	ID                    string          `json:"id"`
	AccountID             string          `json:"account_id"`
	ResourceName          string          `json:"resource_name,omitempty"`
	Name                  string          `json:"name"`
	Status                CampaignStatus  `json:"status"`
	DailyBudgetMinorUnits int64           `json:"daily_budget_minor_units"`
	Metrics               MetricsSnapshot `json:"metrics"`
}

// MetricsSnapshot is the full latest metrics state for a campaign. A newer
// snapshot replaces an older one wholesale.
type MetricsSnapshot struct {
	Impressions    int64     `json:"impressions"`
	Clicks         int64     `json:"clicks"`
	CTR            float64   `json:"ctr"`
	CostMinorUnits int64     `json:"cost_minor_units"`
	Conversions    float64   `json:"conversions"`
	AsOf           time.Time `json:"as_of"`
}

// OlderThan reports whether s was taken strictly before other.
func (s MetricsSnapshot) OlderThan(other MetricsSnapshot) bool {
	return s.AsOf.Before(other.AsOf)
}

// ConversionRate returns conversions per click as a percentage.
func (s MetricsSnapshot) ConversionRate() float64 {
	if s.Clicks == 0 {
		return 0
	}
	return s.Conversions / float64(s.Clicks) * 100
}

// CTRPercent returns the click-through rate as a percentage.
func (s MetricsSnapshot) CTRPercent() float64 {
	return s.CTR * 100
}

// DailyMetrics is one point of an insights time series.
type DailyMetrics struct {
	Date           string  `json:"date"` // YYYY-MM-DD
	Impressions    int64   `json:"impressions"`
	Clicks         int64   `json:"clicks"`
	CostMinorUnits int64   `json:"cost_minor_units"`
	Conversions    float64 `json:"conversions"`
}

// Insights is the response of an insights query: the aggregate snapshot for
// the range plus one entry per day.
type Insights struct {
	CampaignID string          `json:"campaign_id"`
	Range      DateRange       `json:"range"`
	Summary    MetricsSnapshot `json:"summary"`
	Daily      []DailyMetrics  `json:"daily"`
}

// CampaignUpdate is the payload of a campaign-update push event.
type CampaignUpdate struct {
	AccountID  string          `json:"account_id"`
	CampaignID string          `json:"campaign_id"`
	Metrics    MetricsSnapshot `json:"metrics"`
	Timestamp  time.Time       `json:"timestamp"`
}

// CampaignIDFromResource extracts the trailing id of a platform resource
// name such as customers/123/campaigns/456.
func CampaignIDFromResource(resource string) string {
	if i := strings.LastIndexByte(resource, '/'); i >= 0 {
		return resource[i+1:]
	}
	return resource
}
