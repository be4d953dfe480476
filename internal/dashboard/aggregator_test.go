package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ideaproof/internal/core/domain"
)

var t0 = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func snap(clicks int64, at time.Time) domain.MetricsSnapshot {
	return domain.MetricsSnapshot{Impressions: clicks * 10, Clicks: clicks, AsOf: at}
}

func TestAggregatorDiscardsOlderSnapshots(t *testing.T) {
	a := NewAggregator("acc")

	assert.True(t, a.ApplyUpdate(domain.CampaignUpdate{AccountID: "acc", CampaignID: "c1", Metrics: snap(5, t0.Add(time.Minute))}))
	assert.False(t, a.ApplyUpdate(domain.CampaignUpdate{AccountID: "acc", CampaignID: "c1", Metrics: snap(3, t0)}))
	assert.True(t, a.ApplyUpdate(domain.CampaignUpdate{AccountID: "acc", CampaignID: "c1", Metrics: snap(6, t0.Add(time.Minute))}))

	v := a.View()
	require.Len(t, v.Campaigns, 1)
	assert.Equal(t, int64(6), v.Campaigns[0].Metrics.Clicks)
	assert.Len(t, v.Campaigns[0].History, 1)
}

func TestAggregatorIgnoresOtherAccounts(t *testing.T) {
	a := NewAggregator("acc")
	assert.False(t, a.ApplyUpdate(domain.CampaignUpdate{AccountID: "other", CampaignID: "c1", Metrics: snap(1, t0)}))
	a.ApplyCampaigns([]domain.Campaign{{ID: "x", AccountID: "other"}})
	assert.Empty(t, a.View().Campaigns)
}

func TestAggregatorAppliesStatusIndependently(t *testing.T) {
	a := NewAggregator("acc")
	a.ApplyUpdate(domain.CampaignUpdate{AccountID: "acc", CampaignID: "c1", Metrics: snap(9, t0.Add(time.Hour))})

	// a list fetched before the push still carries the fresh status
	a.ApplyCampaigns([]domain.Campaign{{
		ID: "c1", AccountID: "acc", Name: "Idea", Status: domain.StatusEnabled, Metrics: snap(2, t0),
	}})
	v := a.View()
	require.Len(t, v.Campaigns, 1)
	assert.Equal(t, domain.StatusEnabled, v.Campaigns[0].Status)
	assert.Equal(t, "Idea", v.Campaigns[0].Name)
	assert.Equal(t, int64(9), v.Campaigns[0].Metrics.Clicks)

	a.ApplyStatus("c1", domain.StatusPaused)
	status, ok := a.Status("c1")
	require.True(t, ok)
	assert.Equal(t, domain.StatusPaused, status)
	assert.Equal(t, int64(9), a.View().Campaigns[0].Metrics.Clicks)
}

func TestAggregatorViewOrderAndTotals(t *testing.T) {
	a := NewAggregator("acc")
	a.ApplyCampaigns([]domain.Campaign{
		{ID: "3", Name: "Beta", Metrics: domain.MetricsSnapshot{Impressions: 100, Clicks: 10, Conversions: 1, CostMinorUnits: 50, AsOf: t0}},
		{ID: "2", Name: "Alpha", Metrics: domain.MetricsSnapshot{Impressions: 300, Clicks: 30, Conversions: 3, CostMinorUnits: 150, AsOf: t0}},
		{ID: "1", Name: "Alpha", Metrics: domain.MetricsSnapshot{Impressions: 0, AsOf: t0}},
	})

	v := a.View()
	require.Len(t, v.Campaigns, 3)
	assert.Equal(t, []string{"1", "2", "3"}, []string{v.Campaigns[0].ID, v.Campaigns[1].ID, v.Campaigns[2].ID})
	assert.InDelta(t, 10.0, v.Campaigns[1].CTRPercent, 1e-9)
	assert.InDelta(t, 10.0, v.Campaigns[1].ConversionRatePercent, 1e-9)
	assert.Zero(t, v.Campaigns[0].CTRPercent)

	assert.Equal(t, int64(400), v.Totals.Impressions)
	assert.Equal(t, int64(40), v.Totals.Clicks)
	assert.Equal(t, int64(200), v.Totals.CostMinorUnits)
	assert.InDelta(t, 10.0, v.Totals.CTRPercent, 1e-9)
	assert.InDelta(t, 10.0, v.Totals.ConversionRatePercent, 1e-9)

	// campaigns missing from a newer list are dropped
	a.ApplyCampaigns([]domain.Campaign{{ID: "3", Name: "Beta"}})
	assert.Len(t, a.View().Campaigns, 1)
}

func TestAggregatorHistorySortedWithoutDuplicates(t *testing.T) {
	a := NewAggregator("acc")
	a.ApplyCampaigns([]domain.Campaign{{ID: "c1", Name: "Idea"}})

	// history arrives newest first
	a.ApplyHistory("c1", []domain.MetricsSnapshot{snap(3, t0.Add(2*time.Minute)), snap(2, t0.Add(time.Minute)), snap(1, t0)})
	a.ApplyUpdate(domain.CampaignUpdate{AccountID: "acc", CampaignID: "c1", Metrics: snap(3, t0.Add(2*time.Minute))})
	a.ApplyHistory("unknown", []domain.MetricsSnapshot{snap(1, t0)})

	v := a.View()
	require.Len(t, v.Campaigns, 1)
	h := v.Campaigns[0].History
	require.Len(t, h, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{h[0].Clicks, h[1].Clicks, h[2].Clicks})
}

func TestAggregatorUsesTimestampWhenSnapshotHasNone(t *testing.T) {
	a := NewAggregator("acc")
	a.ApplyUpdate(domain.CampaignUpdate{AccountID: "acc", CampaignID: "c1", Metrics: domain.MetricsSnapshot{Clicks: 4}, Timestamp: t0})

	assert.False(t, a.ApplyUpdate(domain.CampaignUpdate{AccountID: "acc", CampaignID: "c1", Metrics: snap(1, t0.Add(-time.Second))}))
	assert.Equal(t, t0, a.View().Campaigns[0].Metrics.AsOf)
}
