package demo

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ideaproof/internal/core/domain"
	"ideaproof/internal/core/port"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func setup(t *testing.T) (*Backend, *clock, domain.Credentials, string) {
	t.Helper()
	clk := &clock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	b := New(WithClock(clk.Now))
	start, err := b.BeginAuth(context.Background(), "founder", "state")
	require.NoError(t, err)
	require.True(t, start.Completed)
	accounts, err := b.ListAccounts(context.Background(), start.Credentials)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	return b, clk, start.Credentials, accounts[0].ID
}

func createCampaign(t *testing.T, b *Backend, creds domain.Credentials, accountID string) string {
	t.Helper()
	ctx := context.Background()
	campaignRes, err := b.CreateCampaign(ctx, creds, accountID, port.CampaignRequest{
		Name:                  "TimeTracker - Validation",
		DailyBudgetMinorUnits: 2500,
		Status:                domain.StatusPaused,
	})
	require.NoError(t, err)
	groupRes, err := b.CreateAdGroup(ctx, creds, accountID, campaignRes, "TimeTracker - Main group")
	require.NoError(t, err)
	require.NoError(t, b.AddKeywords(ctx, creds, accountID, groupRes, []domain.Keyword{{Text: "timetracker", MatchType: domain.MatchBroad}}))
	require.NoError(t, b.CreateAds(ctx, creds, accountID, groupRes, port.AdRequest{FinalURL: "https://x.test/landing"}))
	return domain.CampaignIDFromResource(campaignRes)
}

func TestAccountIDIsDeterministic(t *testing.T) {
	assert.Equal(t, AccountID("a"), AccountID("a"))
	assert.NotEqual(t, AccountID("a"), AccountID("b"))
}

func TestCreateIsPausedWithoutTraffic(t *testing.T) {
	b, clk, creds, acc := setup(t)
	id := createCampaign(t, b, creds, acc)

	clk.Advance(2 * time.Hour)
	c, err := b.GetCampaign(context.Background(), creds, acc, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaused, c.Status)
	assert.Zero(t, c.Metrics.Impressions)
	assert.Equal(t, int64(2500), c.DailyBudgetMinorUnits)
}

func TestEnabledCampaignAccumulatesMetrics(t *testing.T) {
	b, clk, creds, acc := setup(t)
	ctx := context.Background()
	id := createCampaign(t, b, creds, acc)

	require.NoError(t, b.SetCampaignStatus(ctx, creds, acc, id, domain.StatusEnabled))
	clk.Advance(3 * time.Hour)

	first, err := b.ListCampaigns(ctx, creds, acc)
	require.NoError(t, err)
	require.Len(t, first, 1)
	m1 := first[0].Metrics
	assert.Positive(t, m1.Impressions)
	assert.LessOrEqual(t, m1.Clicks, m1.Impressions)

	// same clock, same snapshot
	again, _ := b.ListCampaigns(ctx, creds, acc)
	assert.Equal(t, m1, again[0].Metrics)

	clk.Advance(time.Hour)
	later, _ := b.ListCampaigns(ctx, creds, acc)
	assert.Greater(t, later[0].Metrics.Impressions, m1.Impressions)
	assert.True(t, later[0].Metrics.AsOf.After(m1.AsOf))

	// pausing freezes the snapshot
	require.NoError(t, b.SetCampaignStatus(ctx, creds, acc, id, domain.StatusPaused))
	frozen, _ := b.GetCampaign(ctx, creds, acc, id)
	clk.Advance(time.Hour)
	still, _ := b.GetCampaign(ctx, creds, acc, id)
	assert.Equal(t, frozen.Metrics, still.Metrics)
}

func TestInsightsDailySeries(t *testing.T) {
	b, clk, creds, acc := setup(t)
	ctx := context.Background()
	id := createCampaign(t, b, creds, acc)

	require.NoError(t, b.SetCampaignStatus(ctx, creds, acc, id, domain.StatusEnabled))
	clk.Advance(3 * 24 * time.Hour)

	ins, err := b.GetInsights(ctx, creds, acc, id, domain.RangeLast7Days)
	require.NoError(t, err)
	assert.Len(t, ins.Daily, 7)
	var sum int64
	for _, d := range ins.Daily {
		sum += d.Impressions
	}
	assert.Equal(t, ins.Summary.Impressions, sum)
	assert.Positive(t, sum)

	y, err := b.GetInsights(ctx, creds, acc, id, domain.RangeYesterday)
	require.NoError(t, err)
	require.Len(t, y.Daily, 1)
	assert.Equal(t, "2026-03-12", y.Daily[0].Date)
}

func TestForeignAccountRejected(t *testing.T) {
	b, _, creds, _ := setup(t)
	_, err := b.ListCampaigns(context.Background(), creds, AccountID("someone-else"))
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = b.ListCampaigns(context.Background(), domain.Credentials{}, "x")
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestAdGroupRequiresKnownCampaign(t *testing.T) {
	b, _, creds, acc := setup(t)
	_, err := b.CreateAdGroup(context.Background(), creds, acc, "customers/"+acc+"/campaigns/nope", "g")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
