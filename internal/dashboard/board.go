package dashboard

import (
	"context"
	"fmt"

	"ideaproof/internal/core/domain"
)

// historyDepth is how many recorded snapshots Load fetches per campaign.
const historyDepth = 50

// Board is the dashboard of one account: it loads the campaign list and
// history over REST, then keeps the aggregator fed from the channel.
type Board struct {
	accountID string
	api       *APIClient
	channel   *Channel
	agg       *Aggregator
}

func NewBoard(api *APIClient, channel *Channel, accountID string) *Board {
	return &Board{
		accountID: accountID,
		api:       api,
		channel:   channel,
		agg:       NewAggregator(accountID),
	}
}

// Load fetches the campaigns and their history and subscribes to updates.
// Calling it again refreshes the list and keeps the subscription.
func (b *Board) Load(ctx context.Context) error {
	campaigns, err := b.api.ListCampaigns(ctx, b.accountID)
	if err != nil {
		return err
	}
	b.agg.ApplyCampaigns(campaigns)
	for _, c := range campaigns {
		snaps, err := b.api.History(ctx, b.accountID, c.ID, historyDepth)
		if err != nil {
			return fmt.Errorf("history of %s: %w", c.ID, err)
		}
		b.agg.ApplyHistory(c.ID, snaps)
	}
	b.channel.Subscribe(b.accountID, func(u domain.CampaignUpdate) {
		b.agg.ApplyUpdate(u)
	})
	return nil
}

// Toggle flips a campaign between ENABLED and PAUSED.
func (b *Board) Toggle(ctx context.Context, campaignID string) (domain.CampaignStatus, error) {
	current, ok := b.agg.Status(campaignID)
	if !ok {
		return "", domain.NewValidationError("dashboard.toggle", "unknown campaign "+campaignID)
	}
	next := domain.StatusEnabled
	if current == domain.StatusEnabled {
		next = domain.StatusPaused
	}
	updated, err := b.api.SetStatus(ctx, b.accountID, campaignID, next)
	if err != nil {
		return "", err
	}
	b.agg.ApplyStatus(campaignID, updated.Status)
	return updated.Status, nil
}

// View returns the aggregated state with the channel's staleness.
func (b *Board) View() View {
	b.agg.SetStale(b.channel.Stale())
	return b.agg.View()
}

func (b *Board) Close() {
	b.channel.Unsubscribe(b.accountID)
}
