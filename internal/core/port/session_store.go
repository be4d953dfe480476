package port

import (
	"context"

	"ideaproof/internal/core/domain"
)

// SessionStore holds sessions keyed by user id. It is an outbound port so
// that the in-process map can be replaced by a shared store.
//
// Known limitation: callers perform Get-modify-Put sequences without a lock
// spanning them, so two concurrent requests for the same user race and the
// last Put wins. The orchestrator accepts this, except that a write-back
// after a slow backend call re-reads the session first so a logout or mode
// switch is never undone.
type SessionStore interface {
	// Get returns the session and whether it exists.
	Get(ctx context.Context, userID string) (domain.Session, bool, error)
	// Put stores or replaces the session of s.UserID.
	Put(ctx context.Context, s domain.Session) error
	// Delete removes the session; deleting a missing session is not an
	// error.
	Delete(ctx context.Context, userID string) error
}

// SnapshotRepository records metrics snapshots for the dashboard history.
type SnapshotRepository interface {
	// Append stores the snapshot carried by update. Storing the same
	// campaign and timestamp twice is a no-op.
	Append(ctx context.Context, mode domain.Mode, update domain.CampaignUpdate) error
	// History returns up to limit snapshots of the campaign, newest first.
	History(ctx context.Context, mode domain.Mode, campaignID string, limit int) ([]domain.MetricsSnapshot, error)
}

// UpdatePublisher emits campaign-update events to the account's room.
type UpdatePublisher interface {
	Publish(ctx context.Context, update domain.CampaignUpdate) error
}
