package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"ideaproof/internal/core/domain"
)

// DB is the subset of pgxpool.Pool used by the repository.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

var _ DB = (*pgxpool.Pool)(nil)

// SnapshotRepository implements port.SnapshotRepository on the
// metrics_snapshots table.
type SnapshotRepository struct {
	db DB
}

func NewSnapshotRepository(db DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Append stores the snapshot of update. A snapshot with the same mode,
// campaign and timestamp is already stored and is ignored.
func (r *SnapshotRepository) Append(ctx context.Context, mode domain.Mode, update domain.CampaignUpdate) error {
	m := update.Metrics
	asOf := m.AsOf
	if asOf.IsZero() {
		asOf = update.Timestamp
	}
	_, err := r.db.Exec(ctx, `
        INSERT INTO metrics_snapshots
            (mode, account_id, campaign_id, impressions, clicks, ctr, cost_minor, conversions, as_of)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        ON CONFLICT (mode, campaign_id, as_of) DO NOTHING`,
		string(mode), update.AccountID, update.CampaignID,
		m.Impressions, m.Clicks, m.CTR, m.CostMinorUnits, m.Conversions, asOf.UTC(),
	)
	if err != nil {
		return fmt.Errorf("append snapshot %s: %w", update.CampaignID, err)
	}
	return nil
}

// History returns up to limit snapshots of campaignID, newest first.
func (r *SnapshotRepository) History(ctx context.Context, mode domain.Mode, campaignID string, limit int) ([]domain.MetricsSnapshot, error) {
	rows, err := r.db.Query(ctx, `
        SELECT impressions, clicks, ctr, cost_minor, conversions, as_of
        FROM metrics_snapshots
        WHERE mode = $1 AND campaign_id = $2
        ORDER BY as_of DESC
        LIMIT $3`,
		string(mode), campaignID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query history %s: %w", campaignID, err)
	}
	history, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MetricsSnapshot, error) {
		var s domain.MetricsSnapshot
		err := row.Scan(&s.Impressions, &s.Clicks, &s.CTR, &s.CostMinorUnits, &s.Conversions, &s.AsOf)
		s.AsOf = s.AsOf.UTC()
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan history %s: %w", campaignID, err)
	}
	return history, nil
}
