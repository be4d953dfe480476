package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"ideaproof/internal/core/domain"
	"ideaproof/internal/core/port"
	"ideaproof/internal/metrics"
)

// DefaultRelayInterval is how often an open room's campaigns are polled.
const DefaultRelayInterval = 15 * time.Second

// MetricsRelay produces campaign-update events. For every account room
// with at least one subscriber it polls the owning user's backend and
// publishes each campaign whose snapshot moved forward.
type MetricsRelay struct {
	router    *ModeRouter
	sessions  port.SessionStore
	publisher port.UpdatePublisher
	snapshots port.SnapshotRepository
	interval  time.Duration
	logger    *slog.Logger

	mu     sync.Mutex
	relays map[string]*relay
	closed bool
	wg     sync.WaitGroup
}

type relay struct {
	userID    string
	accountID string
	cancel    context.CancelFunc
	last      map[string]domain.MetricsSnapshot
}

// NewMetricsRelay returns a relay. snapshots may be nil.
func NewMetricsRelay(
	router *ModeRouter,
	sessions port.SessionStore,
	publisher port.UpdatePublisher,
	snapshots port.SnapshotRepository,
	interval time.Duration,
	logger *slog.Logger,
) *MetricsRelay {
	if interval <= 0 {
		interval = DefaultRelayInterval
	}
	return &MetricsRelay{
		router:    router,
		sessions:  sessions,
		publisher: publisher,
		snapshots: snapshots,
		interval:  interval,
		logger:    logger.With(slog.String("component", "metrics_relay")),
		relays:    make(map[string]*relay),
	}
}

// Ensure starts polling accountID on behalf of userID unless a relay for
// the account already runs.
func (m *MetricsRelay) Ensure(userID, accountID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	if _, ok := m.relays[accountID]; ok {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	r := &relay{userID: userID, accountID: accountID, cancel: cancel, last: make(map[string]domain.MetricsSnapshot)}
	m.relays[accountID] = r
	m.wg.Add(1)
	go m.run(ctx, r)
	m.logger.Debug("relay started", slog.String("account_id", accountID), slog.String("user_id", userID))
}

// Release stops the relay of accountID.
func (m *MetricsRelay) Release(accountID string) {
	m.mu.Lock()
	r, ok := m.relays[accountID]
	if ok {
		delete(m.relays, accountID)
	}
	m.mu.Unlock()
	if ok {
		r.cancel()
	}
}

// ReleaseUser stops every relay owned by userID. It has the TeardownFunc
// signature.
func (m *MetricsRelay) ReleaseUser(_ context.Context, userID string) {
	m.mu.Lock()
	var victims []*relay
	for id, r := range m.relays {
		if r.userID == userID {
			victims = append(victims, r)
			delete(m.relays, id)
		}
	}
	m.mu.Unlock()
	for _, r := range victims {
		r.cancel()
	}
}

// Active reports whether accountID is being polled.
func (m *MetricsRelay) Active(accountID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.relays[accountID]
	return ok
}

// Close stops every relay and waits for the pollers to exit.
func (m *MetricsRelay) Close() {
	m.mu.Lock()
	m.closed = true
	for id, r := range m.relays {
		r.cancel()
		delete(m.relays, id)
	}
	m.mu.Unlock()
	m.wg.Wait()
}

func (m *MetricsRelay) run(ctx context.Context, r *relay) {
	defer m.wg.Done()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.poll(ctx, r)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.poll(ctx, r)
		}
	}
}

// poll looks the session up on every tick so that a mode switch or logout
// between ticks is honoured.
func (m *MetricsRelay) poll(ctx context.Context, r *relay) {
	sess, ok, err := m.sessions.Get(ctx, r.userID)
	if err != nil || !ok || !sess.Authenticated {
		if err != nil {
			metrics.RelayPollErrors.Inc()
			m.logger.Warn("relay session lookup failed", slog.String("user_id", r.userID), slog.Any("error", err))
		}
		return
	}
	_, backend, err := m.router.Resolve(ctx, port.Caller{UserID: r.userID, Mode: sess.Mode})
	if err != nil {
		return
	}

	start := time.Now()
	campaigns, err := backend.ListCampaigns(ctx, sess.Credentials, r.accountID)
	metrics.ObserveBackend(string(sess.Mode), "relay_list_campaigns", start, err)
	if err != nil {
		if ctx.Err() == nil {
			metrics.RelayPollErrors.Inc()
			m.logger.Warn("relay poll failed", slog.String("account_id", r.accountID), slog.Any("error", err))
		}
		return
	}

	for _, c := range campaigns {
		if ctx.Err() != nil {
			return
		}
		asOf := c.Metrics.AsOf
		if asOf.IsZero() {
			continue
		}
		if prev, seen := r.last[c.ID]; seen && (!asOf.After(prev.AsOf) || sameCounters(prev, c.Metrics)) {
			continue
		}
		r.last[c.ID] = c.Metrics

		update := domain.CampaignUpdate{
			AccountID:  r.accountID,
			CampaignID: c.ID,
			Metrics:    c.Metrics,
			Timestamp:  asOf,
		}
		if m.snapshots != nil {
			if err = m.snapshots.Append(ctx, sess.Mode, update); err != nil {
				m.logger.Warn("snapshot append failed", slog.String("campaign_id", c.ID), slog.Any("error", err))
			}
		}
		if err = m.publisher.Publish(ctx, update); err != nil {
			m.logger.Warn("publish failed", slog.String("campaign_id", c.ID), slog.Any("error", err))
		}
	}
}

// sameCounters ignores AsOf; the live backend stamps every read with the
// fetch time.
func sameCounters(a, b domain.MetricsSnapshot) bool {
	a.AsOf, b.AsOf = time.Time{}, time.Time{}
	return a == b
}
