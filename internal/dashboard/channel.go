package dashboard

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/net/websocket"

	"ideaproof/internal/core/domain"
	"ideaproof/internal/realtime"
)

const (
	DefaultPollInterval = 30 * time.Second
	DefaultStaleAfter   = 3
)

// UpdateHandler receives the campaign updates of one account.
type UpdateHandler func(domain.CampaignUpdate)

// CampaignLister is the REST fallback used while the push channel is down.
type CampaignLister interface {
	ListCampaigns(ctx context.Context, accountID string) ([]domain.Campaign, error)
}

// ChannelConfig configures a Channel. Only URL and Origin are required.
type ChannelConfig struct {
	URL    string
	Origin string

	// Poller is queried every PollInterval while disconnected. Nil
	// disables the fallback.
	Poller       CampaignLister
	PollInterval time.Duration

	// StaleAfter consecutive failed connects mark the data stale and fire
	// OnStale once, but only while the latest poll failed too. Without a
	// Poller failed connects alone are enough.
	StaleAfter int
	OnStale    func()

	// NewBackOff builds the reconnect policy; the default is exponential
	// and never gives up.
	NewBackOff func() backoff.BackOff

	Logger *slog.Logger
}

// Channel keeps one push connection alive and routes its updates to the
// handler subscribed for each account.
type Channel struct {
	cfg    ChannelConfig
	logger *slog.Logger

	mu           sync.Mutex
	handlers     map[string]UpdateHandler
	conn         *websocket.Conn
	dialFailures int
	pollFailed   bool
	stale        bool
	lastErr      error
}

func NewChannel(cfg ChannelConfig) *Channel {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.StaleAfter <= 0 {
		cfg.StaleAfter = DefaultStaleAfter
	}
	if cfg.NewBackOff == nil {
		cfg.NewBackOff = func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 500 * time.Millisecond
			b.MaxInterval = 30 * time.Second
			b.MaxElapsedTime = 0
			return b
		}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Channel{
		cfg:      cfg,
		logger:   logger.With(slog.String("component", "dashboard_channel")),
		handlers: make(map[string]UpdateHandler),
	}
}

// Subscribe routes updates of accountID to h, replacing any earlier handler.
// The room is joined now when connected, otherwise on the next connect.
func (c *Channel) Subscribe(accountID string, h UpdateHandler) {
	c.mu.Lock()
	_, existed := c.handlers[accountID]
	c.handlers[accountID] = h
	conn := c.conn
	c.mu.Unlock()

	if conn != nil && !existed {
		c.send(conn, realtime.FrameJoin, accountID)
	}
}

func (c *Channel) Unsubscribe(accountID string) {
	c.mu.Lock()
	_, existed := c.handlers[accountID]
	delete(c.handlers, accountID)
	conn := c.conn
	c.mu.Unlock()

	if conn != nil && existed {
		c.send(conn, realtime.FrameLeave, accountID)
	}
}

func (c *Channel) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

// Stale reports whether both the push channel and the polling fallback are
// failing.
func (c *Channel) Stale() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stale
}

// Err returns the last failure as a ChannelDisconnected error while the
// data is stale, nil otherwise.
func (c *Channel) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.stale {
		return nil
	}
	return c.lastErr
}

// Run connects, re-joins every subscription and delivers updates until ctx
// ends. A lost connection is retried with backoff while the poller keeps
// the data fresh.
func (c *Channel) Run(ctx context.Context) error {
	pollCtx, stopPolling := context.WithCancel(ctx)
	defer stopPolling()
	go c.pollLoop(pollCtx)

	b := backoff.WithContext(c.cfg.NewBackOff(), ctx)
	for {
		connected, err := c.session(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if connected {
			b.Reset()
			c.logger.Info("push channel lost", slog.Any("error", err))
		} else {
			c.dialFailed(err)
		}

		wait := b.NextBackOff()
		if wait == backoff.Stop {
			return domain.NewChannelDisconnected("dashboard.run", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// session reports whether the dial succeeded and the error that ended it.
func (c *Channel) session(ctx context.Context) (bool, error) {
	wsCfg, err := websocket.NewConfig(c.cfg.URL, c.cfg.Origin)
	if err != nil {
		return false, err
	}
	conn, err := wsCfg.DialContext(ctx)
	if err != nil {
		return false, err
	}
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	c.mu.Lock()
	c.conn = conn
	accounts := make([]string, 0, len(c.handlers))
	for id := range c.handlers {
		accounts = append(accounts, id)
	}
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.conn = nil
		c.mu.Unlock()
		_ = conn.Close()
	}()

	c.connected()
	for _, id := range accounts {
		if err = sendFrame(conn, realtime.FrameJoin, id); err != nil {
			return true, err
		}
	}

	for {
		var frame realtime.Frame
		if err = websocket.JSON.Receive(conn, &frame); err != nil {
			return true, err
		}
		c.handleFrame(frame)
	}
}

func (c *Channel) handleFrame(frame realtime.Frame) {
	switch frame.Type {
	case realtime.FrameCampaignUpdate:
		var u domain.CampaignUpdate
		if err := json.Unmarshal(frame.Payload, &u); err != nil {
			c.logger.Warn("malformed campaign update", slog.Any("error", err))
			return
		}
		c.connected()
		c.deliver(u)
	case realtime.FrameError:
		var e realtime.ErrorPayload
		_ = json.Unmarshal(frame.Payload, &e)
		c.logger.Warn("push channel error", slog.String("kind", string(e.Kind)), slog.String("error", e.Error))
	default:
		c.logger.Debug("push frame", slog.String("type", frame.Type))
	}
}

func (c *Channel) deliver(u domain.CampaignUpdate) {
	c.mu.Lock()
	h := c.handlers[u.AccountID]
	c.mu.Unlock()
	if h != nil {
		h(u)
	}
}

func (c *Channel) pollLoop(ctx context.Context) {
	if c.cfg.Poller == nil {
		return
	}
	ticker := time.NewTicker(c.cfg.PollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !c.Connected() {
				c.poll(ctx)
			}
		}
	}
}

// poll synthesizes updates from the campaign list of every subscribed
// account.
func (c *Channel) poll(ctx context.Context) {
	c.mu.Lock()
	accounts := make([]string, 0, len(c.handlers))
	for id := range c.handlers {
		accounts = append(accounts, id)
	}
	c.mu.Unlock()

	for _, accountID := range accounts {
		campaigns, err := c.cfg.Poller.ListCampaigns(ctx, accountID)
		if err != nil {
			if ctx.Err() == nil {
				c.pollResult(err)
			}
			continue
		}
		c.pollResult(nil)
		for _, camp := range campaigns {
			c.deliver(domain.CampaignUpdate{
				AccountID:  accountID,
				CampaignID: camp.ID,
				Metrics:    camp.Metrics,
				Timestamp:  camp.Metrics.AsOf,
			})
		}
	}
}

func (c *Channel) dialFailed(err error) {
	c.mu.Lock()
	c.dialFailures++
	c.lastErr = domain.NewChannelDisconnected("dashboard.dial", err)
	fire := c.markStale()
	c.mu.Unlock()

	c.logger.Debug("push connect failed", slog.Any("error", err))
	c.fireStale(fire)
}

// pollResult records the outcome of one fallback poll. A successful poll
// keeps the data fresh no matter how often connects fail.
func (c *Channel) pollResult(err error) {
	c.mu.Lock()
	if err == nil {
		c.pollFailed = false
		c.stale = false
		c.lastErr = nil
		c.mu.Unlock()
		return
	}
	c.pollFailed = true
	c.lastErr = domain.NewChannelDisconnected("dashboard.poll", err)
	fire := c.markStale()
	c.mu.Unlock()

	c.logger.Debug("campaign poll failed", slog.Any("error", err))
	c.fireStale(fire)
}

func (c *Channel) connected() {
	c.mu.Lock()
	c.dialFailures = 0
	c.pollFailed = false
	c.stale = false
	c.lastErr = nil
	c.mu.Unlock()
}

// markStale requires c.mu and reports whether the data just became stale.
func (c *Channel) markStale() bool {
	if c.stale || c.dialFailures < c.cfg.StaleAfter {
		return false
	}
	if c.cfg.Poller != nil && !c.pollFailed {
		return false
	}
	c.stale = true
	return true
}

func (c *Channel) fireStale(fire bool) {
	if fire && c.cfg.OnStale != nil {
		c.cfg.OnStale()
	}
}

func (c *Channel) send(conn *websocket.Conn, frameType, accountID string) {
	if err := sendFrame(conn, frameType, accountID); err != nil {
		c.logger.Debug("send failed", slog.String("type", frameType), slog.Any("error", err))
	}
}

func sendFrame(conn *websocket.Conn, frameType, accountID string) error {
	frame, err := realtime.NewFrame(frameType, realtime.AccountPayload{AccountID: accountID})
	if err != nil {
		return err
	}
	return websocket.JSON.Send(conn, frame)
}
