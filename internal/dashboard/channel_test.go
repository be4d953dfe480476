package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"

	"ideaproof/internal/core/domain"
	"ideaproof/internal/realtime"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakePush answers every join with joined plus one update naming the
// connection number. The first connection is dropped after its update.
type fakePush struct {
	mu    sync.Mutex
	conns int
	joins []string
}

func (f *fakePush) handler() websocket.Handler {
	return func(conn *websocket.Conn) {
		f.mu.Lock()
		f.conns++
		n := f.conns
		f.mu.Unlock()

		for {
			var frame realtime.Frame
			if err := websocket.JSON.Receive(conn, &frame); err != nil {
				return
			}
			if frame.Type != realtime.FrameJoin {
				continue
			}
			var p realtime.AccountPayload
			_ = json.Unmarshal(frame.Payload, &p)
			f.mu.Lock()
			f.joins = append(f.joins, p.AccountID)
			f.mu.Unlock()

			joined, _ := realtime.NewFrame(realtime.FrameJoined, p)
			_ = websocket.JSON.Send(conn, joined)
			update, _ := realtime.NewFrame(realtime.FrameCampaignUpdate, domain.CampaignUpdate{
				AccountID:  p.AccountID,
				CampaignID: fmt.Sprintf("c%d", n),
				Metrics:    domain.MetricsSnapshot{Clicks: int64(n), AsOf: time.Now()},
			})
			_ = websocket.JSON.Send(conn, update)
			if n == 1 {
				return
			}
		}
	}
}

func (f *fakePush) joined() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.joins...)
}

type received struct {
	mu  sync.Mutex
	ids []string
}

func (r *received) add(u domain.CampaignUpdate) {
	r.mu.Lock()
	r.ids = append(r.ids, u.CampaignID)
	r.mu.Unlock()
}

func (r *received) list() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.ids...)
}

func fastBackOff() backoff.BackOff { return backoff.NewConstantBackOff(10 * time.Millisecond) }

func TestChannelRejoinsAfterReconnect(t *testing.T) {
	push := &fakePush{}
	srv := httptest.NewServer(push.handler())
	t.Cleanup(srv.Close)

	ch := NewChannel(ChannelConfig{
		URL:        "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws",
		Origin:     srv.URL,
		NewBackOff: fastBackOff,
		Logger:     quietLogger(),
	})
	got := &received{}
	ch.Subscribe("acc", got.add)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ch.Run(ctx) }()

	assert.Eventually(t, func() bool { return len(got.list()) == 2 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"c1", "c2"}, got.list())
	assert.Equal(t, []string{"acc", "acc"}, push.joined())
	assert.False(t, ch.Stale())

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop")
	}
}

func TestChannelReplacesHandler(t *testing.T) {
	ch := NewChannel(ChannelConfig{URL: "ws://unused", Origin: "http://unused", Logger: quietLogger()})
	first, second := &received{}, &received{}
	ch.Subscribe("acc", first.add)
	ch.Subscribe("acc", second.add)

	ch.deliver(domain.CampaignUpdate{AccountID: "acc", CampaignID: "c1"})
	ch.deliver(domain.CampaignUpdate{AccountID: "other", CampaignID: "c2"})
	assert.Empty(t, first.list())
	assert.Equal(t, []string{"c1"}, second.list())

	ch.Unsubscribe("acc")
	ch.deliver(domain.CampaignUpdate{AccountID: "acc", CampaignID: "c3"})
	assert.Equal(t, []string{"c1"}, second.list())
}

type flakyLister struct {
	calls    atomic.Int32
	failures int32
}

func (l *flakyLister) ListCampaigns(_ context.Context, accountID string) ([]domain.Campaign, error) {
	if l.calls.Add(1) <= l.failures {
		return nil, errors.New("connection refused")
	}
	return []domain.Campaign{{ID: "polled", AccountID: accountID, Metrics: domain.MetricsSnapshot{AsOf: time.Now()}}}, nil
}

func (c *Channel) dialFailureCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dialFailures
}

func unreachableChannel(lister CampaignLister, onStale func()) *Channel {
	return NewChannel(ChannelConfig{
		URL:          "ws://127.0.0.1:1/ws",
		Origin:       "http://127.0.0.1:1",
		Poller:       lister,
		PollInterval: 5 * time.Millisecond,
		StaleAfter:   3,
		OnStale:      onStale,
		NewBackOff:   func() backoff.BackOff { return backoff.NewConstantBackOff(2 * time.Millisecond) },
		Logger:       quietLogger(),
	})
}

func TestChannelFallsBackToPollingAndReportsStale(t *testing.T) {
	var staleEvents atomic.Int32
	ch := unreachableChannel(&flakyLister{failures: 20}, func() { staleEvents.Add(1) })
	got := &received{}
	ch.Subscribe("acc", got.add)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() { _ = ch.Run(ctx) }()

	assert.Eventually(t, func() bool { return staleEvents.Load() == 1 }, 2*time.Second, time.Millisecond)
	assert.Eventually(t, func() bool { return len(got.list()) > 0 }, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, "polled", got.list()[0])
	assert.False(t, ch.Stale())
	assert.NoError(t, ch.Err())
	assert.Equal(t, int32(1), staleEvents.Load())
}

func TestChannelHealthyPollingIsNeverStale(t *testing.T) {
	var staleEvents atomic.Int32
	ch := unreachableChannel(&flakyLister{}, func() { staleEvents.Add(1) })
	got := &received{}
	ch.Subscribe("acc", got.add)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() { _ = ch.Run(ctx) }()

	assert.Eventually(t, func() bool {
		return len(got.list()) >= 5 && ch.dialFailureCount() >= 10
	}, 2*time.Second, 5*time.Millisecond)
	assert.Zero(t, staleEvents.Load())
	assert.False(t, ch.Stale())
	assert.NoError(t, ch.Err())
}

func TestChannelErrIsChannelDisconnected(t *testing.T) {
	ch := NewChannel(ChannelConfig{URL: "ws://unused", Origin: "http://unused", StaleAfter: 1, Logger: quietLogger()})
	assert.NoError(t, ch.Err())
	ch.dialFailed(errors.New("boom"))

	require.Error(t, ch.Err())
	assert.ErrorIs(t, ch.Err(), domain.ErrChannelDisconnected)
	assert.True(t, ch.Stale())
}

func TestChannelStaleNeedsFailedPoll(t *testing.T) {
	var staleEvents int
	ch := NewChannel(ChannelConfig{
		URL:        "ws://unused",
		Origin:     "http://unused",
		Poller:     &flakyLister{},
		StaleAfter: 2,
		OnStale:    func() { staleEvents++ },
		Logger:     quietLogger(),
	})

	ch.dialFailed(errors.New("refused"))
	ch.dialFailed(errors.New("refused"))
	ch.dialFailed(errors.New("refused"))
	assert.False(t, ch.Stale())
	assert.NoError(t, ch.Err())

	ch.pollResult(errors.New("timeout"))
	assert.True(t, ch.Stale())
	assert.ErrorIs(t, ch.Err(), domain.ErrChannelDisconnected)
	assert.Equal(t, 1, staleEvents)

	ch.pollResult(nil)
	ch.dialFailed(errors.New("refused"))
	assert.False(t, ch.Stale())
	assert.Equal(t, 1, staleEvents)

	ch.pollResult(errors.New("timeout"))
	assert.True(t, ch.Stale())
	assert.Equal(t, 2, staleEvents)
}
