package realtime

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ideaproof/internal/core/domain"
)

type collector struct {
	mu  sync.Mutex
	got []string
}

func (c *collector) handle(u domain.CampaignUpdate) {
	c.mu.Lock()
	c.got = append(c.got, u.CampaignID)
	c.mu.Unlock()
}

func (c *collector) ids() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.got...)
}

func newTestHub(size int, hooks Hooks) *Hub {
	return NewHub(size, hooks, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func update(account, campaign string) domain.CampaignUpdate {
	return domain.CampaignUpdate{AccountID: account, CampaignID: campaign, Timestamp: time.Now()}
}

func TestHubDeliversInPublishOrder(t *testing.T) {
	hub := newTestHub(0, Hooks{})
	defer hub.Close()

	c := &collector{}
	require.NoError(t, hub.Subscribe("s1", "u1", "acc", c.handle))

	want := []string{"a", "b", "c", "d", "e"}
	for _, id := range want {
		require.NoError(t, hub.Publish(context.Background(), update("acc", id)))
	}
	require.NoError(t, hub.Publish(context.Background(), update("other", "x")))

	assert.Eventually(t, func() bool { return len(c.ids()) == len(want) }, time.Second, 5*time.Millisecond)
	assert.Equal(t, want, c.ids())
}

func TestHubDropsOldestWhenQueueIsFull(t *testing.T) {
	hub := newTestHub(2, Hooks{})
	defer hub.Close()

	release := make(chan struct{})
	started := make(chan struct{}, 1)
	c := &collector{}
	require.NoError(t, hub.Subscribe("s1", "u1", "acc", func(u domain.CampaignUpdate) {
		if u.CampaignID == "first" {
			started <- struct{}{}
			<-release
		}
		c.handle(u)
	}))

	ctx := context.Background()
	require.NoError(t, hub.Publish(ctx, update("acc", "first")))
	<-started

	// the handler is blocked; the queue holds at most two entries
	for _, id := range []string{"1", "2", "3", "4"} {
		require.NoError(t, hub.Publish(ctx, update("acc", id)))
	}
	close(release)

	assert.Eventually(t, func() bool { return len(c.ids()) == 3 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"first", "3", "4"}, c.ids())
}

func TestHubResubscribeReplacesHandler(t *testing.T) {
	hub := newTestHub(0, Hooks{})
	defer hub.Close()

	first, second := &collector{}, &collector{}
	require.NoError(t, hub.Subscribe("s1", "u1", "acc", first.handle))
	require.NoError(t, hub.Subscribe("s1", "u1", "acc", second.handle))
	assert.Equal(t, 1, hub.Subscribers("acc"))

	require.NoError(t, hub.Publish(context.Background(), update("acc", "c1")))
	assert.Eventually(t, func() bool { return len(second.ids()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Empty(t, first.ids())
}

func TestHubRoomHooks(t *testing.T) {
	var (
		mu     sync.Mutex
		events []string
	)
	record := func(s string) {
		mu.Lock()
		events = append(events, s)
		mu.Unlock()
	}
	hub := newTestHub(0, Hooks{
		OnRoomOpen:  func(userID, accountID string) { record("open " + userID + " " + accountID) },
		OnRoomClose: func(accountID string) { record("close " + accountID) },
	})
	defer hub.Close()

	noop := func(domain.CampaignUpdate) {}
	require.NoError(t, hub.Subscribe("s1", "u1", "acc", noop))
	require.NoError(t, hub.Subscribe("s2", "u2", "acc", noop))
	hub.Unsubscribe("s1", "acc")
	hub.Unsubscribe("s1", "acc")
	hub.UnsubscribeAll("s2")

	assert.Equal(t, []string{"open u1 acc", "close acc"}, events)
	assert.Zero(t, hub.Subscribers("acc"))
}

func TestHubUnsubscribeUser(t *testing.T) {
	hub := newTestHub(0, Hooks{})
	defer hub.Close()

	noop := func(domain.CampaignUpdate) {}
	require.NoError(t, hub.Subscribe("s1", "u1", "a1", noop))
	require.NoError(t, hub.Subscribe("s1", "u1", "a2", noop))
	require.NoError(t, hub.Subscribe("s2", "u2", "a1", noop))

	hub.UnsubscribeUser(context.Background(), "u1")

	assert.Equal(t, 1, hub.Subscribers("a1"))
	assert.Zero(t, hub.Subscribers("a2"))
}

func TestHubRejectsAfterClose(t *testing.T) {
	hub := newTestHub(0, Hooks{})
	noop := func(domain.CampaignUpdate) {}

	err := hub.Subscribe("", "u1", "acc", noop)
	assert.ErrorIs(t, err, domain.ErrValidation)

	hub.Close()
	assert.Error(t, hub.Subscribe("s1", "u1", "acc", noop))
	assert.Error(t, hub.Publish(context.Background(), update("acc", "c1")))
}
