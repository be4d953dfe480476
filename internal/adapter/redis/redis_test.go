package redis

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ideaproof/internal/config/configs"
	"ideaproof/internal/core/domain"
)

type chanPublisher chan domain.CampaignUpdate

func (c chanPublisher) Publish(_ context.Context, u domain.CampaignUpdate) error {
	select {
	case c <- u:
	default:
	}
	return nil
}

// connectForTest needs a reachable server in REDIS_TEST_ADDRESS.
func connectForTest(t *testing.T) configs.Redis {
	t.Helper()
	addr := os.Getenv("REDIS_TEST_ADDRESS")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDRESS not set")
	}
	return configs.Redis{Address: addr, Channel: "ideaproof-test:" + uuid.NewString()}
}

func TestSessionStoreRoundTrip(t *testing.T) {
	cfg := connectForTest(t)
	ctx := context.Background()
	client, err := Connect(ctx, cfg)
	require.NoError(t, err)
	defer client.Close()

	store := NewSessionStore(client, time.Minute)
	userID := uuid.NewString()

	_, ok, err := store.Get(ctx, userID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Put(ctx, domain.Session{
		UserID: userID, Mode: domain.ModeLive, Authenticated: true,
		Credentials: domain.Credentials{Subject: "s", Token: []byte(`{"access_token":"x"}`)},
		Accounts:    []domain.Account{{ID: "123"}},
	}))
	got, ok, err := store.Get(ctx, userID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got.HasAccount("123"))
	assert.Equal(t, []byte(`{"access_token":"x"}`), got.Credentials.Token)

	ttl, err := client.TTL(ctx, sessionPrefix+userID).Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)

	require.NoError(t, store.Delete(ctx, userID))
	_, ok, _ = store.Get(ctx, userID)
	assert.False(t, ok)
}

func TestUpdateBusForwards(t *testing.T) {
	cfg := connectForTest(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	client, err := Connect(ctx, cfg)
	require.NoError(t, err)
	defer client.Close()

	bus := NewUpdateBus(client, cfg.Channel, slog.New(slog.NewTextHandler(io.Discard, nil)))
	local := make(chanPublisher, 1)
	go func() { _ = bus.Forward(ctx, local) }()

	want := domain.CampaignUpdate{AccountID: "a", CampaignID: "c", Timestamp: time.Now().UTC().Truncate(time.Second)}
	require.Eventually(t, func() bool {
		_ = bus.Publish(ctx, want)
		select {
		case got := <-local:
			return got.CampaignID == want.CampaignID && got.Timestamp.Equal(want.Timestamp)
		case <-time.After(50 * time.Millisecond):
			return false
		}
	}, 3*time.Second, 10*time.Millisecond)
}
