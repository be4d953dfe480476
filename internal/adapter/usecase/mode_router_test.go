package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ideaproof/internal/adapter/memory"
	"ideaproof/internal/core/domain"
	"ideaproof/internal/core/port"
	"ideaproof/internal/core/port/mocks"
)

func newRouter(t *testing.T) (*ModeRouter, *memory.SessionStore) {
	t.Helper()
	demo := mocks.NewMockAdBackend(t)
	demo.EXPECT().Mode().Return(domain.ModeDemo)
	live := mocks.NewMockAdBackend(t)
	live.EXPECT().Mode().Return(domain.ModeLive)
	sessions := memory.NewSessionStore()
	return NewModeRouter(sessions, discardLogger(), demo, live), sessions
}

func TestSwitchTearsDownAndClearsAccounts(t *testing.T) {
	router, sessions := newRouter(t)
	ctx := context.Background()

	var torn []string
	router.OnTeardown(func(_ context.Context, userID string) { torn = append(torn, userID) })

	require.NoError(t, sessions.Put(ctx, domain.Session{
		UserID:        "u1",
		Mode:          domain.ModeDemo,
		Authenticated: true,
		Accounts:      []domain.Account{{ID: "demo-1"}},
	}))

	require.NoError(t, router.Switch(ctx, "u1", domain.ModeLive))
	assert.Equal(t, []string{"u1"}, torn)

	sess, ok, _ := sessions.Get(ctx, "u1")
	require.True(t, ok)
	assert.Equal(t, domain.ModeLive, sess.Mode)
	assert.False(t, sess.Authenticated)
	assert.Empty(t, sess.Accounts)

	_, _, err := router.Resolve(ctx, port.Caller{UserID: "u1", Mode: domain.ModeLive})
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestSwitchToActiveModeIsNoop(t *testing.T) {
	router, sessions := newRouter(t)
	ctx := context.Background()

	called := false
	router.OnTeardown(func(context.Context, string) { called = true })
	require.NoError(t, sessions.Put(ctx, domain.Session{UserID: "u1", Mode: domain.ModeDemo, Authenticated: true}))

	require.NoError(t, router.Switch(ctx, "u1", domain.ModeDemo))
	assert.False(t, called)
	sess, _, _ := sessions.Get(ctx, "u1")
	assert.True(t, sess.Authenticated)
}

func TestResolveErrors(t *testing.T) {
	router, sessions := newRouter(t)
	ctx := context.Background()

	_, _, err := router.Resolve(ctx, port.Caller{Mode: domain.ModeDemo})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, _, err = router.Resolve(ctx, port.Caller{UserID: "u1", Mode: domain.Mode("sandbox")})
	assert.ErrorIs(t, err, domain.ErrConfiguration)

	_, _, err = router.Resolve(ctx, port.Caller{UserID: "u1", Mode: domain.ModeDemo})
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)

	require.NoError(t, sessions.Put(ctx, domain.Session{UserID: "u1", Mode: domain.ModeDemo, Authenticated: true}))
	_, _, err = router.Resolve(ctx, port.Caller{UserID: "u1", Mode: domain.ModeLive})
	assert.ErrorIs(t, err, domain.ErrConfiguration)

	sess, backend, err := router.Resolve(ctx, port.Caller{UserID: "u1", Mode: domain.ModeDemo})
	require.NoError(t, err)
	assert.Equal(t, "u1", sess.UserID)
	assert.NotNil(t, backend)
}

func TestActivateAcrossModesTearsDown(t *testing.T) {
	router, sessions := newRouter(t)
	ctx := context.Background()

	count := 0
	router.OnTeardown(func(context.Context, string) { count++ })
	require.NoError(t, sessions.Put(ctx, domain.Session{UserID: "u1", Mode: domain.ModeDemo, Authenticated: true}))

	require.NoError(t, router.Activate(ctx, "u1", domain.ModeDemo, domain.Credentials{}))
	assert.Equal(t, 0, count)
	require.NoError(t, router.Activate(ctx, "u1", domain.ModeLive, domain.Credentials{Subject: "x"}))
	assert.Equal(t, 1, count)

	sess, _, _ := sessions.Get(ctx, "u1")
	assert.Equal(t, domain.ModeLive, sess.Mode)
	assert.True(t, sess.Authenticated)
}

func TestLogoutResetsSession(t *testing.T) {
	router, sessions := newRouter(t)
	ctx := context.Background()
	svc := NewSessionService(router, discardLogger())

	torn := false
	router.OnTeardown(func(context.Context, string) { torn = true })
	require.NoError(t, sessions.Put(ctx, domain.Session{UserID: "u1", Mode: domain.ModeLive, Authenticated: true}))

	require.NoError(t, svc.Logout(ctx, "u1"))
	assert.True(t, torn)
	_, ok, _ := sessions.Get(ctx, "u1")
	assert.False(t, ok)

	assert.ErrorIs(t, svc.SwitchMode(ctx, "", domain.ModeDemo), domain.ErrValidation)
}
