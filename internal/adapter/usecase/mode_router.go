package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"ideaproof/internal/core/domain"
	"ideaproof/internal/core/port"
)

// TeardownFunc releases everything a user holds in the current mode:
// realtime rooms, relays and pending authentication.
type TeardownFunc func(ctx context.Context, userID string)

// ModeRouter owns one backend per mode and resolves the backend of a
// session's active mode. Switching mode tears down the user's live state and
// drops cached accounts, so entities never cross modes.
type ModeRouter struct {
	backends map[domain.Mode]port.AdBackend
	sessions port.SessionStore
	logger   *slog.Logger

	mu        sync.RWMutex
	teardowns []TeardownFunc
}

// NewModeRouter registers the given backends under their own Mode.
func NewModeRouter(sessions port.SessionStore, logger *slog.Logger, backends ...port.AdBackend) *ModeRouter {
	r := &ModeRouter{
		backends: make(map[domain.Mode]port.AdBackend, len(backends)),
		sessions: sessions,
		logger:   logger.With(slog.String("component", "mode_router")),
	}
	for _, b := range backends {
		r.backends[b.Mode()] = b
	}
	return r
}

// OnTeardown registers fn to run on mode switch and logout.
func (r *ModeRouter) OnTeardown(fn TeardownFunc) {
	r.mu.Lock()
	r.teardowns = append(r.teardowns, fn)
	r.mu.Unlock()
}

// Backend returns the strategy registered for mode.
func (r *ModeRouter) Backend(mode domain.Mode) (port.AdBackend, error) {
	b, ok := r.backends[mode]
	if !ok {
		return nil, domain.NewConfigurationError("mode", fmt.Sprintf("mode %q is not available", mode))
	}
	return b, nil
}

// Resolve loads the caller's session and returns it with the backend of its
// mode. The caller's mode must match the session's mode and the session
// must be authenticated.
func (r *ModeRouter) Resolve(ctx context.Context, caller port.Caller) (domain.Session, port.AdBackend, error) {
	const op = "mode.resolve"
	if caller.UserID == "" {
		return domain.Session{}, nil, domain.NewValidationError(op, "user id is required")
	}
	backend, err := r.Backend(caller.Mode)
	if err != nil {
		return domain.Session{}, nil, err
	}
	sess, ok, err := r.sessions.Get(ctx, caller.UserID)
	if err != nil {
		return domain.Session{}, nil, domain.NewServiceError(op, "session store unavailable", err)
	}
	if !ok {
		return domain.Session{}, nil, domain.NewNotAuthenticated(op)
	}
	if sess.Mode != caller.Mode {
		return domain.Session{}, nil, domain.NewConfigurationError(op,
			fmt.Sprintf("session is in %s mode, switch modes before using the %s variant", sess.Mode, caller.Mode))
	}
	if !sess.Authenticated {
		return domain.Session{}, nil, domain.NewNotAuthenticated(op)
	}
	return sess, backend, nil
}

// Switch moves userID to mode. The previous mode's state is torn down and
// the new session starts unauthenticated. Switching to the active mode is a
// no-op.
func (r *ModeRouter) Switch(ctx context.Context, userID string, mode domain.Mode) error {
	if _, err := r.Backend(mode); err != nil {
		return err
	}
	sess, ok, err := r.sessions.Get(ctx, userID)
	if err != nil {
		return domain.NewServiceError("mode.switch", "session store unavailable", err)
	}
	if ok && sess.Mode == mode {
		return nil
	}
	if ok {
		r.teardown(ctx, userID)
		r.logger.Info("mode switched", slog.String("user_id", userID), slog.String("from", string(sess.Mode)), slog.String("to", string(mode)))
	}
	return r.sessions.Put(ctx, domain.Session{UserID: userID, Mode: mode})
}

// Activate stores an authenticated session for mode, switching first when
// the user was in another mode.
func (r *ModeRouter) Activate(ctx context.Context, userID string, mode domain.Mode, creds domain.Credentials) error {
	sess, ok, err := r.sessions.Get(ctx, userID)
	if err != nil {
		return domain.NewServiceError("mode.activate", "session store unavailable", err)
	}
	if ok && sess.Mode != mode {
		r.teardown(ctx, userID)
	}
	return r.sessions.Put(ctx, domain.Session{
		UserID:        userID,
		Mode:          mode,
		Authenticated: true,
		Credentials:   creds,
	})
}

// Reset tears down and forgets the user's session.
func (r *ModeRouter) Reset(ctx context.Context, userID string) error {
	r.teardown(ctx, userID)
	return r.sessions.Delete(ctx, userID)
}

func (r *ModeRouter) teardown(ctx context.Context, userID string) {
	r.mu.RLock()
	fns := make([]TeardownFunc, len(r.teardowns))
	copy(fns, r.teardowns)
	r.mu.RUnlock()
	for _, fn := range fns {
		fn(ctx, userID)
	}
}
