package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"ideaproof/internal/core/domain"
	"ideaproof/internal/core/port"
)

// DefaultAuthTimeout is the ceiling for completing consent.
const DefaultAuthTimeout = 5 * time.Minute

// resolved attempts stay visible to Wait for this long.
const attemptRetention = time.Minute

// Authenticator implements port.AuthUseCase. Every attempt is a one-shot
// completion signal resolved exactly once: by the callback, by Cancel, by
// CancelUser or by the timeout. Whatever arrives after resolution is
// discarded.
type Authenticator struct {
	router  *ModeRouter
	timeout time.Duration
	logger  *slog.Logger

	mu       sync.Mutex
	attempts map[string]*attempt
}

type attempt struct {
	state   string
	userID  string
	mode    domain.Mode
	claimed bool // guarded by Authenticator.mu
	timer   *time.Timer

	once sync.Once
	done chan struct{}
	err  error
}

func (a *attempt) resolve(err error) {
	a.once.Do(func() {
		a.err = err
		close(a.done)
	})
}

// NewAuthenticator returns an authenticator. A non-positive timeout selects
// DefaultAuthTimeout.
func NewAuthenticator(router *ModeRouter, timeout time.Duration, logger *slog.Logger) *Authenticator {
	if timeout <= 0 {
		timeout = DefaultAuthTimeout
	}
	return &Authenticator{
		router:   router,
		timeout:  timeout,
		logger:   logger.With(slog.String("component", "authenticator")),
		attempts: make(map[string]*attempt),
	}
}

// Begin starts authentication of userID in mode. A backend that needs no
// consent authenticates immediately. Otherwise the returned state
// identifies the pending attempt and any older pending attempt of the user
// is cancelled.
func (a *Authenticator) Begin(ctx context.Context, userID string, mode domain.Mode) (port.AuthAttemptView, error) {
	const op = "auth.begin"
	if userID == "" {
		return port.AuthAttemptView{}, domain.NewValidationError(op, "user id is required")
	}
	backend, err := a.router.Backend(mode)
	if err != nil {
		return port.AuthAttemptView{}, err
	}

	state := uuid.NewString()
	start, err := backend.BeginAuth(ctx, userID, state)
	if err != nil {
		return port.AuthAttemptView{}, domain.NewServiceError(op, "could not obtain the authorization URL", err)
	}
	if start.Completed {
		a.CancelUser(ctx, userID)
		if err = a.router.Activate(ctx, userID, mode, start.Credentials); err != nil {
			return port.AuthAttemptView{}, err
		}
		return port.AuthAttemptView{Authenticated: true}, nil
	}

	a.CancelUser(ctx, userID)
	att := &attempt{state: state, userID: userID, mode: mode, done: make(chan struct{})}
	a.mu.Lock()
	a.attempts[state] = att
	att.timer = time.AfterFunc(a.timeout, func() { a.expire(state) })
	a.mu.Unlock()

	a.logger.Info("authentication started", slog.String("user_id", userID), slog.String("mode", string(mode)))
	return port.AuthAttemptView{State: state, AuthURL: start.URL}, nil
}

// Complete exchanges the consent code of a pending attempt and stores the
// authenticated session. A completion for an attempt that is unknown,
// already resolved or cancelled during the exchange is discarded.
func (a *Authenticator) Complete(ctx context.Context, mode domain.Mode, state, code string) error {
	const op = "auth.complete"
	if state == "" || code == "" {
		return domain.NewValidationError(op, "state and code are required")
	}

	a.mu.Lock()
	att, ok := a.attempts[state]
	pending := ok && !att.claimed
	a.mu.Unlock()
	if !pending {
		return a.stale(op, state)
	}
	if att.mode != mode {
		return domain.NewConfigurationError(op, "callback mode does not match the pending authentication")
	}

	backend, err := a.router.Backend(mode)
	if err != nil {
		return err
	}
	creds, exchangeErr := backend.ExchangeCode(ctx, code)

	// The attempt may have been cancelled or timed out during the exchange.
	if !a.claim(att) {
		return a.stale(op, state)
	}
	if exchangeErr != nil {
		err = domain.NewServiceError(op, "the ad platform rejected the authorization code", exchangeErr)
		att.resolve(err)
		return err
	}
	if err = a.router.Activate(ctx, att.userID, mode, creds); err != nil {
		att.resolve(err)
		return err
	}
	att.resolve(nil)
	a.logger.Info("authentication completed", slog.String("user_id", att.userID), slog.String("mode", string(mode)))
	return nil
}

// Cancel resolves a pending attempt as cancelled, e.g. when the consent
// window was closed. Cancelling a resolved or unknown attempt is a no-op.
func (a *Authenticator) Cancel(state string) error {
	a.mu.Lock()
	att, ok := a.attempts[state]
	a.mu.Unlock()
	if ok && a.claim(att) {
		att.resolve(domain.NewAuthCancelled("auth.cancel"))
	}
	return nil
}

// CancelUser cancels every pending attempt of userID. It has the
// TeardownFunc signature so the mode router can call it on switch and
// logout.
func (a *Authenticator) CancelUser(_ context.Context, userID string) {
	a.mu.Lock()
	var victims []*attempt
	for _, att := range a.attempts {
		if att.userID == userID && !att.claimed {
			victims = append(victims, att)
		}
	}
	a.mu.Unlock()
	for _, att := range victims {
		if a.claim(att) {
			att.resolve(domain.NewAuthCancelled("auth.cancel"))
		}
	}
}

// Wait blocks until the attempt resolves. It returns nil on success,
// AuthTimeout when consent was not completed in time and AuthCancelled when
// the attempt or ctx was cancelled.
func (a *Authenticator) Wait(ctx context.Context, state string) error {
	a.mu.Lock()
	att, ok := a.attempts[state]
	a.mu.Unlock()
	if !ok {
		return domain.NewValidationError("auth.wait", "unknown authentication state")
	}
	select {
	case <-att.done:
		return att.err
	case <-ctx.Done():
		return domain.NewAuthCancelled("auth.wait")
	}
}

func (a *Authenticator) expire(state string) {
	a.mu.Lock()
	att, ok := a.attempts[state]
	a.mu.Unlock()
	if ok && a.claim(att) {
		att.resolve(domain.NewAuthTimeout("auth.wait"))
		a.logger.Info("authentication timed out", slog.String("user_id", att.userID))
	}
}

// claim marks att resolved-in-progress. Only the first claimer may resolve
// it; the attempt is forgotten after attemptRetention.
func (a *Authenticator) claim(att *attempt) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if att.claimed || a.attempts[att.state] != att {
		return false
	}
	att.claimed = true
	if att.timer != nil {
		att.timer.Stop()
	}
	time.AfterFunc(attemptRetention, func() {
		a.mu.Lock()
		if a.attempts[att.state] == att {
			delete(a.attempts, att.state)
		}
		a.mu.Unlock()
	})
	return true
}

func (a *Authenticator) stale(op, state string) error {
	a.logger.Warn("discarding stale authentication completion", slog.String("state", state))
	return &domain.Error{Kind: domain.KindAuthCancelled, Op: op, Message: "authentication is no longer pending"}
}
