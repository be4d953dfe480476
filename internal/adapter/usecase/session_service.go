package usecase

import (
	"context"
	"log/slog"

	"ideaproof/internal/core/domain"
)

// SessionService implements port.SessionUseCase.
type SessionService struct {
	router *ModeRouter
	logger *slog.Logger
}

func NewSessionService(router *ModeRouter, logger *slog.Logger) *SessionService {
	return &SessionService{router: router, logger: logger.With(slog.String("component", "session_service"))}
}

// SwitchMode moves the user to mode. The previous mode's rooms, relays and
// pending authentication are released and the user must authenticate again.
func (s *SessionService) SwitchMode(ctx context.Context, userID string, mode domain.Mode) error {
	if userID == "" {
		return domain.NewValidationError("session.switch", "user id is required")
	}
	return s.router.Switch(ctx, userID, mode)
}

// Logout discards the session and everything attached to it.
func (s *SessionService) Logout(ctx context.Context, userID string) error {
	if userID == "" {
		return domain.NewValidationError("session.logout", "user id is required")
	}
	if err := s.router.Reset(ctx, userID); err != nil {
		return domain.NewServiceError("session.logout", "session store unavailable", err)
	}
	s.logger.Info("user logged out", slog.String("user_id", userID))
	return nil
}
