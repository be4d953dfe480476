package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"ideaproof/internal/core/domain"
	"ideaproof/internal/core/port"
)

// errorResponse is the envelope of every failed request.
type errorResponse struct {
	Error    string      `json:"error"`
	Kind     domain.Kind `json:"kind,omitempty"`
	Guidance string      `json:"guidance,omitempty"`
}

func statusOf(kind domain.Kind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindGateBlocked:
		return http.StatusForbidden
	case domain.KindNotAuthenticated:
		return http.StatusUnauthorized
	case domain.KindConfiguration, domain.KindAuthCancelled:
		return http.StatusConflict
	case domain.KindAuthTimeout:
		return http.StatusRequestTimeout
	case domain.KindService:
		return http.StatusBadGateway
	case domain.KindChannelDisconnected:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the error envelope. Errors without a kind are reported as a
// generic internal error so nothing unclassified leaks to the client.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(domain.KindOf(err))
	resp := errorResponse{Error: "internal error"}
	if de, ok := asDomainError(err); ok {
		resp = errorResponse{Error: de.Message, Kind: de.Kind, Guidance: de.Guidance}
	}

	attrs := []any{
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", attrs...)
	} else {
		h.logger.Debug("request rejected", attrs...)
	}
	writeJSON(w, h.logger, status, resp)
}

func asDomainError(err error) (*domain.Error, bool) {
	var de *domain.Error
	ok := errors.As(err, &de)
	return de, ok
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status line is already sent
		logger.Error("encode response error", slog.Any("error", err))
	}
}

func decodeBody(r *http.Request, op string, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.NewValidationError(op, "invalid JSON")
	}
	return nil
}

func pathMode(r *http.Request) (domain.Mode, error) {
	raw := chi.URLParam(r, "mode")
	mode, ok := domain.ParseMode(raw)
	if !ok {
		return "", domain.NewConfigurationError("http", "unknown mode "+raw)
	}
	return mode, nil
}

// pathCaller combines the {mode} path segment with a user id taken from the
// {userID} path segment.
func pathCaller(r *http.Request) (port.Caller, error) {
	mode, err := pathMode(r)
	if err != nil {
		return port.Caller{}, err
	}
	userID := strings.TrimSpace(chi.URLParam(r, "userID"))
	if userID == "" {
		return port.Caller{}, domain.NewValidationError("http", "user id is required")
	}
	return port.Caller{UserID: userID, Mode: mode}, nil
}
