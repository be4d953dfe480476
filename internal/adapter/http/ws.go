package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/net/websocket"

	"ideaproof/internal/core/domain"
	"ideaproof/internal/core/port"
	"ideaproof/internal/realtime"
)

type wsPeer struct {
	mu      sync.Mutex
	encoder *json.Encoder
}

func (p *wsPeer) writeFrame(frameType string, payload any) error {
	frame, err := realtime.NewFrame(frameType, payload)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.encoder.Encode(frame)
}

func (p *wsPeer) writeError(err error) error {
	resp := realtime.ErrorPayload{Error: "internal error"}
	if de, ok := asDomainError(err); ok {
		resp = realtime.ErrorPayload{Error: de.Message, Kind: de.Kind}
	}
	return p.writeFrame(realtime.FrameError, resp)
}

// handleWS upgrades to the push channel of one user in one mode. Rooms are
// joined per account; only accounts visible to the user's session can be
// joined.
func (h *Handler) handleWS(w http.ResponseWriter, r *http.Request) {
	mode, err := pathMode(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
	if userID == "" {
		h.fail(w, r, domain.NewValidationError("ws", "user id is required"))
		return
	}
	if h.svc.Realtime == nil {
		h.fail(w, r, domain.NewChannelDisconnected("ws", nil))
		return
	}
	caller := port.Caller{UserID: userID, Mode: mode}

	websocket.Handler(func(conn *websocket.Conn) {
		h.serveWS(conn, caller)
	}).ServeHTTP(w, r)
}

func (h *Handler) serveWS(conn *websocket.Conn, caller port.Caller) {
	defer conn.Close()

	subscriberID := uuid.NewString()
	defer h.svc.Realtime.UnsubscribeAll(subscriberID)

	logger := h.logger.With(slog.String("subscriber_id", subscriberID), slog.String("user_id", caller.UserID))
	peer := &wsPeer{encoder: json.NewEncoder(conn)}
	decoder := json.NewDecoder(conn)
	ctx := conn.Request().Context()

	for {
		var frame realtime.Frame
		if err := decoder.Decode(&frame); err != nil {
			if !errors.Is(err, io.EOF) {
				logger.Debug("websocket read failed", slog.Any("error", err))
			}
			return
		}

		var (
			account realtime.AccountPayload
			err     error
		)
		if len(frame.Payload) > 0 {
			if json.Unmarshal(frame.Payload, &account) != nil {
				err = domain.NewValidationError("ws", "invalid payload")
			}
		}
		account.AccountID = strings.TrimSpace(account.AccountID)

		switch {
		case err != nil:
		case frame.Type == realtime.FrameJoin:
			err = h.join(ctx, peer, subscriberID, caller, account.AccountID)
		case frame.Type == realtime.FrameLeave:
			if account.AccountID == "" {
				err = domain.NewValidationError("ws", "account id is required")
				break
			}
			h.svc.Realtime.Unsubscribe(subscriberID, account.AccountID)
			err = peer.writeFrame(realtime.FrameLeft, account)
		default:
			err = domain.NewValidationError("ws", "unknown frame type "+frame.Type)
		}
		if err == nil {
			continue
		}
		if domain.KindOf(err) == "" {
			logger.Debug("websocket write failed", slog.Any("error", err))
			return
		}
		if werr := peer.writeError(err); werr != nil {
			return
		}
	}
}

func (h *Handler) join(ctx context.Context, peer *wsPeer, subscriberID string, caller port.Caller, accountID string) error {
	if accountID == "" {
		return domain.NewValidationError("ws", "account id is required")
	}
	accounts, err := h.svc.Campaigns.ListAccounts(ctx, caller)
	if err != nil {
		return err
	}
	visible := false
	for _, a := range accounts {
		if a.ID == accountID {
			visible = true
			break
		}
	}
	if !visible {
		return domain.NewValidationError("ws", "account "+accountID+" is not accessible to this session")
	}

	err = h.svc.Realtime.Subscribe(subscriberID, caller.UserID, accountID, func(u domain.CampaignUpdate) {
		if werr := peer.writeFrame(realtime.FrameCampaignUpdate, u); werr != nil {
			h.logger.Debug("push failed", slog.String("subscriber_id", subscriberID), slog.Any("error", werr))
		}
	})
	if err != nil {
		return domain.NewChannelDisconnected("ws.join", err)
	}
	return peer.writeFrame(realtime.FrameJoined, realtime.AccountPayload{AccountID: accountID})
}
