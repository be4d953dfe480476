// Package realtime is the server side of the push channel: one room per
// account, one bounded queue per subscription.
package realtime

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"ideaproof/internal/core/domain"
	"ideaproof/internal/metrics"
)

// DefaultQueueSize bounds the pending updates of one subscription.
const DefaultQueueSize = 64

// Handler receives the updates of one subscription, one at a time and in
// publish order.
type Handler func(domain.CampaignUpdate)

// Hooks run while the hub lock is held, so they must not call back into
// the hub.
type Hooks struct {
	// OnRoomOpen runs when the first subscriber joins an account room.
	OnRoomOpen func(userID, accountID string)
	// OnRoomClose runs when the last subscriber leaves.
	OnRoomClose func(accountID string)
}

var errHubClosed = errors.New("realtime hub closed")

// Hub implements port.UpdatePublisher.
type Hub struct {
	queueSize int
	hooks     Hooks
	logger    *slog.Logger

	mu     sync.Mutex
	rooms  map[string]map[string]*subscription // account id -> subscriber id
	closed bool
}

func NewHub(queueSize int, hooks Hooks, logger *slog.Logger) *Hub {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Hub{
		queueSize: queueSize,
		hooks:     hooks,
		logger:    logger.With(slog.String("component", "realtime_hub")),
		rooms:     make(map[string]map[string]*subscription),
	}
}

// Subscribe registers handler for the account room. Subscribing the same
// subscriber to the same account again replaces the handler and keeps the
// pending queue.
func (h *Hub) Subscribe(subscriberID, userID, accountID string, handler Handler) error {
	if subscriberID == "" || accountID == "" || handler == nil {
		return domain.NewValidationError("realtime.subscribe", "subscriber, account and handler are required")
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return errHubClosed
	}

	room, ok := h.rooms[accountID]
	if !ok {
		room = make(map[string]*subscription)
		h.rooms[accountID] = room
		if h.hooks.OnRoomOpen != nil {
			h.hooks.OnRoomOpen(userID, accountID)
		}
	}
	if sub, ok := room[subscriberID]; ok {
		sub.setHandler(handler)
		return nil
	}

	sub := newSubscription(userID, h.queueSize, handler)
	room[subscriberID] = sub
	metrics.RealtimeActiveSubscriptions.Inc()
	go sub.deliver()
	return nil
}

// Unsubscribe removes one subscription. Unknown subscriptions are ignored.
func (h *Hub) Unsubscribe(subscriberID, accountID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remove(accountID, subscriberID)
}

// UnsubscribeAll removes every subscription of subscriberID, typically when
// its connection closes.
func (h *Hub) UnsubscribeAll(subscriberID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for accountID, room := range h.rooms {
		if _, ok := room[subscriberID]; ok {
			h.remove(accountID, subscriberID)
		}
	}
}

// UnsubscribeUser removes every subscription opened by userID. It has the
// teardown signature used on mode switch and logout.
func (h *Hub) UnsubscribeUser(_ context.Context, userID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for accountID, room := range h.rooms {
		for id, sub := range room {
			if sub.userID == userID {
				h.remove(accountID, id)
			}
		}
	}
}

// Publish enqueues update for every subscriber of its account room. It
// never blocks on a slow subscriber: a full queue drops its oldest entry.
func (h *Hub) Publish(_ context.Context, update domain.CampaignUpdate) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return errHubClosed
	}
	for _, sub := range h.rooms[update.AccountID] {
		if sub.enqueue(update) {
			metrics.RealtimeDroppedUpdates.Inc()
		}
	}
	return nil
}

// Subscribers returns the number of subscriptions in the account room.
func (h *Hub) Subscribers(accountID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[accountID])
}

// Close stops every subscription. Later calls to Subscribe and Publish
// fail.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for accountID, room := range h.rooms {
		for id := range room {
			h.remove(accountID, id)
		}
	}
}

// remove requires h.mu.
func (h *Hub) remove(accountID, subscriberID string) {
	room, ok := h.rooms[accountID]
	if !ok {
		return
	}
	sub, ok := room[subscriberID]
	if !ok {
		return
	}
	delete(room, subscriberID)
	sub.stop()
	metrics.RealtimeActiveSubscriptions.Dec()
	if len(room) == 0 {
		delete(h.rooms, accountID)
		if h.hooks.OnRoomClose != nil {
			h.hooks.OnRoomClose(accountID)
		}
	}
}

type subscription struct {
	userID string
	size   int

	mu      sync.Mutex
	handler Handler
	queue   []domain.CampaignUpdate

	wake chan struct{}
	done chan struct{}
	once sync.Once
}

func newSubscription(userID string, size int, handler Handler) *subscription {
	return &subscription{
		userID:  userID,
		size:    size,
		handler: handler,
		queue:   make([]domain.CampaignUpdate, 0, size),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
}

func (s *subscription) setHandler(h Handler) {
	s.mu.Lock()
	s.handler = h
	s.mu.Unlock()
}

// enqueue reports whether an older update had to be dropped.
func (s *subscription) enqueue(u domain.CampaignUpdate) bool {
	s.mu.Lock()
	dropped := false
	if len(s.queue) >= s.size {
		s.queue = s.queue[1:]
		dropped = true
	}
	s.queue = append(s.queue, u)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
	return dropped
}

func (s *subscription) stop() {
	s.once.Do(func() { close(s.done) })
}

func (s *subscription) next() (domain.CampaignUpdate, Handler, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return domain.CampaignUpdate{}, nil, false
	}
	u := s.queue[0]
	s.queue = s.queue[1:]
	return u, s.handler, true
}

func (s *subscription) deliver() {
	for {
		select {
		case <-s.done:
			return
		case <-s.wake:
		}
		for {
			select {
			case <-s.done:
				return
			default:
			}
			u, handler, ok := s.next()
			if !ok {
				break
			}
			handler(u)
		}
	}
}
