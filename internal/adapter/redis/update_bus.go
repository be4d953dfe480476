package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"ideaproof/internal/core/domain"
	"ideaproof/internal/core/port"
)

// UpdateBus fans campaign updates out to every instance. Publish writes to
// a redis channel; Forward delivers what arrives on it to a local
// publisher, normally the realtime hub.
type UpdateBus struct {
	client  *goredis.Client
	channel string
	logger  *slog.Logger
}

func NewUpdateBus(client *goredis.Client, channel string, logger *slog.Logger) *UpdateBus {
	return &UpdateBus{
		client:  client,
		channel: channel,
		logger:  logger.With(slog.String("component", "update_bus")),
	}
}

func (b *UpdateBus) Publish(ctx context.Context, update domain.CampaignUpdate) error {
	raw, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("encode update: %w", err)
	}
	if err = b.client.Publish(ctx, b.channel, raw).Err(); err != nil {
		return fmt.Errorf("publish update: %w", err)
	}
	return nil
}

// Forward subscribes to the channel and blocks, handing every update to
// local until ctx ends. It returns once the subscription is closed.
func (b *UpdateBus) Forward(ctx context.Context, local port.UpdatePublisher) error {
	sub := b.client.Subscribe(ctx, b.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("redis subscribe: %w", err)
	}
	b.logger.Info("forwarding campaign updates", slog.String("channel", b.channel))

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case m, ok := <-ch:
			if !ok {
				return errors.New("redis subscription closed")
			}
			var update domain.CampaignUpdate
			if err := json.Unmarshal([]byte(m.Payload), &update); err != nil {
				b.logger.Warn("bad campaign update payload", slog.Any("error", err))
				continue
			}
			if err := local.Publish(ctx, update); err != nil {
				b.logger.Warn("local publish failed", slog.String("campaign_id", update.CampaignID), slog.Any("error", err))
			}
		}
	}
}
