// Package redis holds the shared-state adapters: a session store and the
// cross-instance campaign update bus.
package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"ideaproof/internal/config/configs"
)

// Connect builds a client from a redis:// URL or host:port and pings it.
func Connect(ctx context.Context, cfg configs.Redis) (*goredis.Client, error) {
	var opt *goredis.Options
	if strings.HasPrefix(cfg.Address, "redis://") || strings.HasPrefix(cfg.Address, "rediss://") {
		parsed, err := goredis.ParseURL(cfg.Address)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		opt = parsed
	} else {
		opt = &goredis.Options{Addr: cfg.Address, Password: cfg.Password, DB: cfg.DB}
	}
	opt.DialTimeout = 5 * time.Second

	client := goredis.NewClient(opt)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}
