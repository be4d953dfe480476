package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"ideaproof/internal/adapter/demo"
	"ideaproof/internal/adapter/googleads"
	"ideaproof/internal/adapter/http"
	"ideaproof/internal/adapter/memory"
	"ideaproof/internal/adapter/postgres"
	"ideaproof/internal/adapter/redis"
	"ideaproof/internal/adapter/usecase"
	"ideaproof/internal/config"
	"ideaproof/internal/core/content"
	"ideaproof/internal/core/domain"
	"ideaproof/internal/core/port"
	"ideaproof/internal/db"
	"ideaproof/internal/metrics"
	"ideaproof/internal/realtime"
)

// main is the entry point of the validation orchestrator. It loads
// configuration, optionally runs database migrations, wires both ad
// backends behind the mode router, then serves HTTP until a termination
// signal arrives.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.Log.New(os.Stdout, cfg.Env)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err = run(ctx, cfg, logger); err != nil {
		logger.Error("orchestrator stopped", slog.Any("error", err))
		return
	}
	exitCode = 0
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	// Snapshot history is optional; without it nothing is recorded.
	var snapshots port.SnapshotRepository
	if cfg.Psql.Enabled {
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return err
		}
		defer pool.Close()
		snapshots = postgres.NewSnapshotRepository(pool)
	}

	live, err := googleads.New(googleads.Config{
		ClientID:        cfg.Ads.ClientID,
		ClientSecret:    cfg.Ads.ClientSecret,
		DeveloperToken:  cfg.Ads.DeveloperToken,
		RedirectURI:     cfg.Ads.RedirectURI,
		LoginCustomerID: cfg.Ads.LoginCustomerID,
		APIVersion:      cfg.Ads.APIVersion,
	}, logger)
	if err != nil {
		return err
	}

	var (
		sessions port.SessionStore = memory.NewSessionStore()
		bus      *redis.UpdateBus
	)
	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()
		sessions = redis.NewSessionStore(client, cfg.Redis.SessionTTL)
		bus = redis.NewUpdateBus(client, cfg.Redis.Channel, logger)
		logger.Info("redis enabled", slog.String("address", cfg.Redis.Address))
	}

	router := usecase.NewModeRouter(sessions, logger, demo.New(), live)
	auth := usecase.NewAuthenticator(router, cfg.Auth.Timeout, logger)

	// The relay publishes to the bus when one is shared between instances;
	// the bus then feeds every local hub.
	var hub *realtime.Hub
	var publisher port.UpdatePublisher = publisherFunc(func(ctx context.Context, u domain.CampaignUpdate) error {
		return hub.Publish(ctx, u)
	})
	if bus != nil {
		publisher = bus
	}
	relay := usecase.NewMetricsRelay(router, sessions, publisher, snapshots, cfg.Realtime.RelayInterval, logger)
	hub = realtime.NewHub(cfg.Realtime.QueueSize, realtime.Hooks{
		OnRoomOpen:  relay.Ensure,
		OnRoomClose: relay.Release,
	}, logger)
	defer hub.Close()
	defer relay.Close()

	router.OnTeardown(auth.CancelUser)
	router.OnTeardown(relay.ReleaseUser)
	router.OnTeardown(hub.UnsubscribeUser)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.MustRegister(registry)

	generator := content.NewGenerator(cfg.Ads.DailyBudgetMinor)
	handler := httpadapter.NewHandler(httpadapter.Services{
		Campaigns:     usecase.NewCampaignService(router, sessions, generator, snapshots, cfg.Ads.LandingURL(), logger),
		Auth:          auth,
		Sessions:      usecase.NewSessionService(router, logger),
		Drafts:        generator,
		Realtime:      hub,
		Gatherer:      registry,
		AuthReturnURL: cfg.Ads.FrontendURL,
	}, logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	if bus != nil {
		g.Go(func() error {
			return bus.Forward(gctx, hub)
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
			return err
		}
		logger.Info("server gracefully stopped")
		return nil
	})

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

type publisherFunc func(ctx context.Context, u domain.CampaignUpdate) error

func (f publisherFunc) Publish(ctx context.Context, u domain.CampaignUpdate) error { return f(ctx, u) }
