package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/cache"
	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/config"
	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/providers/nbastats"
	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/publisher"
	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/registry"
	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/service"
	"github.com/XavierBriggs/fortuna/services/player-report-service/pkg/contracts"
)

// app holds the wired components shared by every command
type app struct {
	cfg      *config.Config
	logger   *logrus.Logger
	redis    *redis.Client // nil without a cache
	provider contracts.StatsProvider
	service  *service.Service
}

// newApp wires the provider stack. base replaces the stats.nba.com client when set.
// A configured but unreachable Redis is logged and skipped.
func newApp(ctx context.Context, cfg *config.Config, logger *logrus.Logger, base contracts.StatsProvider) *app {
	a := &app{cfg: cfg, logger: logger}

	if base == nil {
		base = nbastats.New(
			nbastats.WithBaseURL(cfg.Stats.BaseURL),
			nbastats.WithTimeout(cfg.Stats.Timeout),
			nbastats.WithRetries(cfg.Stats.Retries, 500*time.Millisecond),
			nbastats.WithSeason(cfg.Report.DefaultSeason),
			nbastats.WithLogger(logger),
		)
	}

	var store cache.Store = cache.NopStore{}
	var pub publisher.Publisher = publisher.NopPublisher{}

	if cfg.CacheEnabled() {
		client, err := connectRedis(ctx, cfg.Redis.URL)
		if err != nil {
			logger.WithError(err).Warn("redis unavailable, running without cache")
		} else {
			logger.Info("connected to redis")
			a.redis = client
			store = cache.NewRedisStore(client)
			pub = publisher.NewStreamPublisher(client, cfg.Redis.ReportStream)
		}
	}

	a.provider = cache.NewProvider(base, store, logger)
	a.service = service.New(a.provider, registry.New(),
		service.WithPublisher(pub),
		service.WithLogger(logger),
		service.WithDefaultSeason(cfg.Report.DefaultSeason),
		service.WithDefaultLocale(cfg.Report.Locale),
	)
	return a
}

func connectRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return client, nil
}

// ping reports cache health; nil without a cache
func (a *app) ping() func(ctx context.Context) error {
	if a.redis == nil {
		return nil
	}
	return func(ctx context.Context) error {
		return a.redis.Ping(ctx).Err()
	}
}

func (a *app) Close() error {
	if a.redis != nil {
		return a.redis.Close()
	}
	return nil
}
