package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/inkpass/internal/auth/registry"
	"github.com/cenkalti/backoff/v5"
)

// OpenRegistry connects the session registry. Redis is pinged with
// exponential backoff for up to cfg.RedisConnectTimeout so the service can
// start alongside its Redis container.
func OpenRegistry(ctx context.Context, cfg Config, logger *slog.Logger) (registry.Registry, error) {
	switch cfg.RegistryBackend {
	case RegistryBackendMemory:
		logger.Warn("using in-memory session registry; sessions do not survive restarts or span replicas")
		return registry.NewMemory(nil), nil

	case RegistryBackendRedis, "":
		reg, err := registry.NewRedis(registry.RedisConfig{
			URL:       cfg.RedisURL,
			Password:  cfg.RedisPassword,
			KeyPrefix: cfg.RegistryPrefix,
		})
		if err != nil {
			return nil, err
		}

		_, err = backoff.Retry(ctx, func() (struct{}, error) {
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			return struct{}{}, reg.Ping(pingCtx)
		},
			backoff.WithBackOff(backoff.NewExponentialBackOff()),
			backoff.WithMaxElapsedTime(cfg.RedisConnectTimeout),
			backoff.WithNotify(func(err error, next time.Duration) {
				logger.Warn("session registry not reachable yet, retrying", "error", err, "retry_in", next)
			}),
		)
		if err != nil {
			_ = reg.Close()
			return nil, fmt.Errorf("failed to connect to session registry: %w", err)
		}

		logger.Info("session registry connected", "backend", RegistryBackendRedis, "prefix", cfg.RegistryPrefix)
		return reg, nil

	default:
		return nil, fmt.Errorf("unsupported registry backend %q (want %s or %s)",
			cfg.RegistryBackend, RegistryBackendRedis, RegistryBackendMemory)
	}
}
