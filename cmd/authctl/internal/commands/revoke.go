package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/inkpass/internal/auth/registry"
)

// RevokeCmd drops a user's registry entry; their current token stops
// authenticating on the next request.
type RevokeCmd struct {
	UserID        int64         `arg:"" help:"User id whose session to revoke"`
	RedisURL      string        `help:"Session registry URL" env:"AUTH_REDIS_URL" default:"redis://localhost:6379/0"`
	RedisPassword string        `help:"Overrides the password in the URL" env:"AUTH_REDIS_PASSWORD"`
	Prefix        string        `help:"Registry key prefix" env:"AUTH_REGISTRY_PREFIX" default:"blog:user:token:"`
	Timeout       time.Duration `help:"Command timeout" default:"5s"`
}

func (c *RevokeCmd) Run(ctx context.Context, globals *Globals) error {
	logger := globals.logger()

	reg, err := registry.NewRedis(registry.RedisConfig{
		URL:       c.RedisURL,
		Password:  c.RedisPassword,
		KeyPrefix: c.Prefix,
	})
	if err != nil {
		return err
	}
	defer reg.Close()

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	if err := reg.Delete(ctx, c.UserID); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	logger.Debug("session revoked", "user_id", c.UserID, "key", registry.Key(c.Prefix, c.UserID))
	fmt.Fprintf(globals.out(), "revoked session for user %d\n", c.UserID)
	return nil
}
