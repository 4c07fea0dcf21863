package app

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aussiebroadwan/inkpass/pkg/cryptox"
	"github.com/aussiebroadwan/inkpass/pkg/jwtx"
)

// InitCodec builds the token codec from the configured key material.
//
// Without configured key material a key is generated for this process only,
// so every token issued before a restart stops verifying. Configure
// AUTH_SECRET, AUTH_SECRET_FILE or AUTH_SIGNING_KEY_FILE to keep sessions
// across restarts.
func InitCodec(cfg Config, logger *slog.Logger) (*jwtx.Codec, error) {
	opts := jwtx.Options{
		Issuer:   cfg.Issuer,
		Lifetime: cfg.TokenLifetime,
	}

	switch strings.ToUpper(cfg.Algorithm) {
	case strings.ToUpper(jwtx.AlgEdDSA):
		pemKey, ephemeral, err := loadSigningKey(cfg.SigningKey)
		if err != nil {
			return nil, err
		}
		codec, err := jwtx.NewEdDSACodec(pemKey, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize EdDSA codec: %w", err)
		}
		logCodec(logger, codec, cfg, ephemeral)
		return codec, nil

	case jwtx.AlgHS256:
		secret, ephemeral, err := loadSecret(cfg.Secret, cfg.SecretFile)
		if err != nil {
			return nil, err
		}
		codec, err := jwtx.NewHS256Codec(secret, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize HS256 codec: %w", err)
		}
		logCodec(logger, codec, cfg, ephemeral)
		return codec, nil

	default:
		return nil, fmt.Errorf("unsupported token algorithm %q (want %s or %s)", cfg.Algorithm, jwtx.AlgHS256, jwtx.AlgEdDSA)
	}
}

func loadSecret(secret, file string) ([]byte, bool, error) {
	if secret != "" {
		return []byte(secret), false, nil
	}
	if file != "" {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, false, fmt.Errorf("failed to read token secret: %w", err)
		}
		return []byte(strings.TrimSpace(string(raw))), false, nil
	}

	generated, err := cryptox.GenerateToken(cryptox.TokenSize512)
	if err != nil {
		return nil, false, err
	}
	return []byte(generated), true, nil
}

func loadSigningKey(file string) ([]byte, bool, error) {
	if file != "" {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, false, fmt.Errorf("failed to read signing key: %w", err)
		}
		return raw, false, nil
	}

	generated, err := cryptox.GenerateEd25519Key()
	if err != nil {
		return nil, false, err
	}
	return generated, true, nil
}

func logCodec(logger *slog.Logger, codec *jwtx.Codec, cfg Config, ephemeral bool) {
	logger.Info("token codec ready",
		"algorithm", codec.Alg(),
		"issuer", cfg.Issuer,
		"lifetime", codec.Lifetime(),
	)
	if ephemeral {
		logger.Warn("no signing key configured, generated one for this process; all existing tokens are now invalid")
	}
}
