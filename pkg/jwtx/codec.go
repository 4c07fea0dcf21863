package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the shortest HS256 secret we accept (256 bits).
const MinSecretLength = 32

// Supported signing algorithms.
const (
	AlgHS256 = "HS256"
	AlgEdDSA = "EdDSA"
)

// Options configure a Codec. The zero value is usable.
type Options struct {
	// Issuer written to and required on every token. Empty means "don't care".
	Issuer string

	// Lifetime of issued tokens (default: DefaultLifetime)
	Lifetime time.Duration

	// Now overrides the clock, mostly for tests.
	Now func() time.Time
}

// Codec issues and verifies session tokens with a single process-wide key.
// Replacing the key invalidates every outstanding token.
type Codec struct {
	method    jwt.SigningMethod
	signKey   any
	verifyKey any

	issuer   string
	lifetime time.Duration
	now      func() time.Time
	parser   *jwt.Parser
}

// NewHS256Codec creates a codec signing with an HMAC-SHA256 shared secret.
func NewHS256Codec(secret []byte, opts Options) (*Codec, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("jwtx: HS256 secret must be at least %d bytes, got %d", MinSecretLength, len(secret))
	}

	key := make([]byte, len(secret))
	copy(key, secret)
	return newCodec(jwt.SigningMethodHS256, key, key, opts), nil
}

func newCodec(method jwt.SigningMethod, signKey, verifyKey any, opts Options) *Codec {
	c := &Codec{
		method:    method,
		signKey:   signKey,
		verifyKey: verifyKey,
		issuer:    opts.Issuer,
		lifetime:  opts.Lifetime,
		now:       opts.Now,
	}
	if c.lifetime <= 0 {
		c.lifetime = DefaultLifetime
	}
	if c.now == nil {
		c.now = time.Now
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{method.Alg()}),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
	}
	if c.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(c.issuer))
	}
	c.parser = jwt.NewParser(parserOpts...)

	return c
}

// Alg returns the JWS algorithm name, e.g. "HS256".
func (c *Codec) Alg() string { return c.method.Alg() }

// Lifetime is the configured token lifetime, shared with the session registry TTL.
func (c *Codec) Lifetime() time.Duration { return c.lifetime }

// Issue signs a token for the user that expires lifetime from now.
func (c *Codec) Issue(userID int64, username string, lifetime time.Duration) (string, error) {
	if userID <= 0 {
		return "", fmt.Errorf("jwtx: user id must be positive, got %d", userID)
	}
	if lifetime <= 0 {
		return "", errors.New("jwtx: lifetime must be positive")
	}

	claims := NewSessionClaims(userID, username, c.issuer, lifetime, c.now())
	token, err := jwt.NewWithClaims(c.method, claims).SignedString(c.signKey)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign token: %w", err)
	}
	return token, nil
}
