package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/inkpass/internal/auth/registry"
	"github.com/aussiebroadwan/inkpass/internal/auth/service"
	"github.com/aussiebroadwan/inkpass/pkg/jwtx"
)

const (
	RegistryBackendRedis  = "redis"
	RegistryBackendMemory = "memory"
)

type Config struct {
	Issuer        string        // Optional: issuer claim for tokens (default: inkpass-auth)
	Algorithm     string        // Optional: token signing algorithm (HS256, EdDSA) (default: HS256)
	Secret        string        // Optional: HS256 secret, at least 32 bytes (default: generated per process)
	SecretFile    string        // Optional: file holding the HS256 secret
	SigningKey    string        // Optional: EdDSA PKCS8 PEM private key file (default: generated per process)
	TokenLifetime time.Duration // Optional: token lifetime and session TTL (default: 24h)
	PrincipalRole string        // Optional: role of every authenticated principal (default: ROLE_ADMIN)

	RegistryBackend     string        // Optional: redis or memory (default: redis)
	RedisURL            string        // Optional: redis://[:password@]host:port/db
	RedisPassword       string        // Optional: overrides the password in RedisURL
	RegistryPrefix      string        // Optional: registry key prefix (default: blog:user:token:)
	RedisConnectTimeout time.Duration // Optional: how long to retry the first redis ping (default: 30s)

	DatabaseFile  string   // Optional: path to SQLite database file (default: ./auth.db)
	PepperFile    string   // Optional: path to file containing pepper for password hashing (default: ./pepper)
	AdminUsername string   // Optional: seed admin username (default: admin)
	AdminPassword string   // Optional: seed admin password; empty disables seeding
	CORSOrigins   []string // Optional: allowed browser origins (default: *)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Memory registry sweep interval (default: 1m)
}

func LoadConfig() Config {
	return Config{
		Issuer:        getEnvOrDefault("AUTH_ISSUER", "inkpass-auth"),
		Algorithm:     getEnvOrDefault("AUTH_ALGORITHM", jwtx.AlgHS256),
		Secret:        os.Getenv("AUTH_SECRET"),
		SecretFile:    os.Getenv("AUTH_SECRET_FILE"),
		SigningKey:    os.Getenv("AUTH_SIGNING_KEY_FILE"),
		TokenLifetime: getEnvDurationOrDefault("AUTH_TOKEN_LIFETIME", jwtx.DefaultLifetime),
		PrincipalRole: getEnvOrDefault("AUTH_PRINCIPAL_ROLE", service.DefaultPrincipalRole),

		RegistryBackend:     strings.ToLower(getEnvOrDefault("AUTH_REGISTRY_BACKEND", RegistryBackendRedis)),
		RedisURL:            getEnvOrDefault("AUTH_REDIS_URL", "redis://localhost:6379/0"),
		RedisPassword:       os.Getenv("AUTH_REDIS_PASSWORD"),
		RegistryPrefix:      getEnvOrDefault("AUTH_REGISTRY_PREFIX", registry.DefaultKeyPrefix),
		RedisConnectTimeout: getEnvDurationOrDefault("AUTH_REDIS_CONNECT_TIMEOUT", 30*time.Second),

		DatabaseFile:  getEnvOrDefault("AUTH_DATABASE_FILE", "auth.db"),
		PepperFile:    getEnvOrDefault("AUTH_PEPPER_FILE", "pepper"),
		AdminUsername: getEnvOrDefault("AUTH_ADMIN_USERNAME", service.DefaultAdminUsername),
		AdminPassword: os.Getenv("AUTH_ADMIN_PASSWORD"),
		CORSOrigins:   splitList(getEnvOrDefault("AUTH_CORS_ORIGINS", "*")),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", time.Minute),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil && duration > 0 {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil && minutes > 0 {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

// splitList splits a comma separated value, dropping blanks.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
