// Package config loads the service's runtime configuration from flags and
// environment variables via viper, bound by the cobra CLI in cmd/seedscan-server.
package config

import (
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds every setting the server needs at startup.
type Config struct {
	Port            int           `mapstructure:"port"`
	RedisAddr       string        `mapstructure:"redis_addr"`
	NATSURL         string        `mapstructure:"nats_url"`
	JWTSigningKey   string        `mapstructure:"jwt_signing_key"`
	WorkerCap       int           `mapstructure:"worker_cap"`
	RateLimit       int           `mapstructure:"rate_limit"`
	RateLimitWindow time.Duration `mapstructure:"rate_limit_window"`
	LogLevel        string        `mapstructure:"log_level"`
}

// Default returns the configuration's zero-risk defaults, overridden by
// BindFlags/env vars once Load runs.
func Default() Config {
	return Config{
		Port:            8080,
		RedisAddr:       "localhost:6379",
		NATSURL:         "nats://localhost:4222",
		JWTSigningKey:   "",
		WorkerCap:       16,
		RateLimit:       60,
		RateLimitWindow: time.Minute,
		LogLevel:        "info",
	}
}

// BindFlags registers the server's configurable flags on fs and binds each
// to a SEEDSCAN_-prefixed environment variable via v.
func BindFlags(fs *pflag.FlagSet, v *viper.Viper) {
	d := Default()

	fs.Int("port", d.Port, "HTTP listen port")
	fs.String("redis-addr", d.RedisAddr, "Redis address for rate limiting")
	fs.String("nats-url", d.NATSURL, "NATS URL for scan-completed events")
	fs.String("jwt-signing-key", d.JWTSigningKey, "HMAC signing key for bearer tokens (empty disables auth)")
	fs.Int("worker-cap", d.WorkerCap, "maximum concurrent scan workers per search")
	fs.Int("rate-limit", d.RateLimit, "requests allowed per client IP per window")
	fs.Duration("rate-limit-window", d.RateLimitWindow, "rate limit window duration")
	fs.String("log-level", d.LogLevel, "zerolog level (debug, info, warn, error)")

	v.BindPFlag("port", fs.Lookup("port"))
	v.BindPFlag("redis_addr", fs.Lookup("redis-addr"))
	v.BindPFlag("nats_url", fs.Lookup("nats-url"))
	v.BindPFlag("jwt_signing_key", fs.Lookup("jwt-signing-key"))
	v.BindPFlag("worker_cap", fs.Lookup("worker-cap"))
	v.BindPFlag("rate_limit", fs.Lookup("rate-limit"))
	v.BindPFlag("rate_limit_window", fs.Lookup("rate-limit-window"))
	v.BindPFlag("log_level", fs.Lookup("log-level"))
}

// Load builds a Config from whatever flags/env vars v has bound. Call
// BindFlags first.
func Load(v *viper.Viper) (Config, error) {
	v.SetEnvPrefix("SEEDSCAN")
	v.AutomaticEnv()

	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
