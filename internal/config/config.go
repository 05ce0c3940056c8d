// Package config loads terraind settings from the environment.
//
// A .env file in the working directory is read first when present;
// variables already set in the process environment win over it.
//
//	PORT             listen port                          (5180)
//	LOG_LEVEL        zerolog level name                   (info)
//	LOG_FORMAT       "json" or "console"                  (json)
//	CLIENT_ORIGIN    allowed CORS origin                  (http://localhost:5173)
//	REQUEST_TIMEOUT  per-request deadline, Go duration    (10s)
//	MAX_GRID_CELLS   largest rows×cols accepted           (10000)
//	EARLY_EXIT       stop planning once destination found (true)
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// ErrInvalid wraps every malformed setting.
var ErrInvalid = errors.New("config: invalid setting")

// Config is the resolved service configuration.
type Config struct {
	Port           string
	LogLevel       zerolog.Level
	LogConsole     bool
	ClientOrigin   string
	RequestTimeout time.Duration
	MaxGridCells   int
	EarlyExit      bool
}

// Default returns the configuration used when no variable is set.
func Default() Config {
	return Config{
		Port:           "5180",
		LogLevel:       zerolog.InfoLevel,
		ClientOrigin:   "http://localhost:5173",
		RequestTimeout: 10 * time.Second,
		MaxGridCells:   10000,
		EarlyExit:      true,
	}
}

// Load reads .env (if any) and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("config: reading .env: %w", err)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary lookup function, which keeps
// tests away from the real environment.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup("PORT"); ok && v != "" {
		if _, err := strconv.ParseUint(v, 10, 16); err != nil {
			return Config{}, fmt.Errorf("%w: PORT=%q", ErrInvalid, v)
		}
		cfg.Port = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		lvl, err := zerolog.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: LOG_LEVEL=%q: %v", ErrInvalid, v, err)
		}
		cfg.LogLevel = lvl
	}
	if v, ok := lookup("LOG_FORMAT"); ok && v != "" {
		switch v {
		case "json":
			cfg.LogConsole = false
		case "console":
			cfg.LogConsole = true
		default:
			return Config{}, fmt.Errorf("%w: LOG_FORMAT=%q", ErrInvalid, v)
		}
	}
	if v, ok := lookup("CLIENT_ORIGIN"); ok && v != "" {
		cfg.ClientOrigin = v
	}
	if v, ok := lookup("REQUEST_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("%w: REQUEST_TIMEOUT=%q", ErrInvalid, v)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := lookup("MAX_GRID_CELLS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("%w: MAX_GRID_CELLS=%q", ErrInvalid, v)
		}
		cfg.MaxGridCells = n
	}
	if v, ok := lookup("EARLY_EXIT"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: EARLY_EXIT=%q", ErrInvalid, v)
		}
		cfg.EarlyExit = b
	}
	return cfg, nil
}

// Addr is the listen address derived from Port.
func (c Config) Addr() string { return ":" + c.Port }
