package config

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"io/fs"
	"time"
)

type Log struct {
	Level  string `envconfig:"LEVEL" default:"info"`
	Format string `envconfig:"FORMAT" default:"logfmt"`
}

type HTTP struct {
	Addr            string        `envconfig:"ADDR" default:":8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type RateLimit struct {
	RPS   float64 `envconfig:"RPS" default:"10"`
	Burst int     `envconfig:"BURST" default:"20"`
}

type Session struct {
	Store    string        `envconfig:"STORE" default:"memory"`
	RedisURL string        `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
	Prefix   string        `envconfig:"PREFIX" default:"companion:session:"`
	TTL      time.Duration `envconfig:"TTL" default:"24h"`
}

type Translate struct {
	Delay time.Duration `envconfig:"DELAY" default:"0s"`
}

type Rates struct {
	// File replaces the bundled rate table when set
	File string `envconfig:"FILE"`
}

// App the service configuration, read from COMPANION_* environment variables
type App struct {
	Log       Log
	HTTP      HTTP
	RateLimit RateLimit `envconfig:"RATE_LIMIT"`
	Session   Session
	Translate Translate
	Rates     Rates
}

// Prefix of every environment variable, e.g. COMPANION_HTTP_ADDR
const Prefix = "COMPANION"

// Load reads the optional env files, then the environment. Variables
// already set in the environment win over the files.
func Load(envFiles ...string) (*App, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading env file [%v]: %w", f, err)
		}
	}

	var cfg App
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("processing env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values envconfig cannot.
func (c *App) Validate() error {
	switch c.Log.Format {
	case "logfmt", "json":
	default:
		return fmt.Errorf("log format %q: want logfmt or json", c.Log.Format)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level %q: want debug, info, warn or error", c.Log.Level)
	}
	switch c.Session.Store {
	case "memory", "redis":
	default:
		return fmt.Errorf("session store %q: want memory or redis", c.Session.Store)
	}
	if c.RateLimit.RPS < 0 || c.RateLimit.Burst < 0 {
		return errors.New("rate limit must not be negative")
	}
	return nil
}
