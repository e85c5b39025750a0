package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"
)

type Config struct {
	Port            string        `env:"PORT"             envDefault:"8080"`
	GinMode         string        `env:"GIN_MODE"`
	LogLevel        string        `env:"LOG_LEVEL"        envDefault:"info"`
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS"  envSeparator:","`
	ContentPath     string        `env:"CONTENT_PATH"`
	ResumePath      string        `env:"RESUME_PATH"      envDefault:"./public/resume.pdf"`
	StaticDir       string        `env:"STATIC_DIR"       envDefault:"./static"`
	TemplatesGlob   string        `env:"TEMPLATES_GLOB"   envDefault:"templates/*"`
	StreamBuffer    int           `env:"STREAM_BUFFER"    envDefault:"32"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	// IPSalt keys the client hashes written to the request log. A random
	// salt is generated when empty.
	IPSalt string `env:"LOG_IP_SALT"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.GinMode {
	case "", gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return cfg, fmt.Errorf("parse env: unknown GIN_MODE %q", cfg.GinMode)
	}
	if cfg.StreamBuffer < 0 {
		return cfg, fmt.Errorf("parse env: STREAM_BUFFER must not be negative")
	}
	return cfg, nil
}
