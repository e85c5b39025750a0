package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/CristianHGitHub/portfolio/internal/logger"
	"github.com/CristianHGitHub/portfolio/internal/site"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		l := logger.New("info", os.Stderr)
		l.Fatal().Err(err).Msg("load config")
	}
	log := logger.New(cfg.LogLevel, os.Stdout)
	gin.SetMode(cfg.GinMode)

	content, err := site.Load(cfg.ContentPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load site content")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := newServer(cfg, content, log)
	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: srv.routes(),
		// Open hero streams end when the process is told to stop.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Str("addr", "http://localhost:"+cfg.Port).Msg("portfolio website is running")
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("listen")
	}
	log.Info().Msg("portfolio website stopped")
}
