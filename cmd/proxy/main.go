package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/yourname/stream_lite/internal/app/proxyhttp"
	"github.com/yourname/stream_lite/internal/config"
)

// main инициализирует прокси-узел, транслирующий запросы стриминговому узлу.
func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Str("service", "proxy").Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if cfg.UpstreamURL == "" {
		log.Fatal().Msg("upstream_url is required in proxy mode")
	}

	handler, _ := proxyhttp.NewServer(cfg, log)

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: handler,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("PROXY shutdown error")
		}
	}()

	log.Info().Str("addr", cfg.ListenAddr).Str("upstream", cfg.UpstreamURL).Msg("PROXY listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("listen")
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("PROXY final shutdown error")
	}
}
