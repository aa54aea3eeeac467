// Command ytniche-server runs the HTTP/JSON surface over the analysis
// pipeline (spec §6, C10): it wires the shared cache, scraper gateway,
// trends client, and scorer into one Orchestrator and serves it behind
// a chi router, mirroring the wiring style of the teacher's own
// config-then-client-then-run main.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ytniche/cache"
	"ytniche/config"
	"ytniche/domain/scorer"
	"ytniche/httpapi"
	"ytniche/orchestrator"
	"ytniche/platform/scraper"
	"ytniche/platform/trends"
)

// noopTrendsProvider always errors, pushing every Score() call onto the
// keyword-seed fallback heuristic (platform/trends/client.go). No Google
// Trends credentials are part of this module's configuration surface;
// wiring a real Provider is a one-line change once one is.
type noopTrendsProvider struct{}

func (noopTrendsProvider) Average(ctx context.Context, keyword string) (int, error) {
	return 0, fmt.Errorf("no trends provider configured")
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using system environment variables")
	}

	cfg := config.LoadConfig()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	log.Logger = logger

	scraperCache := cache.New(cfg.CacheTTL)
	stop := make(chan struct{})
	scraperCache.StartSweeper(2*cfg.CacheTTL, stop)

	gw := scraper.New(scraper.Config{
		Binary:  cfg.ScraperBinary,
		Timeout: cfg.ScraperTimeout,
		Cache:   scraperCache,
		Log:     logger,
	})

	tr := trends.New(noopTrendsProvider{}, logger)

	sc := scorer.NewService(gw, tr, time.Now().UnixNano())

	orch := orchestrator.New(gw, tr, sc, scraperCache, cfg.RequestDeadline)

	srv := httpapi.NewServer(orch, scraperCache)

	addr := fmt.Sprintf(":%d", cfg.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      srv.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.RequestDeadline + 5*time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("ytniche-server listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutting down")
	close(stop)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
