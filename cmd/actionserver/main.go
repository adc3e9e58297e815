package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/Thanhthanh392003/LVTN-homestay/internal/adapters/greenstay"
	server "github.com/Thanhthanh392003/LVTN-homestay/internal/adapters/http_server"
	"github.com/Thanhthanh392003/LVTN-homestay/internal/adapters/observability"
	"github.com/Thanhthanh392003/LVTN-homestay/internal/app"
	"github.com/Thanhthanh392003/LVTN-homestay/internal/shared"
)

func main() {
	cfg, err := shared.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	gw := greenstay.New(cfg.BackendBase, cfg.BackendTimeout, cfg.BackendRPS)
	actions := app.New(gw, cfg.BotSecret)

	srv := server.New()
	srv.MountHandlers(&server.Handlers{A: actions})
	reg := observability.InitRegistry()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	api := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}
	g.Go(func() error {
		log.Info().
			Str("addr", cfg.HTTPAddr).
			Str("backend", cfg.BackendBase).
			Strs("actions", actions.Names()).
			Msg("action server listening")
		if err := api.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	var metrics *http.Server
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", observability.MetricsHandler(reg))
		metrics = &http.Server{Addr: cfg.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		g.Go(func() error {
			log.Info().Str("addr", cfg.MetricsAddr).Msg("metrics server listening")
			if err := metrics.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if metrics != nil {
			_ = metrics.Shutdown(shutdownCtx)
		}
		return api.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("action server failed")
	}
	log.Info().Msg("action server stopped")
}
