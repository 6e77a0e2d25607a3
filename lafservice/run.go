// Package lafservice is the composition root for the lost-and-found HTTP
// service.
package lafservice

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/campuslaf/laf-backend/internal/api"
	"github.com/campuslaf/laf-backend/internal/auth"
	"github.com/campuslaf/laf-backend/internal/config"
	"github.com/campuslaf/laf-backend/internal/expiry"
	"github.com/campuslaf/laf-backend/internal/platform/logger"
	"github.com/campuslaf/laf-backend/internal/services"
	mongostore "github.com/campuslaf/laf-backend/internal/store/mongo"
	"github.com/campuslaf/laf-backend/internal/taxonomy"
)

// Run starts the lost-and-found HTTP server and blocks until shutdown or
// error.
func Run() error {
	log := logger.New("laf-service")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("failed to load configuration")
		return err
	}

	ctx, stop := newServerContext()
	defer stop()

	st, err := mongostore.Open(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Error().Err(err).Msg("document store unavailable")
		return err
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			log.Warn().Err(err).Msg("store close failed")
		}
	}()
	if err := st.EnsureIndexes(ctx); err != nil {
		log.Error().Err(err).Msg("index creation failed")
		return err
	}

	cache := taxonomy.NewCache(st.Types(), st.Locations(), cfg.CacheTTL)
	windows := expiry.Windows{
		WaterBottle: cfg.WaterBottleDays,
		Attire:      cfg.AttireDays,
		Umbrella:    cfg.UmbrellaDays,
		Inexpensive: cfg.InexpensiveDays,
		Expensive:   cfg.ExpensiveDays,
	}

	router := api.NewRouter(
		st,
		services.NewItemService(st, cache, windows, cfg.PageSize),
		services.NewReportService(st, cache, cfg.PageSize),
		services.NewTaxonomyService(st, cache),
		auth.NewJWTAuthorizer(cfg.JWTSecret),
	)

	server := &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Err(err).Msg("server forced to shutdown")
			return err
		}
		log.Info().Msg("server exited")
		return nil
	case err := <-errCh:
		log.Error().Err(err).Msg("HTTP server failed")
		return err
	}
}

// newServerContext returns a cancellable context bound to SIGINT/SIGTERM.
func newServerContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
