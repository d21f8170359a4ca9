package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"recordkeeper/internal/events"
	jwttoken "recordkeeper/internal/jwt_token"
	"recordkeeper/internal/platform/config"
	"recordkeeper/internal/platform/health"
	"recordkeeper/internal/platform/logger"
	"recordkeeper/internal/platform/metrics"
	"recordkeeper/internal/platform/tracer"
	"recordkeeper/internal/platform/txn"
	profilehandler "recordkeeper/internal/profile/handler"
	profilemodels "recordkeeper/internal/profile/models"
	profileservice "recordkeeper/internal/profile/service"
	"recordkeeper/internal/records"
	userhandler "recordkeeper/internal/user/handler"
	usermodels "recordkeeper/internal/user/models"
	userservice "recordkeeper/internal/user/service"
	id "recordkeeper/pkg/domain"
	"recordkeeper/pkg/platform/middleware/auth"
	"recordkeeper/pkg/platform/middleware/request"
	"recordkeeper/pkg/validation"
)

const (
	eventBufferSize = 1024
	shutdownTimeout = 10 * time.Second
)

// main wires dependencies and runs the HTTP server until SIGINT/SIGTERM.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	log.Info("initializing recordkeeper",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"storage_backend", cfg.Storage.Backend,
	)

	healthHandler := health.New(cfg.Environment, cfg.Storage.Backend)
	store, err := openBackend(ctx, cfg, healthHandler)
	if err != nil {
		return err
	}
	defer store.Close(log)

	publisher := events.NewPublisher(events.NewLogSink(log),
		events.WithAsyncBuffer(eventBufferSize),
		events.WithPublisherLogger(log),
	)
	defer publisher.Close()

	// Both services share one serializer so a profile create observes a
	// consistent view of the user map.
	serializer := txn.NewMutex()
	reg := prometheus.DefaultRegisterer
	tr := tracer.NewOTel("recordkeeper")

	users := userservice.New(
		records.New[id.AccountID, usermodels.Record](store.users),
		userservice.WithLogger(log),
		userservice.WithEventPublisher(publisher),
		userservice.WithMetrics(metrics.New(reg, usermodels.Schema)),
		userservice.WithTracer(tr),
		userservice.WithSerializer(serializer),
	)
	profiles := profileservice.New(
		records.New[id.AccountID, profilemodels.Record](store.profiles),
		users,
		profileservice.WithLogger(log),
		profileservice.WithEventPublisher(publisher),
		profileservice.WithMetrics(metrics.New(reg, profilemodels.Schema)),
		profileservice.WithTracer(tr),
		profileservice.WithSerializer(serializer),
	)

	jwtValidator := jwttoken.NewJWTServiceAdapter(
		jwttoken.NewJWTService(cfg.Auth.JWTSigningKey, cfg.Auth.Issuer, cfg.Auth.TokenTTL),
	)

	r := chi.NewRouter()
	r.Use(request.Recovery(log))
	r.Use(request.RequestID)
	r.Use(request.RequestTime)
	r.Use(request.Logger(log))
	r.Use(request.LatencyMiddleware(request.NewMetrics(reg)))

	healthHandler.Register(r)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(request.ContentTypeJSON)
		r.Use(request.BodyLimit(validation.MaxBodySize))
		r.Use(auth.RequireAuth(jwtValidator, log))

		userhandler.New(users, log).Register(r)
		profilehandler.New(profiles, log).Register(r)
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server gracefully")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
