package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"paperflow/internal/notify"
	"paperflow/internal/paper/handler"
	"paperflow/internal/paper/service"
	"paperflow/internal/paper/store"
	"paperflow/internal/platform/config"
	"paperflow/internal/platform/httpserver"
	"paperflow/internal/platform/logger"
	"paperflow/internal/platform/metrics"
	platformredis "paperflow/internal/platform/redis"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal/paper/service.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	var papers store.PaperStore
	if cfg.PostgresDSN != "" {
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			log.Error("open postgres", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		pg := store.NewPostgres(db)
		if err := pg.EnsureSchema(context.Background()); err != nil {
			log.Error("ensure schema", "error", err)
			os.Exit(1)
		}
		papers = pg
	} else {
		log.Warn("no postgres DSN configured, papers will not survive restarts")
		papers = store.NewInMemory()
	}

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("connect redis", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		papers = store.NewCached(papers, redisClient.Client, cfg.Redis.ListTTL, log)
		log.Info("listing cache enabled", "ttl", cfg.Redis.ListTTL)
	}

	var notifier service.Notifier
	if cfg.SMTP.Host != "" {
		smtp, err := notify.NewSMTPNotifier(cfg.SMTP)
		if err != nil {
			log.Error("build smtp notifier", "error", err)
			os.Exit(1)
		}
		notifier = smtp
	} else {
		notifier = notify.NewLogNotifier(log)
	}

	svc := service.New(papers, notifier, service.WithLogger(log), service.WithMetrics(m))

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID, chimiddleware.RealIP, chimiddleware.Recoverer)
	handler.New(svc, log).Register(r)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())

	srv := httpserver.New(cfg.Addr, r)

	log.Info("starting paperflow", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
