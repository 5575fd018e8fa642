package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"compliscan/internal/compliance/handler"
	"compliscan/internal/compliance/service"
	profilestore "compliscan/internal/compliance/store/profile"
	regulationstore "compliscan/internal/compliance/store/regulation"
	"compliscan/internal/platform/config"
	"compliscan/internal/platform/httpserver"
	"compliscan/internal/platform/logger"
	"compliscan/internal/platform/metrics"
	"compliscan/internal/platform/postgres"
	httptransport "compliscan/internal/transport/http"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal service packages.
func main() {
	configPath := flag.String("config", "config.yaml", "path to YAML config (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		os.Stderr.WriteString("load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	var (
		regulations service.RegulationStore
		profiles    service.ProfileStore
	)
	if cfg.Database.URL != "" {
		db, err := postgres.Open(context.Background(), cfg.Database.URL)
		if err != nil {
			log.Error("connect postgres", "error", err)
			os.Exit(1)
		}
		defer func() { _ = db.Close() }()
		if err := postgres.Migrate(context.Background(), db); err != nil {
			log.Error("migrate schema", "error", err)
			os.Exit(1)
		}
		regulations = regulationstore.NewPostgres(db)
		profiles = profilestore.NewPostgres(db)
		log.Info("using postgres stores")
	} else {
		regulations = regulationstore.NewInMemory()
		profiles = profilestore.NewInMemory()
		log.Info("no database configured, using in-memory stores")
	}

	svc := service.New(regulations, profiles, log)
	h := handler.New(svc, log, m, handler.Config{
		AdminToken:  cfg.Admin.Token,
		CORSOrigins: cfg.CORS.AllowedOrigins,
	})
	router := httptransport.NewRouter(h, registry)

	srv := httpserver.New(cfg.Server.Addr, router)

	log.Info("starting compliscan", "addr", cfg.Server.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
