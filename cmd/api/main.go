package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/andressagobbi/SGHSS-VidaPlus/internal/api/router"
	appconfig "github.com/andressagobbi/SGHSS-VidaPlus/internal/config"
	"github.com/andressagobbi/SGHSS-VidaPlus/internal/dashboard"
	"github.com/andressagobbi/SGHSS-VidaPlus/internal/hospital"
	"github.com/andressagobbi/SGHSS-VidaPlus/internal/observability/metrics"
	"github.com/andressagobbi/SGHSS-VidaPlus/internal/patients"
	"github.com/andressagobbi/SGHSS-VidaPlus/internal/persistence"
	"github.com/andressagobbi/SGHSS-VidaPlus/internal/professionals"
	"github.com/andressagobbi/SGHSS-VidaPlus/internal/scheduling"
	"github.com/andressagobbi/SGHSS-VidaPlus/internal/telemedicine"
	"github.com/andressagobbi/SGHSS-VidaPlus/pkg/logging"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	// Load configuration
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting SGHSS API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	// Metrics registry
	reg := prometheus.NewRegistry()
	m := metrics.NewHospitalMetrics(reg)

	// Redis-backed state slot
	redisOpts := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	redisClient := redis.NewClient(redisOpts)

	// Domain store, seeded then overlaid with any persisted snapshot
	store := hospital.NewSeeded()
	adapter := persistence.New(redisClient, cfg.StateKey, logger, m)

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 5*time.Second)
	adapter.Load(loadCtx, store)
	cancelLoad()

	// Services
	schedulingService := scheduling.NewService(store, adapter, m, logger, cfg.TelemedicineProfessionalID)
	callManager := telemedicine.NewManager(telemedicine.NewSimulatedDevice(), m, logger)

	// Setup router
	routerCfg := &router.Config{
		Logger:               logger,
		PatientsHandler:      patients.NewHandler(store, adapter, logger),
		ProfessionalsHandler: professionals.NewHandler(store, adapter, logger),
		SchedulingHandler:    scheduling.NewHandler(schedulingService, logger),
		DashboardHandler:     dashboard.NewHandler(store, callManager, reg, logger),
		TelemedicineHandler:  telemedicine.NewHandler(callManager, logger),
		MetricsHandler:       promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		CORSAllowedOrigins:   cfg.CORSAllowedOrigins,
		PublicBookingRate:    cfg.PublicBookingRate,
		PublicBookingBurst:   cfg.PublicBookingBurst,
	}
	r := router.New(routerCfg)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	// Release any live call and flush the state slot one last time
	callManager.EndCall()
	adapter.Save(ctx, store)

	if err := redisClient.Close(); err != nil {
		logger.Warn("failed to close redis client", "error", err)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}
