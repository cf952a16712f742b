package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpapi "shareit-backend/internal/api/http"
	"shareit-backend/internal/clock"
	"shareit-backend/internal/config"
	"shareit-backend/internal/logger"
	"shareit-backend/internal/repository"
	"shareit-backend/internal/repository/memory"
	"shareit-backend/internal/repository/postgres"
	"shareit-backend/internal/security"
	"shareit-backend/internal/service"
)

// repositories is the store backend selected by configuration.
type repositories struct {
	users    repository.UserRepository
	items    repository.ItemRepository
	bookings repository.BookingRepository
	comments repository.CommentRepository
	requests repository.RequestRepository
	close    func() error
}

func openRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	if cfg.Store.Type == config.StoreTypeMemory {
		logger.Info("Using in-memory store")
		s := memory.NewStore()
		return &repositories{
			users:    s.UserRepository,
			items:    s.ItemRepository,
			bookings: s.BookingRepository,
			comments: s.CommentRepository,
			requests: s.RequestRepository,
			close:    func() error { return nil },
		}, nil
	}

	logger.Info("Connecting to database...",
		"driver", cfg.Database.Driver,
		"host", cfg.Database.Host,
		"port", cfg.Database.Port,
		"database", cfg.Database.Database,
		"user", cfg.Database.User,
	)
	db, err := postgres.Open(ctx, cfg.Database.Driver, cfg.GetDatabaseConnectionString(), cfg.Database.MaxOpenConns)
	if err != nil {
		return nil, err
	}
	logger.Info("Database connection established")

	if cfg.Store.EnsureSchema {
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		logger.Info("Database schema ensured")
	}

	s := postgres.NewStore(db)
	return &repositories{
		users:    s.UserRepository,
		items:    s.ItemRepository,
		bookings: s.BookingRepository,
		comments: s.CommentRepository,
		requests: s.RequestRepository,
		close:    s.DB().Close,
	}, nil
}

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting shareit backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress(), "store", cfg.Store.Type)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		logger.Error("Failed to open store", "error", err)
		log.Fatalf("Failed to open store: %v", err)
	}
	defer repos.close()

	var tokenManager security.TokenManager
	if cfg.Auth.JWTSecret != "" {
		tokenManager = security.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)
		logger.Info("Bearer token identity enabled")
	}

	clk := clock.System()
	router := httpapi.NewRouter(httpapi.Services{
		Users:    service.NewUserService(repos.users),
		Items:    service.NewItemService(repos.items, repos.users, repos.requests, repos.bookings, repos.comments, clk),
		Bookings: service.NewBookingService(repos.bookings, repos.items, repos.users, clk),
		Requests: service.NewRequestService(repos.requests, repos.items, repos.users, clk),
	}, tokenManager)

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
