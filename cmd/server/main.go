package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/forgo/gambit/internal/config"
	"github.com/forgo/gambit/internal/database"
	"github.com/forgo/gambit/internal/handler"
	"github.com/forgo/gambit/internal/jobs"
	"github.com/forgo/gambit/internal/middleware"
	"github.com/forgo/gambit/internal/repository"
	"github.com/forgo/gambit/internal/service"
	"github.com/forgo/gambit/pkg/jwt"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize JWT service
	jwtService, err := jwt.NewService(jwt.Config{
		PrivateKeyPath: cfg.JWT.PrivateKeyPath,
		PublicKeyPath:  cfg.JWT.PublicKeyPath,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	registryRepo := repository.NewRegistryRepository(db)
	cardRepo := repository.NewCardRepository(db)
	provenanceRepo := repository.NewProvenanceRepository(db)

	// Initialize services
	tokenService := service.NewTokenService(service.TokenServiceConfig{
		JWTService: jwtService,
		TokenRepo:  tokenRepo,
	})

	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:     userRepo,
		TokenService: tokenService,
	})

	registryService := service.NewRegistryService(service.RegistryServiceConfig{
		RegistryRepo: registryRepo,
	})

	cardService := service.NewCardService(service.CardServiceConfig{
		CardRepo:       cardRepo,
		RegistryRepo:   registryRepo,
		ProvenanceRepo: provenanceRepo,
		UserRepo:       userRepo,
	})

	duelService := service.NewDuelService(service.DuelServiceConfig{
		CardRepo:     cardRepo,
		RegistryRepo: registryRepo,
	})

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Rate:   100, // 100 requests per minute
		Window: time.Minute,
		Burst:  20, // Allow bursts up to 20
	})
	defer rateLimiter.Stop()

	// Initialize idempotency store
	idempotencyStore := middleware.NewIdempotencyStore(middleware.IdempotencyConfig{
		TTL:     24 * time.Hour,
		Cleanup: time.Hour,
	})
	defer idempotencyStore.Stop()

	// Initialize refresh token cleanup job (sweeps hourly)
	tokenCleanup := jobs.NewTokenCleanupJob(tokenService, 1*time.Hour)
	tokenCleanup.Start()
	defer tokenCleanup.Stop()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	registryHandler := handler.NewRegistryHandler(registryService)
	cardHandler := handler.NewCardHandler(cardService)
	duelHandler := handler.NewDuelHandler(duelService)
	healthHandler := handler.NewHealthHandler(db, version)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", healthHandler.Health)

	// Auth endpoints (public)
	mux.HandleFunc("POST /v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /v1/auth/login", authHandler.Login)
	mux.HandleFunc("POST /v1/auth/refresh", authHandler.Refresh)

	// Auth endpoints (protected)
	authMiddleware := middleware.Auth(tokenService)
	mux.Handle("POST /v1/auth/logout", authMiddleware(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("GET /v1/auth/me", authMiddleware(http.HandlerFunc(authHandler.Me)))

	// Registry endpoints
	mux.Handle("POST /v1/registries", authMiddleware(http.HandlerFunc(registryHandler.CreateRegistry)))
	mux.Handle("GET /v1/registries", authMiddleware(http.HandlerFunc(registryHandler.ListRegistries)))
	mux.Handle("GET /v1/registries/{registryId}", authMiddleware(http.HandlerFunc(registryHandler.GetRegistry)))

	// Card endpoints (registry-scoped)
	mux.Handle("POST /v1/registries/{registryId}/cards", authMiddleware(http.HandlerFunc(cardHandler.MintCard)))
	mux.Handle("GET /v1/registries/{registryId}/cards", authMiddleware(http.HandlerFunc(cardHandler.ListCards)))
	mux.Handle("GET /v1/registries/{registryId}/cards/{tokenId}", authMiddleware(http.HandlerFunc(cardHandler.GetCard)))
	mux.Handle("POST /v1/registries/{registryId}/cards/{tokenId}/transfer", authMiddleware(http.HandlerFunc(cardHandler.TransferCard)))
	mux.Handle("GET /v1/registries/{registryId}/cards/{tokenId}/provenance", authMiddleware(http.HandlerFunc(cardHandler.GetProvenance)))

	// Duel endpoint
	mux.Handle("POST /v1/registries/{registryId}/duels", authMiddleware(http.HandlerFunc(duelHandler.ResolveDuel)))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.RateLimit(rateLimiter),
		middleware.Idempotency(idempotencyStore),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
			slog.String("version", version),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
