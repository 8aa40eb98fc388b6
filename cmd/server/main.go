package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitastic/internal/api"
	"fitastic/internal/api/middleware"
	"fitastic/internal/app/service"
	"fitastic/internal/common/security"
	"fitastic/internal/domain/repository"
	"fitastic/internal/platform/cache"
	"fitastic/internal/platform/config"
	"fitastic/internal/platform/database"
	"fitastic/internal/platform/logging"

	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	config.Load()

	// 2. Initialize Logger
	logging.Init(config.AppConfig.LogLevel)
	defer logging.L.Sync()
	logging.L.Info("configuration loaded")

	// 3. Initialize JWT
	security.InitJWT()

	// 4. Initialize Database
	database.Connect()
	defer database.Close()
	if err := database.Migrate(context.Background(), database.DB); err != nil {
		logging.L.Fatal("database migration failed", zap.Error(err))
	}
	logging.L.Info("database connected")

	// 5. Initialize Redis
	cache.ConnectRedis()
	defer cache.CloseRedis()
	logging.L.Info("redis connected")

	// 6. Initialize Repositories
	userRepo := repository.NewPgUserRepository(database.DB)
	tokenRepo := repository.NewCachedTokenRepository(
		repository.NewPgTokenRepository(database.DB),
		cache.RDB,
		config.AppConfig.TokenCacheTTL,
	)
	defaultExerciseRepo := repository.NewPgDefaultExerciseRepository(database.DB)
	userExerciseRepo := repository.NewPgUserExerciseRepository(database.DB)
	userSessionRepo := repository.NewPgUserSessionRepository(database.DB)

	// 7. Initialize Services
	authService := service.NewAuthService(userRepo, tokenRepo)
	defaultExerciseService := service.NewDefaultExerciseService(defaultExerciseRepo)
	userExerciseService := service.NewUserExerciseService(userExerciseRepo)
	userSessionService := service.NewUserSessionService(userSessionRepo)

	// 8. Initialize Router & HTTP Server
	authMw := middleware.NewAuthMiddleware(authService, userRepo)
	router := api.NewRouter(authService, defaultExerciseService, userExerciseService, userSessionService, authMw)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 9. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logging.L.Info("server starting", zap.String("port", config.AppConfig.APIPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.L.Fatal("server failed to start", zap.Error(err))
		}
	}()

	<-stop

	logging.L.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.L.Fatal("server shutdown failed", zap.Error(err))
	}

	logging.L.Info("server stopped gracefully")
}
