package api

import (
	"net/http"
	"time"

	"fitastic/internal/api/handler"
	"fitastic/internal/api/middleware"
	"fitastic/internal/app/service"
	"fitastic/internal/common/security"
	"fitastic/internal/platform/config"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
	"github.com/rs/cors"
)

func NewRouter(
	authService *service.AuthService,
	defaultExerciseService *service.DefaultExerciseService,
	userExerciseService *service.UserExerciseService,
	userSessionService *service.UserSessionService,
	authMw *middleware.AuthMiddleware,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   config.AppConfig.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler)

	// Verifier parses "Authorization: Bearer T" and puts claims in context.
	// Authenticate resolves them to a user; requests without a usable token
	// pass through and are rejected by RequireAuth on protected routes.
	r.Use(jwtauth.Verifier(security.TokenAuth))
	r.Use(authMw.Authenticate)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Auth routes (public)
	authHandler := handler.NewAuthHandler(authService)
	r.Group(func(public chi.Router) {
		authHandler.RegisterRoutes(public)
	})

	defaultExerciseHandler := handler.NewDefaultExerciseHandler(defaultExerciseService)

	// Authenticated API
	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.RequireAuth)

		api.Route("/defaultExercises", defaultExerciseHandler.RegisterRoutes)

		userExerciseHandler := handler.NewUserExerciseHandler(userExerciseService)
		api.Route("/userExercises", userExerciseHandler.RegisterRoutes)

		userSessionHandler := handler.NewUserSessionHandler(userSessionService)
		api.Route("/userSessions", userSessionHandler.RegisterRoutes)
	})

	// Catalog management (admin role required)
	r.Route("/admin_only", func(admin chi.Router) {
		admin.Use(middleware.RequireAuth)
		admin.Route("/defaultExercises", defaultExerciseHandler.RegisterAdminRoutes)
	})

	return r
}
