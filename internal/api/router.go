package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/jwtauth/v5"

	"tanglaw_backend/internal/api/handler"
	"tanglaw_backend/internal/api/middleware"
	"tanglaw_backend/internal/app/service"
	"tanglaw_backend/internal/common/security"
)

type RouterOptions struct {
	// StaticDir, when non-empty, is served as the client application for any
	// path the API does not claim.
	StaticDir string

	RateLimitRPS   float64
	RateLimitBurst int
}

func NewRouter(
	authService *service.AuthService,
	directoryService *service.DirectoryService,
	messageService *service.MessageService,
	appointmentService *service.AppointmentService,
	opts RouterOptions,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Verifies a bearer token when present and puts claims in context; only
	// routes behind middleware.Authenticator require one.
	r.Use(jwtauth.Verifier(security.TokenAuth))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(directoryService)
	messageHandler := handler.NewMessageHandler(messageService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)

	limiter := middleware.NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst)

	r.Route("/api", func(api chi.Router) {
		// Credential endpoints are rate limited per client IP.
		api.Group(func(public chi.Router) {
			public.Use(limiter.Handler)
			authHandler.RegisterRoutes(public)
		})

		api.Group(func(authed chi.Router) {
			authed.Use(middleware.Authenticator)
			authed.Get("/me", authHandler.Me)
		})

		userHandler.RegisterRoutes(api)
		messageHandler.RegisterRoutes(api)
		appointmentHandler.RegisterRoutes(api)
	})

	if opts.StaticDir != "" {
		fs := http.FileServer(http.Dir(opts.StaticDir))
		r.NotFound(func(w http.ResponseWriter, req *http.Request) {
			fs.ServeHTTP(w, req)
		})
	}

	return r
}
