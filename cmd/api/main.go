// Package main is the entrypoint for the Tripforge API server.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/tripforge/tripforge/internal/auth"
	"github.com/tripforge/tripforge/internal/cache"
	"github.com/tripforge/tripforge/internal/config"
	"github.com/tripforge/tripforge/internal/handler"
	"github.com/tripforge/tripforge/internal/mail"
	"github.com/tripforge/tripforge/internal/metrics"
	"github.com/tripforge/tripforge/internal/middleware"
	"github.com/tripforge/tripforge/internal/repository"
	"github.com/tripforge/tripforge/internal/server"
	"github.com/tripforge/tripforge/internal/service"
	"github.com/tripforge/tripforge/internal/store"
	"github.com/tripforge/tripforge/internal/store/memory"
	"github.com/tripforge/tripforge/internal/suggest"
)

func main() {
	ctx := context.Background()

	// Local development convenience; ignored when the file is absent.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	if cfg.AuthBypassEnabled && cfg.IsProduction() {
		logger.Error("auth bypass must not be enabled in production")
		os.Exit(1)
	}

	srv := server.New(nil, cfg.AppPort, cfg.ReadTimeout, cfg.WriteTimeout, cfg.ShutdownTimeout, logger)

	// Storage: Postgres when configured, in-memory otherwise.
	var stores *store.Stores
	var dbChecker handler.HealthChecker
	if cfg.DatabaseURL != "" {
		repo, err := repository.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to connect to database",
				slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
				slog.String("database_url", redactURL(cfg.DatabaseURL)),
			)
			os.Exit(1)
		}
		srv.OnShutdown("database", func(context.Context) error {
			repo.Close()
			return nil
		})
		stores = repo.Stores()
		dbChecker = repo
		logger.Info("connected to database")
	} else {
		stores = memory.New()
		logger.Warn("DATABASE_URL not set, using in-memory storage")
	}

	// Cache: only needed for auth rate limiting.
	var cacheClient *cache.Cache
	var cacheChecker handler.HealthChecker
	if cfg.RedisURL != "" {
		cacheClient, err = cache.New(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("failed to connect to Redis",
				slog.String("error", sanitizeError(err, cfg.RedisURL)),
				slog.String("redis_url", redactURL(cfg.RedisURL)),
			)
			os.Exit(1)
		}
		srv.OnShutdown("cache", func(context.Context) error {
			return cacheClient.Close()
		})
		cacheChecker = cacheClient
		logger.Info("connected to Redis")
	} else {
		logger.Warn("REDIS_URL not set, auth rate limiting disabled")
	}

	recorder := metrics.NewInMemory()
	tokens := auth.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)

	authService := service.NewAuthService(stores.Users, service.Argon2Hasher{}, tokens, cfg.GetAdminEmails(), recorder)
	tripService := service.NewTripService(stores, recorder)
	adminService := service.NewAdminService(stores.Users, stores.Trips)

	var provider service.SuggestionProvider
	if cfg.GeminiAPIKey != "" {
		provider = suggest.NewGemini(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.SuggestRPS, cfg.SuggestBurst, cfg.SuggestTimeout)
		logger.Info("suggestion provider enabled", slog.String("model", cfg.GeminiModel))
	} else {
		logger.Warn("GEMINI_API_KEY not set, serving fallback suggestions only")
	}
	suggestionService := service.NewSuggestionService(provider, logger, recorder)

	var notifier service.Notifier
	if cfg.SMTPHost != "" && cfg.SMTPUser != "" {
		notifier = mail.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailTo)
		logger.Info("contact mail notifications enabled", slog.String("smtp_host", cfg.SMTPHost))
	} else {
		logger.Warn("SMTP not configured, contact messages will only be persisted")
	}
	contactService := service.NewContactService(stores.Contacts, notifier, logger, recorder)

	h := handler.New()
	healthHandler := handler.NewHealthHandler(logger, dbChecker, cacheChecker)
	authHandler := handler.NewAuthHandler(authService, logger)
	tripHandler := handler.NewTripHandler(tripService, logger)
	itineraryHandler := handler.NewItineraryHandler(tripService, logger)
	accommodationHandler := handler.NewAccommodationHandler(tripService, logger)
	expenseHandler := handler.NewExpenseHandler(tripService, logger)
	adminHandler := handler.NewAdminHandler(adminService, logger)
	suggestHandler := handler.NewSuggestHandler(suggestionService, logger)
	contactHandler := handler.NewContactHandler(contactService, logger)

	router := setupRouter(routerDeps{
		base:          h,
		health:        healthHandler,
		auth:          authHandler,
		trips:         tripHandler,
		itinerary:     itineraryHandler,
		accommodation: accommodationHandler,
		expenses:      expenseHandler,
		admin:         adminHandler,
		suggest:       suggestHandler,
		contact:       contactHandler,
		users:         stores.Users,
		tokens:        tokens,
		cache:         cacheClient,
		cfg:           cfg,
		logger:        logger,
	})
	srv.SetHandler(router)

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
		"auth_bypass", cfg.AuthBypassEnabled,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)}

	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// routerDeps bundles everything setupRouter wires together.
type routerDeps struct {
	base          *handler.Handler
	health        *handler.HealthHandler
	auth          *handler.AuthHandler
	trips         *handler.TripHandler
	itinerary     *handler.ItineraryHandler
	accommodation *handler.AccommodationHandler
	expenses      *handler.ExpenseHandler
	admin         *handler.AdminHandler
	suggest       *handler.SuggestHandler
	contact       *handler.ContactHandler
	users         store.UserStore
	tokens        *auth.TokenCodec
	cache         *cache.Cache
	cfg           *config.Config
	logger        *slog.Logger
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(d routerDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(d.logger))
	r.Use(middleware.Recoverer(d.logger))
	r.Use(middleware.Security(middleware.SecurityConfig{
		IsDevelopment:      d.cfg.IsDevelopment(),
		MaxRequestBodySize: d.cfg.MaxRequestBodySize,
	}))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = d.cfg.GetCORSAllowedOrigins()
	r.Use(middleware.CORS(corsCfg))

	r.Get("/healthz", d.health.Healthz)
	r.Get("/readyz", d.health.Readyz)
	r.Get("/", d.base.Hello)

	authCfg := middleware.AuthConfig{
		Logger: d.logger,
		Tokens: d.tokens,
		Bypass: middleware.BypassPolicy{
			Enabled:      d.cfg.AuthBypassEnabled,
			PathPrefixes: d.cfg.GetAuthBypassPrefixes(),
			UserID:       d.cfg.AuthBypassUserID,
		},
	}

	rateLimitCfg := middleware.RateLimitConfig{
		Logger:  d.logger,
		Cache:   d.cache,
		Enabled: d.cfg.RateLimitAuthEnabled && d.cache != nil,
		RPM:     d.cfg.RateLimitAuthRPM,
		Burst:   d.cfg.RateLimitAuthBurst,
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.RateLimitAuth(rateLimitCfg))
			r.Post("/register", d.auth.Register)
			r.Post("/login", d.auth.Login)
		})

		r.Post("/contact", d.contact.Submit)

		// Everything below requires a verified identity (or the dev
		// bypass, outside production).
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(authCfg))

			r.Route("/trips", func(r chi.Router) {
				r.Post("/", d.trips.Create)
				r.Get("/user/{userId}", d.trips.ListByUser)
				r.Get("/{id}", d.trips.Get)
				r.Put("/{id}", d.trips.Update)
				r.Delete("/{id}", d.trips.Delete)
				r.Get("/{id}/budget", d.trips.Budget)
			})

			r.Route("/itinerary", func(r chi.Router) {
				r.Post("/", d.itinerary.Create)
				r.Get("/trip/{tripId}", d.itinerary.ListByTrip)
			})

			r.Route("/accommodation", func(r chi.Router) {
				r.Post("/", d.accommodation.Create)
				r.Get("/trip/{tripId}", d.accommodation.ListByTrip)
			})

			r.Route("/expenses", func(r chi.Router) {
				r.Post("/", d.expenses.Create)
				r.Get("/trip/{tripId}", d.expenses.ListByTrip)
			})

			r.Post("/ai/itinerary-suggest", d.suggest.Suggest)

			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireAdmin(d.users, d.logger))
				r.Get("/stats", d.admin.Stats)
				r.Get("/users", d.admin.ListUsers)
				r.Get("/trips", d.admin.ListTrips)
			})
		})
	})

	r.NotFound(d.base.NotFound)
	r.MethodNotAllowed(d.base.MethodNotAllowed)

	return r
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
