// Package main is the entrypoint for the Highway API server.
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
	"github.com/prometheus/client_golang/prometheus"

	"github.com/highway/highway/internal/cache"
	"github.com/highway/highway/internal/config"
	"github.com/highway/highway/internal/handler"
	"github.com/highway/highway/internal/metrics"
	"github.com/highway/highway/internal/middleware"
	"github.com/highway/highway/internal/payments"
	"github.com/highway/highway/internal/server"
	"github.com/highway/highway/internal/settlement"
	"github.com/highway/highway/internal/store"
	"github.com/highway/highway/internal/token"
)

func main() {
	// Initialize context
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg)

	// Initialize database
	st, err := store.New(ctx, cfg.MongoURL, cfg.MongoDB)
	if err != nil {
		logger.Error(
			"failed to connect to MongoDB",
			slog.String("error", sanitizeError(err, cfg.MongoURL)),
			slog.String("mongo_url", redactURL(cfg.MongoURL)),
		)
		os.Exit(1)
	}
	logger.Info("connected to MongoDB", "database", cfg.MongoDB)

	// Initialize cache
	cacheClient, err := cache.New(ctx, cfg.RedisURL)
	if err != nil {
		logger.Error(
			"failed to connect to Redis",
			slog.String("error", sanitizeError(err, cfg.RedisURL)),
			slog.String("redis_url", redactURL(cfg.RedisURL)),
		)
		os.Exit(1)
	}
	logger.Info("connected to Redis")

	// Initialize metrics
	registry := prometheus.NewRegistry()
	recorder := metrics.NewCollector(registry)

	// Initialize services
	tokens := token.NewService(cfg.AccessTokenSecret, cfg.AccessTokenTTL)
	stripeClient := payments.NewStripeClient(cfg.StripeSecretKey)
	settle := settlement.NewService(st, st, stripeClient, logger, recorder)

	// Initialize handlers
	h := handler.New()
	healthHandler := handler.NewHealthHandler(st, cacheClient)
	productHandler := handler.NewProductHandler(st, logger)
	userHandler := handler.NewUserHandler(st, tokens, cacheClient, logger)
	orderHandler := handler.NewOrderHandler(st, settle, logger, recorder)
	reviewHandler := handler.NewReviewHandler(st, logger)
	profileHandler := handler.NewProfileHandler(st, logger)
	paymentHandler := handler.NewPaymentHandler(settle, logger)

	// Setup router
	r := setupRouter(routerDeps{
		root:     h,
		health:   healthHandler,
		products: productHandler,
		users:    userHandler,
		orders:   orderHandler,
		reviews:  reviewHandler,
		profiles: profileHandler,
		payments: paymentHandler,
		store:    st,
		cache:    cacheClient,
		tokens:   tokens,
		recorder: recorder,
		registry: registry,
		cfg:      cfg,
		logger:   logger,
	})

	// Create and run server
	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	srv.OnShutdown("redis", func(ctx context.Context) error {
		return cacheClient.Close()
	})
	srv.OnShutdown("mongodb", func(ctx context.Context) error {
		return st.Close(ctx)
	})

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	level := parseLogLevel(cfg.LogLevel)

	opts := &slog.HandlerOptions{
		Level: level,
	}

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

// routerDeps bundles everything setupRouter needs.
type routerDeps struct {
	root     *handler.Handler
	health   *handler.HealthHandler
	products *handler.ProductHandler
	users    *handler.UserHandler
	orders   *handler.OrderHandler
	reviews  *handler.ReviewHandler
	profiles *handler.ProfileHandler
	payments *handler.PaymentHandler
	store    *store.Store
	cache    *cache.Cache
	tokens   *token.Service
	recorder metrics.Recorder
	registry *prometheus.Registry
	cfg      *config.Config
	logger   *slog.Logger
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(d routerDeps) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(d.logger))
	r.Use(middleware.Recoverer(d.logger))
	r.Use(middleware.Security(middleware.DefaultSecurityConfig()))
	r.Use(middleware.MaxBodySize(d.cfg.MaxRequestBodySize))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = d.cfg.GetCORSAllowedOrigins()
	r.Use(middleware.CORS(corsCfg))

	// Health and metrics endpoints (no auth required)
	r.Get("/healthz", d.health.Healthz)
	r.Get("/readyz", d.health.Readyz)
	r.Method("GET", "/metrics", metrics.Handler(d.registry))

	// Root info endpoint
	r.Get("/", d.root.Root)

	// Auth middleware configuration
	authCfg := middleware.AuthConfig{
		Logger:  d.logger,
		Tokens:  d.tokens,
		Metrics: d.recorder,
	}

	adminCfg := middleware.AdminConfig{
		Logger:  d.logger,
		Store:   d.store,
		Cache:   d.cache,
		Metrics: d.recorder,
	}

	// Rate limit middleware configuration
	rateLimitCfg := middleware.RateLimitConfig{
		Logger:        d.logger,
		Cache:         d.cache,
		APIEnabled:    d.cfg.RateLimitAPIEnabled,
		PublicEnabled: d.cfg.RateLimitPublicEnabled,
		PublicRPS:     d.cfg.RateLimitPublicRPS,
		PublicBurst:   d.cfg.RateLimitPublicBurst,
	}

	requireAuth := middleware.RequireAuth(authCfg)
	requireAdmin := middleware.RequireAdmin(adminCfg)
	ownerMatch := middleware.RequireOwnerMatch("email", d.recorder)
	rateLimitAPI := middleware.RateLimitAPI(rateLimitCfg)
	rateLimitIP := middleware.RateLimitIP(rateLimitCfg)

	// Public catalog endpoints (IP rate limited)
	r.Group(func(r chi.Router) {
		r.Use(rateLimitIP)

		r.Get("/product", d.products.List)
		r.Get("/product/{id}", d.products.Get)
		r.Post("/product", d.products.Create)
		r.Delete("/product/{id}", d.products.Delete)

		r.Post("/order", d.orders.Create)
		r.Post("/myreview", d.reviews.Create)
		r.Post("/myprofile", d.profiles.Create)

		r.Get("/user", d.users.List)
		r.Put("/user/{email}", d.users.Upsert)
		r.Get("/admin/{email}", d.users.CheckAdmin)
	})

	// Authenticated endpoints
	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Use(rateLimitAPI)

		// Owner-scoped listings: the email query parameter must match
		// the authenticated identity.
		r.With(ownerMatch).Get("/order", d.orders.List)
		r.With(ownerMatch).Get("/myreview", d.reviews.List)

		r.Get("/order/{id}", d.orders.Get)
		r.Patch("/order/{id}", d.orders.Settle)
		r.Post("/create-payment-intent", d.payments.CreateIntent)

		// Admin-gated role management
		r.With(requireAdmin).Put("/user/admin/{email}", d.users.GrantAdmin)
	})

	// 404 and 405 handlers
	r.NotFound(d.root.NotFound)
	r.MethodNotAllowed(d.root.MethodNotAllowed)

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
