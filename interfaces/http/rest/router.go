package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"catalog-admin/application/ports"
	"catalog-admin/domain/catalog"
	"catalog-admin/interfaces/http/rest/handlers"
	"catalog-admin/interfaces/http/rest/middleware"
	"catalog-admin/pkg/auth"
	"catalog-admin/pkg/observability"
)

// Services groups the use cases the router exposes.
type Services struct {
	Auth        ports.AuthService
	Products    ports.ProductService
	Providers   ports.ProviderService
	Users       ports.UserService
	Logos       ports.LogoService
	Stats       ports.StatsService
	Tags        ports.TagService
	Diagnostics ports.DiagnosticsService
}

// Options toggles the optional parts of the HTTP surface.
type Options struct {
	EnableCORS        bool
	CORSOrigins       []string
	EnableMetrics     bool
	EnableTracing     bool
	EnableDebugRoutes bool
	StoreTimeout      time.Duration
	SessionCookie     string
	SecureCookie      bool
	LoginWindow       time.Duration
	ConfigSummary     map[string]interface{}
}

// Router creates and configures the HTTP router
type Router struct {
	services     Services
	loginLimiter *auth.SlidingWindowLimiter
	metrics      *observability.Metrics
	opts         Options
	logger       *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	services Services,
	loginLimiter *auth.SlidingWindowLimiter,
	metrics *observability.Metrics,
	opts Options,
	logger *zap.Logger,
) *Router {
	return &Router{
		services:     services,
		loginLimiter: loginLimiter,
		metrics:      metrics,
		opts:         opts,
		logger:       logger,
	}
}

var writerRoles = []string{string(catalog.RoleAdmin), string(catalog.RoleEjecutivo)}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	if rt.opts.EnableTracing {
		router.Use(observability.TracingMiddleware)
	}
	if rt.opts.EnableMetrics && rt.metrics != nil {
		router.Use(middleware.Metrics(rt.metrics))
	}

	if rt.opts.EnableCORS {
		origins := rt.opts.CORSOrigins
		if len(origins) == 0 {
			origins = []string{"http://localhost:3000"}
		}
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   origins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	system := handlers.NewSystemHandler(rt.services.Diagnostics, rt.opts.ConfigSummary, rt.logger)
	router.Get("/health", system.Health)
	router.Get("/ready", system.Ready)
	if rt.opts.EnableMetrics && rt.metrics != nil {
		router.Method(http.MethodGet, "/metrics", rt.metrics.Handler())
	}

	authenticate := middleware.Authenticate(rt.services.Auth, rt.opts.SessionCookie, rt.logger)
	writers := middleware.RequireRoleForWrites(writerRoles...)
	adminOnly := middleware.RequireRole(string(catalog.RoleAdmin))

	router.Route("/api", func(r chi.Router) {
		if rt.opts.StoreTimeout > 0 {
			r.Use(chimiddleware.Timeout(rt.opts.StoreTimeout))
		}

		authHandler := handlers.NewAuthHandler(rt.services.Auth, handlers.CookieConfig{
			Name:   rt.opts.SessionCookie,
			Secure: rt.opts.SecureCookie,
		}, rt.logger)

		r.Route("/auth", func(r chi.Router) {
			r.With(rt.loginRateLimit()).Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.Post("/verify-token", authHandler.VerifyToken)
			r.With(authenticate).Post("/get-user", authHandler.GetUser)
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticate)

			catalogHandler := handlers.NewCatalogHandler(rt.services.Stats, rt.services.Tags, rt.logger)
			r.Get("/stats", catalogHandler.Stats)
			r.Get("/tags", catalogHandler.Tags)
			r.Get("/tags/colors", catalogHandler.TagColors)

			productHandler := handlers.NewProductHandler(rt.services.Products, rt.logger)
			r.Route("/simple-dynamodb/products", func(r chi.Router) {
				r.Use(writers)
				r.Get("/", productHandler.List)
				r.Post("/", productHandler.CreateSimple)
			})
			r.Route("/products", func(r chi.Router) {
				r.Use(writers)
				r.Get("/", productHandler.List)
				r.Post("/", productHandler.Create)
				r.Get("/{id}", productHandler.Get)
				r.Put("/{id}", productHandler.Update)
				r.Patch("/{id}", productHandler.Update)
				r.Delete("/{id}", productHandler.Delete)
			})

			providerHandler := handlers.NewProviderHandler(rt.services.Providers, rt.logger)
			r.Route("/providers", func(r chi.Router) {
				r.Use(writers)
				r.Get("/", providerHandler.List)
				r.Post("/", providerHandler.Create)
				r.Get("/{id}", providerHandler.Get)
				r.Put("/{id}", providerHandler.Update)
				r.Patch("/{id}", providerHandler.Update)
				r.Delete("/{id}", providerHandler.Delete)
			})

			userHandler := handlers.NewUserHandler(rt.services.Users, rt.logger)
			r.Get("/users/stats", userHandler.Stats)
			r.Route("/users", func(r chi.Router) {
				r.Use(adminOnly)
				r.Get("/", userHandler.List)
				r.Post("/", userHandler.Create)
				r.Get("/{id}", userHandler.Get)
				r.Put("/{id}", userHandler.Update)
				r.Patch("/{id}", userHandler.Update)
				r.Delete("/{id}", userHandler.Delete)
			})

			logoHandler := handlers.NewLogoHandler(rt.services.Logos, rt.logger)
			r.Route("/logos", func(r chi.Router) {
				r.Use(writers)
				r.Get("/", logoHandler.List)
				r.Post("/", logoHandler.Create)
				r.Get("/{id}", logoHandler.Get)
				r.Put("/{id}", logoHandler.Update)
				r.Patch("/{id}", logoHandler.Update)
				r.Delete("/{id}", logoHandler.Delete)
				r.Post("/{id}/primary", logoHandler.SetPrimary)
			})

			if rt.opts.EnableDebugRoutes {
				r.Route("/debug", func(r chi.Router) {
					r.Use(adminOnly)
					r.Get("/connection", system.Connection)
					r.Get("/config", system.Config)
				})
			}
		})
	})

	return router
}

func (rt *Router) loginRateLimit() func(http.Handler) http.Handler {
	if rt.loginLimiter == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	window := rt.opts.LoginWindow
	if window <= 0 {
		window = time.Minute
	}
	return middleware.RateLimit(rt.loginLimiter, rt.loginLimiter.Limit(), window.String(), rt.logger)
}
