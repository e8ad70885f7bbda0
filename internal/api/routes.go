package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// maxContactBody caps contact submissions, well above the field limits.
const maxContactBody = 64 << 10

// corsMaxAge is how long, in seconds, browsers may cache a preflight.
const corsMaxAge = 300

type routerOptions struct {
	allowedOrigins []string
}

// RouterOption configures NewRouter.
type RouterOption func(*routerOptions)

// WithAllowedOrigins lets pages served from origins, such as a published
// static build, call the JSON API cross-origin.
func WithAllowedOrigins(origins ...string) RouterOption {
	return func(o *routerOptions) {
		o.allowedOrigins = append(o.allowedOrigins, origins...)
	}
}

// NewRouter creates a new router with all routes configured
func NewRouter(h *Handler, opts ...RouterOption) *chi.Mux {
	var o routerOptions
	for _, opt := range opts {
		opt(&o)
	}

	r := chi.NewRouter()

	// Global middleware (all routes)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggingMiddleware)
	r.Use(RecoveryMiddleware)

	r.NotFound(h.NotFound)

	// Pages
	r.Get("/", h.Home)
	r.Get("/case-study/{slug}", h.CaseStudy)
	r.Handle("/static/*", h.Static())
	r.With(middleware.RequestSize(maxContactBody)).Post("/contact", h.ContactForm)

	r.Route("/api/v1", func(r chi.Router) {
		if len(o.allowedOrigins) > 0 {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins: o.allowedOrigins,
				AllowedMethods: []string{"GET", "POST", "OPTIONS"},
				AllowedHeaders: []string{"Content-Type"},
				ExposedHeaders: []string{"X-Request-Id"},
				MaxAge:         corsMaxAge,
			}))
		}

		r.Get("/health", h.Health)
		r.With(
			middleware.RequestSize(maxContactBody),
			middleware.AllowContentType("application/json"),
		).Post("/contact", h.Contact)
	})

	return r
}
