package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/pampered-pooch/site-api/internal/config"
	"github.com/pampered-pooch/site-api/internal/transport/http/handler"
	appmiddleware "github.com/pampered-pooch/site-api/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// 5 requests/second, burst of 10 — applied to the mail-sending endpoints.
	mailRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	contactH := handler.NewContactHandler(deps.Contact)
	reviewsH := handler.NewReviewsHandler(deps.Reviews)
	siteH := handler.NewSiteContentHandler(deps.SiteContent)
	healthH := handler.NewHealthHandler()

	r.Route("/api", func(r chi.Router) {
		r.With(mailRL.Limit).Post("/send-verification", contactH.SendVerification)
		r.With(mailRL.Limit).Post("/verify-code", contactH.VerifyCode)
		r.With(mailRL.Limit).Post("/send-message", contactH.SendMessage)
		r.Get("/reviews", reviewsH.List)
		r.Get("/config", siteH.Get)
		r.Get("/health", healthH.Check)
	})

	// Everything else is the built site, with an index.html fallback.
	r.Handle("/*", handler.NewSPAHandler(cfg.StaticDir))

	return r
}
