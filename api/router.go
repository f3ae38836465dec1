package api

import (
	"net/http"

	"github.com/Goofygiraffe06/breachcheck/internal/checker"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterOptions tune the web front end.
type RouterOptions struct {
	MaxBodyBytes   int64
	AllowedOrigins []string
}

// NewRouter wires the form page, the JSON API and the health check.
func NewRouter(client checker.Checker, opts RouterOptions) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	if opts.MaxBodyBytes > 0 {
		router.Use(middleware.RequestSize(opts.MaxBodyBytes))
	}

	router.Get("/health", HealthHandler())
	router.Get("/", FormPageHandler())
	router.Post("/check", FormSubmitHandler(client))

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	router.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type"},
			MaxAge:         300,
		}))
		r.Post("/check", APICheckHandler(client))
	})

	return router
}
