package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/lflopes1997/Projeto-ControleEstoque/internal/http/handlers"
	rl "github.com/lflopes1997/Projeto-ControleEstoque/internal/http/rate_limiter"
)

// RouterConfig controls the optional middleware of the router. The zero
// value yields a bare router, which is what the test suites use.
type RouterConfig struct {
	AllowedOrigin string
	Visitors      *rl.Visitors
	Logger        *logrus.Logger
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	if cfg.Logger != nil {
		r.Use(RequestLogger(cfg.Logger))
	}
	if cfg.AllowedOrigin != "" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{cfg.AllowedOrigin},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
		}))
	}
	if cfg.Visitors != nil {
		r.Use(RateLimit(cfg.Visitors))
	}

	r.Get("/", handlers.RootHandler)
	r.Get("/health", handlers.HealthHandler)

	r.Route("/produtos", func(r chi.Router) {
		r.Get("/", handlers.GetProductsHandler)
		r.Post("/", handlers.CreateProductHandler)
		r.Get("/{id}", handlers.GetProductByIDHandler)
		r.Put("/{id}", handlers.UpdateProductHandler)
		r.Delete("/{id}", handlers.DeleteProductHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}
