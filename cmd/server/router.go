package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/namemagic/internal/api"
	apiMiddleware "github.com/phrazzld/namemagic/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger)) // Add trace IDs for improved error handling

	pageHandler := api.NewPageHandler(app.meaningService, app.renderer, app.translator, app.logger)
	meaningHandler := api.NewMeaningHandler(app.meaningService, app.logger)

	// Page routes
	r.Get("/", pageHandler.Show)
	r.Post("/", pageHandler.Submit)
	r.Post("/reset", pageHandler.Reset)

	r.Route("/api", func(r chi.Router) {
		r.Post("/meanings", meaningHandler.Reveal)
	})

	// Health check endpoint
	r.Get("/health", api.Health)

	return r
}
