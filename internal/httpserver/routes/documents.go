package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrSnakeDoc/docstore/internal/httpserver/deps"
	"github.com/MrSnakeDoc/docstore/internal/httpserver/handlers"
)

func init() { Register(registerDocuments, middleware.AllowContentType("application/json")) }

func registerDocuments(r chi.Router, d deps.Deps) {
	r.Route("/api/documents", func(r chi.Router) {
		r.Post("/", handlers.SaveDocument(d))
		r.Post("/search", handlers.SearchDocuments(d))
		r.Get("/{id}", handlers.GetDocument(d))
	})
}
