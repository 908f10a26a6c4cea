package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/edupack/scorm-server/internal/config"
	"github.com/edupack/scorm-server/internal/handler"
	mw "github.com/edupack/scorm-server/internal/middleware"
)

func New(cfg *config.Config, todoH *handler.TodoHandler, scormH *handler.ScormHandler) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS(cfg.CORSOrigin))
	r.Use(mw.MaxBytes(cfg.MaxUpload))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		// Todos
		r.Get("/todos", todoH.List)
		r.Post("/todos", todoH.Create)
		r.Get("/todos/{id}", todoH.Get)
		r.Put("/todos/{id}", todoH.Update)
		r.Delete("/todos/{id}", todoH.Delete)

		// SCORM packages
		r.Post("/upload-scorm", scormH.Upload)
	})

	return r
}
