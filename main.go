package main

import (
	"io"
	"log"
	"net/http"
	"os"

	"github.com/edupack/scorm-server/internal/config"
	"github.com/edupack/scorm-server/internal/gelf"
	"github.com/edupack/scorm-server/internal/handler"
	"github.com/edupack/scorm-server/internal/repository"
	"github.com/edupack/scorm-server/internal/router"
	"github.com/edupack/scorm-server/internal/service"
)

func main() {
	cfg := config.Load()

	// GELF UDP logging
	if cfg.GelfAddr != "" {
		gelfWriter, err := gelf.New(cfg.GelfAddr)
		if err != nil {
			log.Printf("Warning: GELF init failed: %v", err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stderr, gelfWriter))
			log.Printf("GELF logging: enabled (%s)", cfg.GelfAddr)
		}
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload dir %s: %v", cfg.UploadDir, err)
	}

	// Repositories
	todoRepo := repository.NewMemoryTodoRepo(repository.DefaultSeed())

	// Services
	todoSvc := service.NewTodoService(todoRepo)
	scormSvc := service.NewScormService(cfg.UploadDir)

	// Handlers
	todoH := handler.NewTodoHandler(todoSvc)
	scormH := handler.NewScormHandler(scormSvc)

	// Router
	r := router.New(cfg, todoH, scormH)

	log.Printf("scorm-server starting on %s (upload dir %s, max upload %d bytes)",
		cfg.HTTPAddr, cfg.UploadDir, cfg.MaxUpload)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
