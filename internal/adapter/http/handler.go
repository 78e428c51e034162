package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"bcl-factory/internal/core/port"
)

// Handler is the inbound HTTP adapter. It validates provisioning requests,
// schedules background runs through the usecase port and exposes campaign
// status for polling. Routes are registered on a chi.Router.
type Handler struct {
	svc    port.ProvisionUseCase
	repo   port.CampaignRepository
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. allowedOrigins
// feeds the CORS middleware so the dashboard frontend can call the API
// directly from the browser.
func NewHandler(svc port.ProvisionUseCase, repo port.CampaignRepository, allowedOrigins []string, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, repo: repo, logger: logger}
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/healthz", h.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/provision/instances", h.handleProvision)
		r.Get("/campaigns/{id}", h.handleCampaignStatus)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
