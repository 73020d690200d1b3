package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"crowdfund/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: it resolves the caller, decodes the request, invokes the escrow use
// case and maps domain errors onto problem responses.
type Handler struct {
	svc    port.EscrowUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. Every escrow
// route requires an authenticated caller; maxBody caps request bodies.
func NewHandler(svc port.EscrowUseCase, auth *Authenticator, logger *slog.Logger, maxBody int64) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	if maxBody > 0 {
		r.Use(middleware.RequestSize(maxBody))
	}

	r.Get("/healthz", h.handleHealthz)
	r.Route("/api/v1/campaigns", func(r chi.Router) {
		r.Use(auth.Middleware)
		r.Post("/", h.handleCreateCampaign)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.handleGetCampaign)
			r.Post("/contributions", h.handleContribute)
			r.Get("/contributions/{account}", h.handleGetContribution)
			r.Post("/withdraw", h.handleWithdraw)
			r.Post("/refund", h.handleRefund)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}
