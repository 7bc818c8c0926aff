package http

import (
	"net/http"

	input "pr-webhook-service/internal/domain/ports/input"
	"pr-webhook-service/internal/infrastructure/config"
	"pr-webhook-service/internal/infrastructure/http/handlers/health"
	"pr-webhook-service/internal/infrastructure/http/handlers/pr"
	"pr-webhook-service/internal/infrastructure/http/handlers/webhook"
	middlewares "pr-webhook-service/internal/infrastructure/http/middleware"
	"pr-webhook-service/internal/infrastructure/logger"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

type Router struct {
	router *chi.Mux
	log    *logger.Logger

	webhookService input.WebhookInputPort
	prService      input.PRInputPort
}

func NewRouter(log *logger.Logger, webhookSvc input.WebhookInputPort, prSvc input.PRInputPort) *Router {
	return &Router{
		router:         chi.NewRouter(),
		log:            log,
		webhookService: webhookSvc,
		prService:      prSvc,
	}
}

func (r *Router) Setup(cfg *config.Config) {
	r.router.Use(chiMiddleware.RequestID)
	r.router.Use(chiMiddleware.RealIP)
	r.router.Use(chiMiddleware.Recoverer)
	r.router.Use(middlewares.RequestLoggerMiddleware(r.log))
	r.router.Use(chiMiddleware.Timeout(cfg.HTTPServer.RequestTimeout))

	r.router.Get("/health", health.NewHealthHandler().Check)
	r.router.Mount("/webhooks", r.setupWebhookRoutes())
	r.router.Mount("/pull-requests", r.setupPRRoutes())
}

func (r *Router) setupWebhookRoutes() http.Handler {
	h := webhook.NewWebhookHandler(r.webhookService, r.log)
	sub := chi.NewRouter()
	sub.Post("/github", h.HandleGitHub)
	return sub
}

func (r *Router) setupPRRoutes() http.Handler {
	h := pr.NewPRHandler(r.prService, r.log)
	sub := chi.NewRouter()
	sub.Post("/", h.CreatePR)
	sub.Get("/", h.ListPRs)
	sub.Get("/{id}", h.GetPR)
	sub.Get("/{id}/files", h.GetPRFiles)
	return sub
}

func (r *Router) GetRouter() *chi.Mux { return r.router }
