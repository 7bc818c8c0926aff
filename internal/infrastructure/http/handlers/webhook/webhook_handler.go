package webhook

import (
	input "pr-webhook-service/internal/domain/ports/input"
	"pr-webhook-service/internal/infrastructure/logger"
)

type WebhookHandler struct {
	webhookService input.WebhookInputPort
	log            *logger.Logger
}

func NewWebhookHandler(s input.WebhookInputPort, log *logger.Logger) *WebhookHandler {
	return &WebhookHandler{webhookService: s, log: log}
}
