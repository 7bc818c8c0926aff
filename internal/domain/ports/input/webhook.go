package input

import (
	"context"

	"pr-webhook-service/internal/domain/models"
)

//go:generate mockery --name WebhookInputPort --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename WebhookInputPort.go

type WebhookInputPort interface {
	ProcessEvent(ctx context.Context, eventType string, signature string, body []byte) (*models.WebhookResult, error)
}
