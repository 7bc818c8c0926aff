package services

import "pr-webhook-service/internal/domain/models"

//go:generate mockery --name SignatureVerifier --dir . --output ../../../mocks --outpkg mocks --with-expecter --filename SignatureVerifier.go
//go:generate mockery --name EventNormalizer --dir . --output ../../../mocks --outpkg mocks --with-expecter --filename EventNormalizer.go

// SignatureVerifier checks the authenticity of a raw webhook body
// against the signature header supplied by the sender.
type SignatureVerifier interface {
	Verify(body []byte, signature string) bool
}

// EventNormalizer parses a raw pull_request payload into a validated
// domain event.
type EventNormalizer interface {
	Normalize(body []byte) (*models.WebhookEvent, error)
}
