package models

import "github.com/google/uuid"

const (
	WebhookStatusSuccess = "success"
	WebhookStatusIgnored = "ignored"
)

// WebhookEvent is a fully parsed and validated pull_request delivery.
// Once built, every required field of PullRequest is populated.
type WebhookEvent struct {
	Action      string
	PullRequest PullRequest
	Files       []File
}

// WebhookResult is the outcome of processing one delivery.
type WebhookResult struct {
	Status   string
	Message  string
	Action   string
	PRID     uuid.UUID
	PRNumber int
	// ReceivedEvent is set when the delivery was skipped because of an
	// unsupported event type.
	ReceivedEvent string
}

// Ignored reports whether the delivery was a recognized no-op.
func (r *WebhookResult) Ignored() bool {
	return r.Status == WebhookStatusIgnored
}
