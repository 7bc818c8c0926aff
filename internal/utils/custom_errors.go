package utils

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized           = errors.New("webhook signature verification failed")
	ErrEmptyPayload           = errors.New("empty payload")
	ErrMalformedPayload       = errors.New("malformed payload")
	ErrMissingEventType       = errors.New("missing X-GitHub-Event header")
	ErrMissingPullRequestData = errors.New("payload has no pull_request data")
	ErrPRNotFound             = errors.New("pull request not found")
	ErrPRExists               = errors.New("pull request already exists")
	ErrNotFound               = errors.New("not found")
	ErrInvalidArgument        = errors.New("invalid argument")
	ErrInternal               = errors.New("internal error")
)

// ValidationError reports a required payload field that was absent or
// empty during normalization.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

func NewValidationError(field string) error {
	return &ValidationError{Field: field}
}
