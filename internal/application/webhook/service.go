package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pr-webhook-service/internal/domain/models"
	"pr-webhook-service/internal/domain/ports/input"
	ports "pr-webhook-service/internal/domain/ports/output"
	uow "pr-webhook-service/internal/domain/ports/output/uow"
	"pr-webhook-service/internal/domain/services"
	"pr-webhook-service/internal/utils"
)

// EventTypePullRequest is the only X-GitHub-Event type this service
// handles; everything else is reported as ignored.
const EventTypePullRequest = "pull_request"

var handledActions = map[string]struct{}{
	"opened":      {},
	"synchronize": {},
	"reopened":    {},
	"closed":      {},
}

// fileRefreshActions are the actions that touch the file set.
var fileRefreshActions = map[string]struct{}{
	"opened":      {},
	"synchronize": {},
	"reopened":    {},
}

type Service struct {
	uow        uow.UnitOfWork
	verifier   services.SignatureVerifier
	normalizer services.EventNormalizer
	log        ports.Logger
}

func NewService(uow uow.UnitOfWork, verifier services.SignatureVerifier, normalizer services.EventNormalizer, log ports.Logger) input.WebhookInputPort {
	return &Service{uow: uow, verifier: verifier, normalizer: normalizer, log: log}
}

// ProcessEvent runs one delivery through verification, event filtering,
// normalization and the transactional upsert. Verification and shape
// errors are reported before any database interaction happens.
func (s *Service) ProcessEvent(ctx context.Context, eventType string, signature string, body []byte) (*models.WebhookResult, error) {
	if len(body) == 0 {
		return nil, utils.ErrEmptyPayload
	}
	if !json.Valid(body) {
		return nil, utils.ErrMalformedPayload
	}
	if !s.verifier.Verify(body, signature) {
		s.log.Warn("webhook signature rejected", "event_type", eventType)
		return nil, utils.ErrUnauthorized
	}
	if eventType == "" {
		return nil, utils.ErrMissingEventType
	}
	if eventType != EventTypePullRequest {
		s.log.Info("ignoring unsupported event type", "event_type", eventType)
		return &models.WebhookResult{
			Status:        models.WebhookStatusIgnored,
			Message:       fmt.Sprintf("Event type '%s' not supported", eventType),
			ReceivedEvent: eventType,
		}, nil
	}

	event, err := s.normalizer.Normalize(body)
	if err != nil {
		return nil, err
	}

	if _, ok := handledActions[event.Action]; !ok {
		s.log.Info("ignoring unhandled action", "action", event.Action)
		return &models.WebhookResult{
			Status:  models.WebhookStatusIgnored,
			Message: fmt.Sprintf("Action '%s' not handled", event.Action),
			Action:  event.Action,
		}, nil
	}

	result, err := s.upsert(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("process '%s' event: %w", event.Action, err)
	}
	return result, nil
}

// upsert applies the event inside a single transaction so the pull
// request row and its file set never diverge.
func (s *Service) upsert(ctx context.Context, event *models.WebhookEvent) (*models.WebhookResult, error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("begin tx failed", "err", err)
		return nil, err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()

	prRepo := tx.PullRequestRepository()
	pr := event.PullRequest

	existing, err := prRepo.LockByRepoAndNumber(ctx, pr.Repository, pr.Number)
	if err != nil && !errors.Is(err, utils.ErrPRNotFound) {
		s.log.Error("lookup failed", "repository", pr.Repository, "pr_number", pr.Number, "err", err)
		return nil, err
	}

	created := existing == nil
	var message string
	if created {
		if err := prRepo.Create(ctx, &pr); err != nil {
			s.log.Error("create failed", "repository", pr.Repository, "pr_number", pr.Number, "err", err)
			return nil, err
		}
		message = fmt.Sprintf("Created new PR #%d", pr.Number)
	} else {
		// The lookup key and surrogate id are immutable; everything
		// else comes from the event, and updated_at is always
		// refreshed.
		pr.ID = existing.ID
		pr.UpdatedAt = time.Now().UTC()
		if err := prRepo.Update(ctx, &pr); err != nil {
			s.log.Error("update failed", "repository", pr.Repository, "pr_number", pr.Number, "err", err)
			return nil, err
		}
		message = fmt.Sprintf("Updated existing PR #%d", pr.Number)
	}

	if _, ok := fileRefreshActions[event.Action]; ok {
		if created || event.Action == "synchronize" {
			if err := s.replaceFiles(ctx, tx, &pr, event.Files, created); err != nil {
				return nil, err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("commit failed", "repository", pr.Repository, "pr_number", pr.Number, "err", err)
		return nil, err
	}
	commit = true

	s.log.Info("webhook processed",
		"action", event.Action,
		"repository", pr.Repository,
		"pr_number", pr.Number,
		"pr_id", pr.ID,
		"created", created,
	)

	return &models.WebhookResult{
		Status:   models.WebhookStatusSuccess,
		Message:  message,
		Action:   event.Action,
		PRID:     pr.ID,
		PRNumber: pr.Number,
	}, nil
}

func (s *Service) replaceFiles(ctx context.Context, tx uow.Transaction, pr *models.PullRequest, files []models.File, created bool) error {
	fileRepo := tx.FileRepository()
	if !created {
		if err := fileRepo.DeleteByPullRequestID(ctx, pr.ID); err != nil {
			s.log.Error("delete files failed", "pr_id", pr.ID, "err", err)
			return err
		}
	}

	records := make([]*models.File, 0, len(files))
	for i := range files {
		records = append(records, &files[i])
	}
	if len(records) == 0 {
		records = append(records, models.PlaceholderFile())
	}
	if err := fileRepo.CreateFiles(ctx, pr.ID, records); err != nil {
		s.log.Error("insert files failed", "pr_id", pr.ID, "err", err)
		return err
	}
	return nil
}
