package pr

import (
	"context"

	"pr-webhook-service/internal/domain/models"
	"pr-webhook-service/internal/domain/ports/input"
	ports "pr-webhook-service/internal/domain/ports/output"
	uow "pr-webhook-service/internal/domain/ports/output/uow"
	"pr-webhook-service/internal/utils"

	"github.com/google/uuid"
)

// Service is the read side of the stored schema plus an explicit
// create for callers that register pull requests outside the webhook
// path.
type Service struct {
	uow uow.UnitOfWork
	log ports.Logger
}

func NewService(uow uow.UnitOfWork, log ports.Logger) input.PRInputPort {
	return &Service{uow: uow, log: log}
}

func (s *Service) CreatePR(ctx context.Context, pr *models.PullRequest) (*models.PullRequest, error) {
	if pr.Title == "" || pr.Author == "" || pr.Repository == "" || pr.Number <= 0 {
		return nil, utils.ErrInvalidArgument
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("CreatePR begin tx failed", "err", err)
		return nil, err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()
	if pr.Status == "" {
		pr.Status = models.PRStatusOpen
	}
	if err := tx.PullRequestRepository().Create(ctx, pr); err != nil {
		s.log.Error("CreatePR repo failed", "repository", pr.Repository, "pr_number", pr.Number, "err", err)
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		s.log.Error("CreatePR commit failed", "repository", pr.Repository, "pr_number", pr.Number, "err", err)
		return nil, err
	}
	commit = true
	return pr, nil
}

func (s *Service) GetPR(ctx context.Context, id uuid.UUID) (*models.PullRequest, error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()
	return tx.PullRequestRepository().GetByID(ctx, id)
}

func (s *Service) ListPRs(ctx context.Context, status *models.PRStatus) ([]*models.PullRequest, error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()
	return tx.PullRequestRepository().List(ctx, status)
}

func (s *Service) ListPRFiles(ctx context.Context, prID uuid.UUID) ([]*models.File, error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()
	// 404 for an unknown id beats returning an empty listing.
	if _, err := tx.PullRequestRepository().GetByID(ctx, prID); err != nil {
		return nil, err
	}
	return tx.FileRepository().ListByPullRequestID(ctx, prID)
}
