package input

import (
	"context"

	"pr-webhook-service/internal/domain/models"

	"github.com/google/uuid"
)

//go:generate mockery --name PRInputPort --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename PRInputPort.go

type PRInputPort interface {
	CreatePR(ctx context.Context, pr *models.PullRequest) (*models.PullRequest, error)
	GetPR(ctx context.Context, id uuid.UUID) (*models.PullRequest, error)
	ListPRs(ctx context.Context, status *models.PRStatus) ([]*models.PullRequest, error)
	ListPRFiles(ctx context.Context, prID uuid.UUID) ([]*models.File, error)
}
