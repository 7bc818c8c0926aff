package pr

import (
	"context"

	"pr-webhook-service/internal/domain/models"

	"github.com/google/uuid"
)

//go:generate mockery --name PullRequestRepository --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename PullRequestRepository.go

type PullRequestRepository interface {
	Create(ctx context.Context, pr *models.PullRequest) error
	Update(ctx context.Context, pr *models.PullRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.PullRequest, error)
	GetByRepoAndNumber(ctx context.Context, repository string, number int) (*models.PullRequest, error)
	// LockByRepoAndNumber behaves like GetByRepoAndNumber but takes a
	// row-level lock so concurrent deliveries for the same pull request
	// serialize inside their transactions.
	LockByRepoAndNumber(ctx context.Context, repository string, number int) (*models.PullRequest, error)
	List(ctx context.Context, status *models.PRStatus) ([]*models.PullRequest, error)
}
