package file

import (
	"context"

	"pr-webhook-service/internal/domain/models"

	"github.com/google/uuid"
)

//go:generate mockery --name FileRepository --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename FileRepository.go

type FileRepository interface {
	CreateFiles(ctx context.Context, prID uuid.UUID, files []*models.File) error
	DeleteByPullRequestID(ctx context.Context, prID uuid.UUID) error
	ListByPullRequestID(ctx context.Context, prID uuid.UUID) ([]*models.File, error)
}
