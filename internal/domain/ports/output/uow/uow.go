package uow

import (
	"context"

	"pr-webhook-service/internal/domain/ports/output/file"
	"pr-webhook-service/internal/domain/ports/output/pr"
)

//go:generate mockery --name UnitOfWork --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename UnitOfWork.go
//go:generate mockery --name Transaction --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename Transaction.go

type UnitOfWork interface {
	Begin(ctx context.Context) (Transaction, error)
}

type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	PullRequestRepository() pr.PullRequestRepository
	FileRepository() file.FileRepository
}
