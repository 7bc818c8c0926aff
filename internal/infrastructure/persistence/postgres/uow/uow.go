package uow

import (
	"context"
	"fmt"

	ports "pr-webhook-service/internal/domain/ports/output"
	file_port "pr-webhook-service/internal/domain/ports/output/file"
	pr_port "pr-webhook-service/internal/domain/ports/output/pr"
	"pr-webhook-service/internal/domain/ports/output/uow"
	file_repo "pr-webhook-service/internal/infrastructure/persistence/postgres/file"
	pr_repo "pr-webhook-service/internal/infrastructure/persistence/postgres/pr"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUnitOfWork struct {
	pool *pgxpool.Pool
	log  ports.Logger
}

func NewPostgresUOW(pool *pgxpool.Pool, log ports.Logger) uow.UnitOfWork {
	return &PostgresUnitOfWork{pool: pool, log: log}
}

func (u *PostgresUnitOfWork) Begin(ctx context.Context) (uow.Transaction, error) {
	tx, err := u.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("error beginning transaction: %w", err)
	}
	return &PostgresTransaction{tx: tx, log: u.log}, nil
}

type PostgresTransaction struct {
	tx  pgx.Tx
	log ports.Logger
}

func (t *PostgresTransaction) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *PostgresTransaction) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *PostgresTransaction) PullRequestRepository() pr_port.PullRequestRepository {
	return pr_repo.NewPullRequestRepository(t.tx, t.log)
}

func (t *PostgresTransaction) FileRepository() file_port.FileRepository {
	return file_repo.NewFileRepository(t.tx, t.log)
}
