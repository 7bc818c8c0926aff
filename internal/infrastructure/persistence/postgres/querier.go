package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

//go:generate mockery --name Querier --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename Querier.go
//go:generate mockery --name Row --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename Row.go
//go:generate mockery --name Rows --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename Rows.go

// Querier is the subset of pgx shared by *pgxpool.Pool and pgx.Tx, so
// the same repository code runs inside and outside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Row and Rows alias the pgx result types for mock generation.
type Row = pgx.Row

type Rows = pgx.Rows
