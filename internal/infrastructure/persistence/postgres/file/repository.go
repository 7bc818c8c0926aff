package file_repository

import (
	"context"
	"errors"

	"pr-webhook-service/internal/domain/models"
	ports "pr-webhook-service/internal/domain/ports/output"
	file_port "pr-webhook-service/internal/domain/ports/output/file"
	"pr-webhook-service/internal/infrastructure/persistence/postgres"
	"pr-webhook-service/internal/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type FileRepository struct {
	querier postgres.Querier
	log     ports.Logger
}

func NewFileRepository(querier postgres.Querier, log ports.Logger) file_port.FileRepository {
	return &FileRepository{querier: querier, log: log}
}

func (r *FileRepository) CreateFiles(ctx context.Context, prID uuid.UUID, files []*models.File) error {
	if prID == uuid.Nil {
		return utils.ErrInvalidArgument
	}
	const insertFile = `
		INSERT INTO files (
			filename, file_path, status, additions, deletions, changes,
			sha, blob_url, raw_url, contents_url, file_size, file_extension,
			pull_request_id, created_at
		)
		VALUES (
			@filename, @file_path, @status, @additions, @deletions, @changes,
			@sha, @blob_url, @raw_url, @contents_url, @file_size, @file_extension,
			@pull_request_id, now()
		)
		RETURNING id, created_at;
	`
	for _, f := range files {
		f.PullRequestID = prID
		row := r.querier.QueryRow(ctx, insertFile, pgx.NamedArgs{
			"filename":        f.Filename,
			"file_path":       f.Path,
			"status":          f.Status,
			"additions":       f.Additions,
			"deletions":       f.Deletions,
			"changes":         f.Changes,
			"sha":             f.SHA,
			"blob_url":        f.BlobURL,
			"raw_url":         f.RawURL,
			"contents_url":    f.ContentsURL,
			"file_size":       f.Size,
			"file_extension":  f.Extension,
			"pull_request_id": prID,
		})
		if err := row.Scan(&f.ID, &f.CreatedAt); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return utils.ErrPRNotFound
			}
			r.log.Error("CreateFiles failed", "pr_id", prID, "filename", f.Filename, "err", err)
			return err
		}
	}
	return nil
}

func (r *FileRepository) DeleteByPullRequestID(ctx context.Context, prID uuid.UUID) error {
	const q = `
		DELETE FROM files
		WHERE pull_request_id = @pr_id;
	`
	if _, err := r.querier.Exec(ctx, q, pgx.NamedArgs{"pr_id": prID}); err != nil {
		r.log.Error("DeleteByPullRequestID failed", "pr_id", prID, "err", err)
		return err
	}
	return nil
}

func (r *FileRepository) ListByPullRequestID(ctx context.Context, prID uuid.UUID) ([]*models.File, error) {
	const q = `
		SELECT id, filename, file_path, status, additions, deletions, changes,
			sha, blob_url, raw_url, contents_url, file_size, file_extension,
			pull_request_id, created_at
		FROM files
		WHERE pull_request_id = @pr_id
		ORDER BY filename;
	`
	rows, err := r.querier.Query(ctx, q, pgx.NamedArgs{"pr_id": prID})
	if err != nil {
		r.log.Error("ListByPullRequestID query failed", "pr_id", prID, "err", err)
		return nil, err
	}
	defer rows.Close()

	files := make([]*models.File, 0)
	for rows.Next() {
		var f models.File
		if err := rows.Scan(
			&f.ID, &f.Filename, &f.Path, &f.Status, &f.Additions, &f.Deletions, &f.Changes,
			&f.SHA, &f.BlobURL, &f.RawURL, &f.ContentsURL, &f.Size, &f.Extension,
			&f.PullRequestID, &f.CreatedAt,
		); err != nil {
			r.log.Error("ListByPullRequestID scan failed", "pr_id", prID, "err", err)
			return nil, err
		}
		files = append(files, &f)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return files, nil
}
