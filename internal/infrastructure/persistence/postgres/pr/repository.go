package pr_repository

import (
	"context"
	"errors"
	"time"

	"pr-webhook-service/internal/domain/models"
	ports "pr-webhook-service/internal/domain/ports/output"
	pr_port "pr-webhook-service/internal/domain/ports/output/pr"
	"pr-webhook-service/internal/infrastructure/persistence/postgres"
	"pr-webhook-service/internal/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const prColumns = `
	id, title, description, status, author, repository, pr_number,
	github_id, html_url, branch_name, base_branch, commit_sha, base_commit_sha,
	additions, deletions, changed_files, commits_count,
	draft, mergeable, rebaseable, mergeable_state,
	created_at, updated_at, closed_at, merged_at
`

type PullRequestRepository struct {
	querier postgres.Querier
	log     ports.Logger
}

func NewPullRequestRepository(querier postgres.Querier, log ports.Logger) pr_port.PullRequestRepository {
	return &PullRequestRepository{querier: querier, log: log}
}

func (r *PullRequestRepository) Create(ctx context.Context, pr *models.PullRequest) error {
	if pr.Title == "" || pr.Author == "" || pr.Repository == "" || pr.Number <= 0 {
		return utils.ErrInvalidArgument
	}
	now := time.Now().UTC()
	if pr.CreatedAt.IsZero() {
		pr.CreatedAt = now
	}
	if pr.UpdatedAt.IsZero() {
		pr.UpdatedAt = now
	}
	const insertPR = `
		INSERT INTO pull_requests (
			title, description, status, author, repository, pr_number,
			github_id, html_url, branch_name, base_branch, commit_sha, base_commit_sha,
			additions, deletions, changed_files, commits_count,
			draft, mergeable, rebaseable, mergeable_state,
			created_at, updated_at, closed_at, merged_at
		)
		VALUES (
			@title, @description, @status, @author, @repository, @pr_number,
			@github_id, @html_url, @branch_name, @base_branch, @commit_sha, @base_commit_sha,
			@additions, @deletions, @changed_files, @commits_count,
			@draft, @mergeable, @rebaseable, @mergeable_state,
			@created_at, @updated_at, @closed_at, @merged_at
		)
		RETURNING id;
	`
	row := r.querier.QueryRow(ctx, insertPR, namedArgs(pr))
	if err := row.Scan(&pr.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return utils.ErrPRExists
			case "22P02", "23514":
				r.log.Error("Create invalid argument", "repository", pr.Repository, "pr_number", pr.Number)
				return utils.ErrInvalidArgument
			}
		}
		r.log.Error("Create failed", "repository", pr.Repository, "pr_number", pr.Number, "err", err)
		return err
	}
	return nil
}

func (r *PullRequestRepository) Update(ctx context.Context, pr *models.PullRequest) error {
	if pr.ID == uuid.Nil {
		return utils.ErrInvalidArgument
	}
	// repository and pr_number are the lookup key and stay untouched.
	const updatePR = `
		UPDATE pull_requests
		SET title = @title,
			description = @description,
			status = @status,
			author = @author,
			github_id = @github_id,
			html_url = @html_url,
			branch_name = @branch_name,
			base_branch = @base_branch,
			commit_sha = @commit_sha,
			base_commit_sha = @base_commit_sha,
			additions = @additions,
			deletions = @deletions,
			changed_files = @changed_files,
			commits_count = @commits_count,
			draft = @draft,
			mergeable = @mergeable,
			rebaseable = @rebaseable,
			mergeable_state = @mergeable_state,
			created_at = @created_at,
			updated_at = @updated_at,
			closed_at = @closed_at,
			merged_at = @merged_at
		WHERE id = @id;
	`
	args := namedArgs(pr)
	args["id"] = pr.ID
	tag, err := r.querier.Exec(ctx, updatePR, args)
	if err != nil {
		r.log.Error("Update failed", "pr_id", pr.ID, "err", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrPRNotFound
	}
	return nil
}

func (r *PullRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.PullRequest, error) {
	const q = `
		SELECT ` + prColumns + `
		FROM pull_requests
		WHERE id = @id;
	`
	row := r.querier.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	return r.scanPR(row, "GetByID")
}

func (r *PullRequestRepository) GetByRepoAndNumber(ctx context.Context, repository string, number int) (*models.PullRequest, error) {
	const q = `
		SELECT ` + prColumns + `
		FROM pull_requests
		WHERE repository = @repository AND pr_number = @pr_number;
	`
	row := r.querier.QueryRow(ctx, q, pgx.NamedArgs{"repository": repository, "pr_number": number})
	return r.scanPR(row, "GetByRepoAndNumber")
}

func (r *PullRequestRepository) LockByRepoAndNumber(ctx context.Context, repository string, number int) (*models.PullRequest, error) {
	const q = `
		SELECT ` + prColumns + `
		FROM pull_requests
		WHERE repository = @repository AND pr_number = @pr_number
		FOR UPDATE;
	`
	row := r.querier.QueryRow(ctx, q, pgx.NamedArgs{"repository": repository, "pr_number": number})
	return r.scanPR(row, "LockByRepoAndNumber")
}

func (r *PullRequestRepository) List(ctx context.Context, status *models.PRStatus) ([]*models.PullRequest, error) {
	q := `
		SELECT ` + prColumns + `
		FROM pull_requests
	`
	args := pgx.NamedArgs{}
	if status != nil {
		q += ` WHERE status = @status`
		args["status"] = *status
	}
	q += ` ORDER BY updated_at DESC;`

	rows, err := r.querier.Query(ctx, q, args)
	if err != nil {
		r.log.Error("List query failed", "err", err)
		return nil, err
	}
	defer rows.Close()

	prs := make([]*models.PullRequest, 0)
	for rows.Next() {
		var pr models.PullRequest
		if err := scanInto(rows, &pr); err != nil {
			r.log.Error("List scan failed", "err", err)
			return nil, err
		}
		prs = append(prs, &pr)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return prs, nil
}

func (r *PullRequestRepository) scanPR(row pgx.Row, op string) (*models.PullRequest, error) {
	var pr models.PullRequest
	if err := scanInto(row, &pr); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, utils.ErrPRNotFound
		}
		r.log.Error(op+" failed", "err", err)
		return nil, err
	}
	return &pr, nil
}

func scanInto(row pgx.Row, pr *models.PullRequest) error {
	return row.Scan(
		&pr.ID, &pr.Title, &pr.Description, &pr.Status, &pr.Author, &pr.Repository, &pr.Number,
		&pr.GitHubID, &pr.HTMLURL, &pr.BranchName, &pr.BaseBranch, &pr.CommitSHA, &pr.BaseCommitSHA,
		&pr.Additions, &pr.Deletions, &pr.ChangedFiles, &pr.CommitsCount,
		&pr.Draft, &pr.Mergeable, &pr.Rebaseable, &pr.MergeableState,
		&pr.CreatedAt, &pr.UpdatedAt, &pr.ClosedAt, &pr.MergedAt,
	)
}

func namedArgs(pr *models.PullRequest) pgx.NamedArgs {
	return pgx.NamedArgs{
		"title":           pr.Title,
		"description":     pr.Description,
		"status":          pr.Status,
		"author":          pr.Author,
		"repository":      pr.Repository,
		"pr_number":       pr.Number,
		"github_id":       pr.GitHubID,
		"html_url":        pr.HTMLURL,
		"branch_name":     pr.BranchName,
		"base_branch":     pr.BaseBranch,
		"commit_sha":      pr.CommitSHA,
		"base_commit_sha": pr.BaseCommitSHA,
		"additions":       pr.Additions,
		"deletions":       pr.Deletions,
		"changed_files":   pr.ChangedFiles,
		"commits_count":   pr.CommitsCount,
		"draft":           pr.Draft,
		"mergeable":       pr.Mergeable,
		"rebaseable":      pr.Rebaseable,
		"mergeable_state": pr.MergeableState,
		"created_at":      pr.CreatedAt,
		"updated_at":      pr.UpdatedAt,
		"closed_at":       pr.ClosedAt,
		"merged_at":       pr.MergedAt,
	}
}
