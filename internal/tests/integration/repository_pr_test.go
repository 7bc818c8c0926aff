package integration

import (
	"errors"
	"testing"
	"time"

	"pr-webhook-service/internal/domain/models"
	"pr-webhook-service/internal/infrastructure/logger"
	file_repository "pr-webhook-service/internal/infrastructure/persistence/postgres/file"
	pr_repository "pr-webhook-service/internal/infrastructure/persistence/postgres/pr"
	"pr-webhook-service/internal/utils"

	"github.com/google/uuid"
)

func seedPR(t *testing.T, number int, status models.PRStatus) *models.PullRequest {
	t.Helper()
	log := logger.New("test")
	repo := pr_repository.NewPullRequestRepository(pgC.Pool, log)
	pr := &models.PullRequest{
		Title:      "title",
		Status:     status,
		Author:     "octocat",
		Repository: "acme/widgets",
		Number:     number,
	}
	if err := repo.Create(testCtx, pr); err != nil {
		t.Fatalf("seed pr #%d: %v", number, err)
	}
	return pr
}

func TestPullRequestRepository_Integration(t *testing.T) {
	if pgC == nil {
		t.Fatal("postgres not init")
	}
	log := logger.New("test")
	repo := pr_repository.NewPullRequestRepository(pgC.Pool, log)

	t.Run("create assigns id and round-trips", func(t *testing.T) {
		if err := TruncateAll(testCtx, pgC.Pool); err != nil {
			t.Fatalf("truncate: %v", err)
		}
		mergeable := true
		closedAt := time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)
		pr := &models.PullRequest{
			Title:          "Add retry logic",
			Description:    "Retries transient failures",
			Status:         models.PRStatusClosed,
			Author:         "octocat",
			Repository:     "acme/widgets",
			Number:         42,
			GitHubID:       9001,
			HTMLURL:        "https://github.com/acme/widgets/pull/42",
			BranchName:     "feature/retry",
			BaseBranch:     "main",
			CommitSHA:      "abc123",
			BaseCommitSHA:  "def456",
			Additions:      10,
			Deletions:      3,
			ChangedFiles:   2,
			CommitsCount:   4,
			Mergeable:      &mergeable,
			MergeableState: "clean",
			ClosedAt:       &closedAt,
		}
		if err := repo.Create(testCtx, pr); err != nil {
			t.Fatalf("create: %v", err)
		}
		if pr.ID == uuid.Nil {
			t.Fatal("id not assigned")
		}

		got, err := repo.GetByID(testCtx, pr.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Title != pr.Title || got.Repository != pr.Repository || got.Number != pr.Number {
			t.Fatalf("round-trip mismatch: %+v", got)
		}
		if got.Mergeable == nil || !*got.Mergeable {
			t.Fatalf("mergeable lost: %+v", got.Mergeable)
		}
		if got.Rebaseable != nil {
			t.Fatalf("rebaseable should stay null, got %+v", got.Rebaseable)
		}
		if got.ClosedAt == nil || !got.ClosedAt.Equal(closedAt) {
			t.Fatalf("closed_at mismatch: %+v", got.ClosedAt)
		}
		if got.MergedAt != nil {
			t.Fatalf("merged_at should stay null")
		}
	})

	t.Run("duplicate key is rejected", func(t *testing.T) {
		if err := TruncateAll(testCtx, pgC.Pool); err != nil {
			t.Fatalf("truncate: %v", err)
		}
		seedPR(t, 7, models.PRStatusOpen)
		dup := &models.PullRequest{Title: "t", Status: models.PRStatusOpen, Author: "a", Repository: "acme/widgets", Number: 7}
		if err := repo.Create(testCtx, dup); !errors.Is(err, utils.ErrPRExists) {
			t.Fatalf("want ErrPRExists got %v", err)
		}
	})

	t.Run("lock by repo and number", func(t *testing.T) {
		if err := TruncateAll(testCtx, pgC.Pool); err != nil {
			t.Fatalf("truncate: %v", err)
		}
		seeded := seedPR(t, 8, models.PRStatusOpen)
		got, err := repo.GetByRepoAndNumber(testCtx, "acme/widgets", 8)
		if err != nil {
			t.Fatalf("get by key: %v", err)
		}
		if got.ID != seeded.ID {
			t.Fatalf("id mismatch")
		}
		if _, err := repo.GetByRepoAndNumber(testCtx, "acme/widgets", 999); !errors.Is(err, utils.ErrPRNotFound) {
			t.Fatalf("want ErrPRNotFound got %v", err)
		}
	})

	t.Run("update rewrites mutable fields", func(t *testing.T) {
		if err := TruncateAll(testCtx, pgC.Pool); err != nil {
			t.Fatalf("truncate: %v", err)
		}
		pr := seedPR(t, 9, models.PRStatusOpen)
		pr.Title = "new title"
		pr.Status = models.PRStatusMerged
		pr.UpdatedAt = time.Now().UTC()
		if err := repo.Update(testCtx, pr); err != nil {
			t.Fatalf("update: %v", err)
		}
		got, err := repo.GetByID(testCtx, pr.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Title != "new title" || got.Status != models.PRStatusMerged {
			t.Fatalf("update lost: %+v", got)
		}
	})

	t.Run("list with status filter", func(t *testing.T) {
		if err := TruncateAll(testCtx, pgC.Pool); err != nil {
			t.Fatalf("truncate: %v", err)
		}
		seedPR(t, 1, models.PRStatusOpen)
		seedPR(t, 2, models.PRStatusClosed)
		seedPR(t, 3, models.PRStatusOpen)

		all, err := repo.List(testCtx, nil)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(all) != 3 {
			t.Fatalf("want 3 got %d", len(all))
		}
		open := models.PRStatusOpen
		onlyOpen, err := repo.List(testCtx, &open)
		if err != nil {
			t.Fatalf("list open: %v", err)
		}
		if len(onlyOpen) != 2 {
			t.Fatalf("want 2 got %d", len(onlyOpen))
		}
	})
}

func TestFileRepository_Integration(t *testing.T) {
	if pgC == nil {
		t.Fatal("postgres not init")
	}
	log := logger.New("test")
	fileRepo := file_repository.NewFileRepository(pgC.Pool, log)

	t.Run("create list delete cycle", func(t *testing.T) {
		if err := TruncateAll(testCtx, pgC.Pool); err != nil {
			t.Fatalf("truncate: %v", err)
		}
		pr := seedPR(t, 10, models.PRStatusOpen)
		files := []*models.File{
			{Filename: "main.go", Path: "cmd/server/main.go", Status: models.FileStatusModified, Additions: 5, Extension: "go"},
			{Filename: "README.md", Path: "README.md", Status: models.FileStatusAdded, Extension: "md"},
		}
		if err := fileRepo.CreateFiles(testCtx, pr.ID, files); err != nil {
			t.Fatalf("create files: %v", err)
		}
		for _, f := range files {
			if f.ID == uuid.Nil || f.CreatedAt.IsZero() {
				t.Fatalf("file metadata not assigned: %+v", f)
			}
		}

		listed, err := fileRepo.ListByPullRequestID(testCtx, pr.ID)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(listed) != 2 {
			t.Fatalf("want 2 got %d", len(listed))
		}
		// ordered by filename
		if listed[0].Filename != "README.md" || listed[1].Filename != "main.go" {
			t.Fatalf("order mismatch: %s, %s", listed[0].Filename, listed[1].Filename)
		}

		if err := fileRepo.DeleteByPullRequestID(testCtx, pr.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		listed, err = fileRepo.ListByPullRequestID(testCtx, pr.ID)
		if err != nil {
			t.Fatalf("list after delete: %v", err)
		}
		if len(listed) != 0 {
			t.Fatalf("want empty got %d", len(listed))
		}
	})

	t.Run("unknown owner is rejected", func(t *testing.T) {
		if err := TruncateAll(testCtx, pgC.Pool); err != nil {
			t.Fatalf("truncate: %v", err)
		}
		err := fileRepo.CreateFiles(testCtx, uuid.New(), []*models.File{{Filename: "a", Path: "a", Status: models.FileStatusAdded}})
		if !errors.Is(err, utils.ErrPRNotFound) {
			t.Fatalf("want ErrPRNotFound got %v", err)
		}
	})

	t.Run("cascade delete with pull request", func(t *testing.T) {
		if err := TruncateAll(testCtx, pgC.Pool); err != nil {
			t.Fatalf("truncate: %v", err)
		}
		pr := seedPR(t, 11, models.PRStatusOpen)
		if err := fileRepo.CreateFiles(testCtx, pr.ID, []*models.File{{Filename: "a", Path: "a", Status: models.FileStatusAdded}}); err != nil {
			t.Fatalf("create files: %v", err)
		}
		if _, err := pgC.Pool.Exec(testCtx, `DELETE FROM pull_requests WHERE id = $1`, pr.ID); err != nil {
			t.Fatalf("delete pr: %v", err)
		}
		n, err := CountRows(testCtx, pgC.Pool, "files")
		if err != nil {
			t.Fatalf("count: %v", err)
		}
		if n != 0 {
			t.Fatalf("files not cascaded, %d left", n)
		}
	})
}
