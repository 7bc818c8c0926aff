package pr_repository_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pr-webhook-service/internal/domain/models"
	pr_port "pr-webhook-service/internal/domain/ports/output/pr"
	"pr-webhook-service/internal/infrastructure/logger"
	pr_repository "pr-webhook-service/internal/infrastructure/persistence/postgres/pr"
	"pr-webhook-service/internal/utils"
	"pr-webhook-service/mocks"
)

// prColumnCount matches the number of columns scanned per row.
const prColumnCount = 25

func anyScanArgs(n int) []interface{} {
	args := make([]interface{}, n)
	for i := range args {
		args[i] = mock.Anything
	}
	return args
}

func newRepo(t *testing.T) (pr_port.PullRequestRepository, *mocks.Querier) {
	q := mocks.NewQuerier(t)
	log := logger.New("test")
	return pr_repository.NewPullRequestRepository(q, log), q
}

func validPR() *models.PullRequest {
	return &models.PullRequest{
		Title:      "Add retry logic",
		Status:     models.PRStatusOpen,
		Author:     "octocat",
		Repository: "acme/widgets",
		Number:     42,
	}
}

func TestPullRequestRepository_Create(t *testing.T) {
	id := uuid.New()
	tests := []struct {
		name      string
		pr        *models.PullRequest
		mockSetup func(*mocks.Querier)
		wantErr   bool
		wantIsErr error
	}{
		{
			name: "success",
			pr:   validPR(),
			mockSetup: func(q *mocks.Querier) {
				row := mocks.NewRow(t)
				row.EXPECT().Scan(mock.Anything).
					Run(func(args ...interface{}) {
						*(args[0].(*uuid.UUID)) = id
					}).Return(nil)
				q.EXPECT().QueryRow(mock.Anything, mock.Anything, mock.Anything).Return(row)
			},
		},
		{
			name:      "missing required fields",
			pr:        &models.PullRequest{Title: "t"},
			wantErr:   true,
			wantIsErr: utils.ErrInvalidArgument,
		},
		{
			name: "unique violation",
			pr:   validPR(),
			mockSetup: func(q *mocks.Querier) {
				row := mocks.NewRow(t)
				row.EXPECT().Scan(mock.Anything).Return(&pgconn.PgError{Code: "23505"})
				q.EXPECT().QueryRow(mock.Anything, mock.Anything, mock.Anything).Return(row)
			},
			wantErr:   true,
			wantIsErr: utils.ErrPRExists,
		},
		{
			name: "check violation",
			pr:   validPR(),
			mockSetup: func(q *mocks.Querier) {
				row := mocks.NewRow(t)
				row.EXPECT().Scan(mock.Anything).Return(&pgconn.PgError{Code: "23514"})
				q.EXPECT().QueryRow(mock.Anything, mock.Anything, mock.Anything).Return(row)
			},
			wantErr:   true,
			wantIsErr: utils.ErrInvalidArgument,
		},
		{
			name: "db error",
			pr:   validPR(),
			mockSetup: func(q *mocks.Querier) {
				row := mocks.NewRow(t)
				row.EXPECT().Scan(mock.Anything).Return(errors.New("db error"))
				q.EXPECT().QueryRow(mock.Anything, mock.Anything, mock.Anything).Return(row)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, q := newRepo(t)
			if tt.mockSetup != nil {
				tt.mockSetup(q)
			}
			err := repo.Create(context.Background(), tt.pr)
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantIsErr != nil {
					assert.ErrorIs(t, err, tt.wantIsErr)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, id, tt.pr.ID)
				assert.False(t, tt.pr.CreatedAt.IsZero())
				assert.False(t, tt.pr.UpdatedAt.IsZero())
			}
		})
	}
}

func TestPullRequestRepository_Update(t *testing.T) {
	tests := []struct {
		name      string
		pr        *models.PullRequest
		mockSetup func(*mocks.Querier)
		wantErr   bool
		wantIsErr error
	}{
		{
			name: "success",
			pr:   &models.PullRequest{ID: uuid.New(), Title: "t", Status: models.PRStatusClosed, Author: "a", Repository: "acme/widgets", Number: 42},
			mockSetup: func(q *mocks.Querier) {
				q.EXPECT().Exec(mock.Anything, mock.Anything, mock.Anything).Return(pgconn.NewCommandTag("UPDATE 1"), nil)
			},
		},
		{
			name:      "nil id",
			pr:        &models.PullRequest{Title: "t"},
			wantErr:   true,
			wantIsErr: utils.ErrInvalidArgument,
		},
		{
			name: "not found",
			pr:   &models.PullRequest{ID: uuid.New(), Title: "t"},
			mockSetup: func(q *mocks.Querier) {
				q.EXPECT().Exec(mock.Anything, mock.Anything, mock.Anything).Return(pgconn.NewCommandTag("UPDATE 0"), nil)
			},
			wantErr:   true,
			wantIsErr: utils.ErrPRNotFound,
		},
		{
			name: "db error",
			pr:   &models.PullRequest{ID: uuid.New(), Title: "t"},
			mockSetup: func(q *mocks.Querier) {
				q.EXPECT().Exec(mock.Anything, mock.Anything, mock.Anything).Return(pgconn.NewCommandTag(""), errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, q := newRepo(t)
			if tt.mockSetup != nil {
				tt.mockSetup(q)
			}
			err := repo.Update(context.Background(), tt.pr)
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantIsErr != nil {
					assert.ErrorIs(t, err, tt.wantIsErr)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestPullRequestRepository_GetByID(t *testing.T) {
	now := time.Now().Truncate(time.Microsecond)
	id := uuid.New()

	tests := []struct {
		name      string
		mockSetup func(*mocks.Querier)
		wantErr   bool
		wantIsErr error
	}{
		{
			name: "success",
			mockSetup: func(q *mocks.Querier) {
				row := mocks.NewRow(t)
				row.EXPECT().Scan(anyScanArgs(prColumnCount)...).
					Run(func(args ...interface{}) {
						*(args[0].(*uuid.UUID)) = id
						*(args[1].(*string)) = "Add retry logic"
						*(args[3].(*models.PRStatus)) = models.PRStatusOpen
						*(args[4].(*string)) = "octocat"
						*(args[5].(*string)) = "acme/widgets"
						*(args[6].(*int)) = 42
						*(args[21].(*time.Time)) = now
						*(args[22].(*time.Time)) = now
					}).Return(nil)
				q.EXPECT().QueryRow(mock.Anything, mock.Anything, mock.Anything).Return(row)
			},
		},
		{
			name: "not found",
			mockSetup: func(q *mocks.Querier) {
				row := mocks.NewRow(t)
				row.EXPECT().Scan(anyScanArgs(prColumnCount)...).Return(pgx.ErrNoRows)
				q.EXPECT().QueryRow(mock.Anything, mock.Anything, mock.Anything).Return(row)
			},
			wantErr:   true,
			wantIsErr: utils.ErrPRNotFound,
		},
		{
			name: "scan error",
			mockSetup: func(q *mocks.Querier) {
				row := mocks.NewRow(t)
				row.EXPECT().Scan(anyScanArgs(prColumnCount)...).Return(errors.New("scan error"))
				q.EXPECT().QueryRow(mock.Anything, mock.Anything, mock.Anything).Return(row)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, q := newRepo(t)
			tt.mockSetup(q)
			pr, err := repo.GetByID(context.Background(), id)
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantIsErr != nil {
					assert.ErrorIs(t, err, tt.wantIsErr)
				}
				assert.Nil(t, pr)
			} else {
				require.NoError(t, err)
				require.NotNil(t, pr)
				assert.Equal(t, id, pr.ID)
				assert.Equal(t, "acme/widgets", pr.Repository)
				assert.Equal(t, 42, pr.Number)
			}
		})
	}
}

func TestPullRequestRepository_LockByRepoAndNumber(t *testing.T) {
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		repo, q := newRepo(t)
		row := mocks.NewRow(t)
		row.EXPECT().Scan(anyScanArgs(prColumnCount)...).
			Run(func(args ...interface{}) {
				*(args[0].(*uuid.UUID)) = id
				*(args[5].(*string)) = "acme/widgets"
				*(args[6].(*int)) = 42
			}).Return(nil)
		q.EXPECT().QueryRow(mock.Anything, mock.MatchedBy(func(sql string) bool {
			return strings.Contains(sql, "FOR UPDATE")
		}), mock.Anything).Return(row)

		pr, err := repo.LockByRepoAndNumber(context.Background(), "acme/widgets", 42)
		require.NoError(t, err)
		assert.Equal(t, id, pr.ID)
	})

	t.Run("not found", func(t *testing.T) {
		repo, q := newRepo(t)
		row := mocks.NewRow(t)
		row.EXPECT().Scan(anyScanArgs(prColumnCount)...).Return(pgx.ErrNoRows)
		q.EXPECT().QueryRow(mock.Anything, mock.Anything, mock.Anything).Return(row)

		pr, err := repo.LockByRepoAndNumber(context.Background(), "acme/widgets", 99)
		require.ErrorIs(t, err, utils.ErrPRNotFound)
		assert.Nil(t, pr)
	})
}

func TestPullRequestRepository_List(t *testing.T) {
	now := time.Now().Truncate(time.Microsecond)

	fillRow := func(number int) func(args ...interface{}) {
		return func(args ...interface{}) {
			*(args[0].(*uuid.UUID)) = uuid.New()
			*(args[1].(*string)) = "title"
			*(args[3].(*models.PRStatus)) = models.PRStatusOpen
			*(args[4].(*string)) = "octocat"
			*(args[5].(*string)) = "acme/widgets"
			*(args[6].(*int)) = number
			*(args[21].(*time.Time)) = now
			*(args[22].(*time.Time)) = now
		}
	}

	tests := []struct {
		name      string
		status    *models.PRStatus
		mockSetup func(*mocks.Querier)
		wantErr   bool
		wantLen   int
	}{
		{
			name: "two rows",
			mockSetup: func(q *mocks.Querier) {
				rows := mocks.NewRows(t)
				rows.EXPECT().Next().Return(true).Once()
				rows.EXPECT().Scan(anyScanArgs(prColumnCount)...).Run(fillRow(1)).Return(nil).Once()
				rows.EXPECT().Next().Return(true).Once()
				rows.EXPECT().Scan(anyScanArgs(prColumnCount)...).Run(fillRow(2)).Return(nil).Once()
				rows.EXPECT().Next().Return(false).Once()
				rows.EXPECT().Err().Return(nil)
				rows.EXPECT().Close()
				q.EXPECT().Query(mock.Anything, mock.Anything, mock.Anything).Return(rows, nil)
			},
			wantLen: 2,
		},
		{
			name: "empty result",
			mockSetup: func(q *mocks.Querier) {
				rows := mocks.NewRows(t)
				rows.EXPECT().Next().Return(false).Once()
				rows.EXPECT().Err().Return(nil)
				rows.EXPECT().Close()
				q.EXPECT().Query(mock.Anything, mock.Anything, mock.Anything).Return(rows, nil)
			},
			wantLen: 0,
		},
		{
			name:   "status filter",
			status: statusPtr(models.PRStatusMerged),
			mockSetup: func(q *mocks.Querier) {
				rows := mocks.NewRows(t)
				rows.EXPECT().Next().Return(false).Once()
				rows.EXPECT().Err().Return(nil)
				rows.EXPECT().Close()
				q.EXPECT().Query(mock.Anything, mock.MatchedBy(func(sql string) bool {
					return strings.Contains(sql, "WHERE status")
				}), mock.Anything).Return(rows, nil)
			},
			wantLen: 0,
		},
		{
			name: "query error",
			mockSetup: func(q *mocks.Querier) {
				q.EXPECT().Query(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
		{
			name: "scan error",
			mockSetup: func(q *mocks.Querier) {
				rows := mocks.NewRows(t)
				rows.EXPECT().Next().Return(true).Once()
				rows.EXPECT().Scan(anyScanArgs(prColumnCount)...).Return(errors.New("scan error")).Once()
				rows.EXPECT().Close()
				q.EXPECT().Query(mock.Anything, mock.Anything, mock.Anything).Return(rows, nil)
			},
			wantErr: true,
		},
		{
			name: "rows error",
			mockSetup: func(q *mocks.Querier) {
				rows := mocks.NewRows(t)
				rows.EXPECT().Next().Return(false).Once()
				rows.EXPECT().Err().Return(errors.New("rows err"))
				rows.EXPECT().Close()
				q.EXPECT().Query(mock.Anything, mock.Anything, mock.Anything).Return(rows, nil)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, q := newRepo(t)
			tt.mockSetup(q)
			prs, err := repo.List(context.Background(), tt.status)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Len(t, prs, tt.wantLen)
			}
		})
	}
}

func statusPtr(s models.PRStatus) *models.PRStatus { return &s }
