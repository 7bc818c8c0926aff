package pr_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pr-webhook-service/internal/domain/models"
	handler "pr-webhook-service/internal/infrastructure/http/handlers/pr"
	"pr-webhook-service/internal/infrastructure/logger"
	"pr-webhook-service/internal/utils"
	"pr-webhook-service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRouter(svc *mocks.PRInputPort) http.Handler {
	h := handler.NewPRHandler(svc, logger.New("test"))
	r := chi.NewRouter()
	r.Post("/pull-requests", h.CreatePR)
	r.Get("/pull-requests", h.ListPRs)
	r.Get("/pull-requests/{id}", h.GetPR)
	r.Get("/pull-requests/{id}/files", h.GetPRFiles)
	return r
}

func TestPRHandler_CreatePR(t *testing.T) {
	validBody := `{"title":"Manual import","author":"octocat","repository":"acme/widgets","pr_number":7}`

	t.Run("created", func(t *testing.T) {
		svc := mocks.NewPRInputPort(t)
		id := uuid.New()
		svc.EXPECT().CreatePR(mock.Anything, mock.MatchedBy(func(pr *models.PullRequest) bool {
			return pr.Repository == "acme/widgets" && pr.Number == 7
		})).RunAndReturn(func(_ context.Context, pr *models.PullRequest) (*models.PullRequest, error) {
			out := *pr
			out.ID = id
			out.Status = models.PRStatusOpen
			return &out, nil
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/pull-requests", bytes.NewBufferString(validBody))
		newRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp handler.PRResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, id.String(), resp.PR.ID)
		assert.Equal(t, "open", resp.PR.Status)
		assert.Equal(t, 7, resp.PR.PRNumber)
	})

	t.Run("validation failure", func(t *testing.T) {
		svc := mocks.NewPRInputPort(t)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/pull-requests", bytes.NewBufferString(`{"title":"x"}`))
		newRouter(svc).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid status value", func(t *testing.T) {
		svc := mocks.NewPRInputPort(t)
		body := `{"title":"t","author":"a","repository":"r","pr_number":1,"status":"draft"}`
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/pull-requests", bytes.NewBufferString(body))
		newRouter(svc).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate", func(t *testing.T) {
		svc := mocks.NewPRInputPort(t)
		svc.EXPECT().CreatePR(mock.Anything, mock.Anything).Return(nil, utils.ErrPRExists)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/pull-requests", bytes.NewBufferString(validBody))
		newRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusConflict, rec.Code)
		var resp utils.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "PR_EXISTS", resp.Error.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		svc := mocks.NewPRInputPort(t)
		svc.EXPECT().CreatePR(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/pull-requests", bytes.NewBufferString(validBody))
		newRouter(svc).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestPRHandler_GetPR(t *testing.T) {
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		svc := mocks.NewPRInputPort(t)
		svc.EXPECT().GetPR(mock.Anything, id).Return(&models.PullRequest{
			ID: id, Title: "t", Status: models.PRStatusOpen, Author: "a", Repository: "acme/widgets", Number: 7,
		}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/pull-requests/"+id.String(), nil)
		newRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp handler.PRResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, id.String(), resp.PR.ID)
	})

	t.Run("invalid id", func(t *testing.T) {
		svc := mocks.NewPRInputPort(t)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/pull-requests/not-a-uuid", nil)
		newRouter(svc).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := mocks.NewPRInputPort(t)
		svc.EXPECT().GetPR(mock.Anything, id).Return(nil, utils.ErrPRNotFound)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/pull-requests/"+id.String(), nil)
		newRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		var resp utils.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	})
}

func TestPRHandler_ListPRs(t *testing.T) {
	t.Run("all", func(t *testing.T) {
		svc := mocks.NewPRInputPort(t)
		svc.EXPECT().ListPRs(mock.Anything, (*models.PRStatus)(nil)).Return([]*models.PullRequest{
			{ID: uuid.New(), Number: 1, Status: models.PRStatusOpen},
			{ID: uuid.New(), Number: 2, Status: models.PRStatusMerged},
		}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/pull-requests", nil)
		newRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp handler.ListPRsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.PullRequests, 2)
	})

	t.Run("status filter", func(t *testing.T) {
		svc := mocks.NewPRInputPort(t)
		merged := models.PRStatusMerged
		svc.EXPECT().ListPRs(mock.Anything, &merged).Return([]*models.PullRequest{}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/pull-requests?status=merged", nil)
		newRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp handler.ListPRsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Empty(t, resp.PullRequests)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		svc := mocks.NewPRInputPort(t)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/pull-requests?status=draft", nil)
		newRouter(svc).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPRHandler_GetPRFiles(t *testing.T) {
	id := uuid.New()

	t.Run("listing", func(t *testing.T) {
		svc := mocks.NewPRInputPort(t)
		svc.EXPECT().ListPRFiles(mock.Anything, id).Return([]*models.File{
			{ID: uuid.New(), Filename: "main.go", Path: "main.go", Status: models.FileStatusModified, PullRequestID: id},
		}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/pull-requests/"+id.String()+"/files", nil)
		newRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp handler.PRFilesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, id.String(), resp.PullRequestID)
		require.Len(t, resp.Files, 1)
		assert.Equal(t, "main.go", resp.Files[0].Filename)
	})

	t.Run("unknown pull request", func(t *testing.T) {
		svc := mocks.NewPRInputPort(t)
		svc.EXPECT().ListPRFiles(mock.Anything, id).Return(nil, utils.ErrPRNotFound)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/pull-requests/"+id.String()+"/files", nil)
		newRouter(svc).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
