package webhook_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pr-webhook-service/internal/domain/models"
	handler "pr-webhook-service/internal/infrastructure/http/handlers/webhook"
	"pr-webhook-service/internal/infrastructure/logger"
	"pr-webhook-service/internal/utils"
	"pr-webhook-service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, svc *mocks.WebhookInputPort, eventType, signature string, body []byte) *httptest.ResponseRecorder {
	h := handler.NewWebhookHandler(svc, logger.New("test"))
	req := httptest.NewRequest(http.MethodPost, "/webhooks/github", bytes.NewReader(body))
	if eventType != "" {
		req.Header.Set("X-GitHub-Event", eventType)
	}
	if signature != "" {
		req.Header.Set("X-Hub-Signature-256", signature)
	}
	rec := httptest.NewRecorder()
	h.HandleGitHub(rec, req)
	return rec
}

func TestWebhookHandler_HandleGitHub_Success(t *testing.T) {
	body := []byte(`{"action":"opened"}`)
	prID := uuid.New()

	svc := mocks.NewWebhookInputPort(t)
	svc.EXPECT().ProcessEvent(mock.Anything, "pull_request", "sha256=abc", body).
		Return(&models.WebhookResult{
			Status:   models.WebhookStatusSuccess,
			Message:  "Created new PR #42",
			Action:   "opened",
			PRID:     prID,
			PRNumber: 42,
		}, nil)

	rec := doRequest(t, svc, "pull_request", "sha256=abc", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.SuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "Created new PR #42", resp.Message)
	assert.Equal(t, prID, resp.PRID)
	assert.Equal(t, 42, resp.PRNumber)
	assert.Equal(t, "opened", resp.Action)
}

func TestWebhookHandler_HandleGitHub_IgnoredEventType(t *testing.T) {
	body := []byte(`{"zen":"Design for failure."}`)

	svc := mocks.NewWebhookInputPort(t)
	svc.EXPECT().ProcessEvent(mock.Anything, "ping", "", body).
		Return(&models.WebhookResult{
			Status:        models.WebhookStatusIgnored,
			Message:       "Event type 'ping' not supported",
			ReceivedEvent: "ping",
		}, nil)

	rec := doRequest(t, svc, "ping", "", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.IgnoredEventResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ignored", resp.Status)
	assert.Equal(t, "ping", resp.ReceivedEvent)
	assert.Equal(t, []string{"pull_request"}, resp.SupportedEvents)
}

func TestWebhookHandler_HandleGitHub_IgnoredAction(t *testing.T) {
	body := []byte(`{"action":"labeled"}`)

	svc := mocks.NewWebhookInputPort(t)
	svc.EXPECT().ProcessEvent(mock.Anything, "pull_request", "", body).
		Return(&models.WebhookResult{
			Status:  models.WebhookStatusIgnored,
			Message: "Action 'labeled' not handled",
			Action:  "labeled",
		}, nil)

	rec := doRequest(t, svc, "pull_request", "", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.IgnoredActionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ignored", resp.Status)
	assert.Equal(t, "labeled", resp.Action)
}

func TestWebhookHandler_HandleGitHub_Errors(t *testing.T) {
	body := []byte(`{"action":"opened"}`)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "unauthorized",
			err:        utils.ErrUnauthorized,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "empty payload",
			err:        utils.ErrEmptyPayload,
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
		},
		{
			name:       "malformed payload",
			err:        utils.ErrMalformedPayload,
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
		},
		{
			name:       "missing event type",
			err:        utils.ErrMissingEventType,
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
		},
		{
			name:       "no pull_request object",
			err:        utils.ErrMissingPullRequestData,
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
		},
		{
			name:       "validation error",
			err:        utils.NewValidationError("title"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewWebhookInputPort(t)
			svc.EXPECT().ProcessEvent(mock.Anything, "pull_request", "", body).Return(nil, tt.err)

			rec := doRequest(t, svc, "pull_request", "", body)
			require.Equal(t, tt.wantStatus, rec.Code)

			var resp utils.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Equal(t, tt.err.Error(), resp.Error.Message)
		})
	}
}

func TestWebhookHandler_HandleGitHub_PersistenceFailure(t *testing.T) {
	body := []byte(`{"action":"opened"}`)

	svc := mocks.NewWebhookInputPort(t)
	svc.EXPECT().ProcessEvent(mock.Anything, "pull_request", "", body).
		Return(nil, errors.New("process 'opened' event: connection refused"))

	rec := doRequest(t, svc, "pull_request", "", body)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp handler.InternalErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "persistence_failure", resp.Error)
	assert.Contains(t, resp.Hint, "redeliver")
}
