package webhook

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	appwebhook "pr-webhook-service/internal/application/webhook"
	"pr-webhook-service/internal/utils"

	"github.com/google/uuid"
)

const (
	headerEvent     = "X-GitHub-Event"
	headerSignature = "X-Hub-Signature-256"
)

type SuccessResponse struct {
	Status   string    `json:"status"`
	Message  string    `json:"message"`
	PRID     uuid.UUID `json:"pr_id"`
	PRNumber int       `json:"pr_number"`
	Action   string    `json:"action"`
}

type IgnoredEventResponse struct {
	Status          string   `json:"status"`
	Message         string   `json:"message"`
	ReceivedEvent   string   `json:"received_event"`
	SupportedEvents []string `json:"supported_events"`
}

type IgnoredActionResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Action  string `json:"action"`
}

// InternalErrorResponse carries a classification plus an advisory hint
// for the webhook operator.
type InternalErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
	Hint   string `json:"hint"`
}

const redeliveryHint = "check database connectivity and redeliver the event from the GitHub webhook settings page"

func (h *WebhookHandler) HandleGitHub(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.log.Error("read webhook body failed", slog.Any("err", err))
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), "could not read request body")
		return
	}

	eventType := r.Header.Get(headerEvent)
	signature := r.Header.Get(headerSignature)

	result, err := h.webhookService.ProcessEvent(r.Context(), eventType, signature, body)
	if err != nil {
		h.writeError(w, eventType, err)
		return
	}

	switch {
	case result.Ignored() && result.ReceivedEvent != "":
		_ = utils.WriteJSON(w, http.StatusOK, IgnoredEventResponse{
			Status:          result.Status,
			Message:         result.Message,
			ReceivedEvent:   result.ReceivedEvent,
			SupportedEvents: []string{appwebhook.EventTypePullRequest},
		})
	case result.Ignored():
		_ = utils.WriteJSON(w, http.StatusOK, IgnoredActionResponse{
			Status:  result.Status,
			Message: result.Message,
			Action:  result.Action,
		})
	default:
		_ = utils.WriteJSON(w, http.StatusOK, SuccessResponse{
			Status:   result.Status,
			Message:  result.Message,
			PRID:     result.PRID,
			PRNumber: result.PRNumber,
			Action:   result.Action,
		})
	}
}

func (h *WebhookHandler) writeError(w http.ResponseWriter, eventType string, err error) {
	var validationErr *utils.ValidationError
	switch {
	case errors.Is(err, utils.ErrUnauthorized):
		_ = utils.WriteError(w, http.StatusUnauthorized, utils.HTTPStatusToCode(http.StatusUnauthorized), err.Error())
	case errors.Is(err, utils.ErrEmptyPayload),
		errors.Is(err, utils.ErrMalformedPayload),
		errors.Is(err, utils.ErrMissingEventType),
		errors.Is(err, utils.ErrMissingPullRequestData),
		errors.As(err, &validationErr):
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), err.Error())
	default:
		h.log.Error("webhook processing failed", slog.String("event_type", eventType), slog.Any("err", err))
		_ = utils.WriteJSON(w, http.StatusInternalServerError, InternalErrorResponse{
			Status: "error",
			Error:  "persistence_failure",
			Hint:   redeliveryHint,
		})
	}
}
