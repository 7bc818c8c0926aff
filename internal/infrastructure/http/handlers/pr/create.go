package pr

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"pr-webhook-service/internal/domain/models"
	"pr-webhook-service/internal/infrastructure/http/handlers/dto"
	"pr-webhook-service/internal/utils"
)

type CreatePRRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Author      string `json:"author" validate:"required"`
	Repository  string `json:"repository" validate:"required"`
	PRNumber    int    `json:"pr_number" validate:"required,gt=0"`
	Status      string `json:"status" validate:"omitempty,oneof=open closed merged"`
}

type PRResponse struct {
	PR dto.PRDTO `json:"pr"`
}

func (h *PRHandler) CreatePR(w http.ResponseWriter, r *http.Request) {
	var req CreatePRRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), err.Error())
		return
	}
	if err := utils.Validate(req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), err.Error())
		return
	}

	h.log.Info("CreatePR request", slog.String("repository", req.Repository), slog.Int("pr_number", req.PRNumber))

	pr, err := h.prService.CreatePR(r.Context(), &models.PullRequest{
		Title:       req.Title,
		Description: req.Description,
		Author:      req.Author,
		Repository:  req.Repository,
		Number:      req.PRNumber,
		Status:      models.PRStatus(req.Status),
	})
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrPRExists):
			_ = utils.WriteError(w, http.StatusConflict, utils.HTTPStatusToCode(http.StatusConflict, err), err.Error())
		case errors.Is(err, utils.ErrInvalidArgument):
			_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), err.Error())
		default:
			h.log.Error("CreatePR failed", slog.String("repository", req.Repository), slog.Any("err", err))
			_ = utils.WriteError(w, http.StatusInternalServerError, utils.HTTPStatusToCode(http.StatusInternalServerError), utils.ErrInternal.Error())
		}
		return
	}

	_ = utils.WriteJSON(w, http.StatusCreated, PRResponse{PR: dto.ToPRDTO(pr)})
}
