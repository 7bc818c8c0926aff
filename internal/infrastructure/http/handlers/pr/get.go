package pr

import (
	"errors"
	"log/slog"
	"net/http"

	"pr-webhook-service/internal/infrastructure/http/handlers/dto"
	"pr-webhook-service/internal/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *PRHandler) GetPR(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), "invalid pull request id")
		return
	}

	pr, err := h.prService.GetPR(r.Context(), id)
	if err != nil {
		if errors.Is(err, utils.ErrPRNotFound) {
			_ = utils.WriteError(w, http.StatusNotFound, utils.HTTPStatusToCode(http.StatusNotFound), err.Error())
			return
		}
		h.log.Error("GetPR failed", slog.String("pr_id", id.String()), slog.Any("err", err))
		_ = utils.WriteError(w, http.StatusInternalServerError, utils.HTTPStatusToCode(http.StatusInternalServerError), utils.ErrInternal.Error())
		return
	}

	_ = utils.WriteJSON(w, http.StatusOK, PRResponse{PR: dto.ToPRDTO(pr)})
}
