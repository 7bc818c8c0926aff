package pr

import (
	"log/slog"
	"net/http"

	"pr-webhook-service/internal/domain/models"
	"pr-webhook-service/internal/infrastructure/http/handlers/dto"
	"pr-webhook-service/internal/utils"
)

type ListPRsResponse struct {
	PullRequests []dto.PRDTO `json:"pull_requests"`
}

func (h *PRHandler) ListPRs(w http.ResponseWriter, r *http.Request) {
	var status *models.PRStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := models.PRStatus(raw)
		switch s {
		case models.PRStatusOpen, models.PRStatusClosed, models.PRStatusMerged:
			status = &s
		default:
			_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), "invalid status filter")
			return
		}
	}

	prs, err := h.prService.ListPRs(r.Context(), status)
	if err != nil {
		h.log.Error("ListPRs failed", slog.Any("err", err))
		_ = utils.WriteError(w, http.StatusInternalServerError, utils.HTTPStatusToCode(http.StatusInternalServerError), utils.ErrInternal.Error())
		return
	}

	resp := ListPRsResponse{PullRequests: make([]dto.PRDTO, 0, len(prs))}
	for _, p := range prs {
		resp.PullRequests = append(resp.PullRequests, dto.ToPRDTO(p))
	}
	_ = utils.WriteJSON(w, http.StatusOK, resp)
}
