package pr

import (
	input "pr-webhook-service/internal/domain/ports/input"
	"pr-webhook-service/internal/infrastructure/logger"
)

type PRHandler struct {
	prService input.PRInputPort
	log       *logger.Logger
}

func NewPRHandler(s input.PRInputPort, log *logger.Logger) *PRHandler {
	return &PRHandler{prService: s, log: log}
}
