package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enterprise-ai/aihub-backend/internal/services"
	"github.com/enterprise-ai/aihub-backend/internal/types"
)

type PrioritizationHandler struct {
	prioService services.PrioritizationService
}

func NewPrioritizationHandler(prioService services.PrioritizationService) *PrioritizationHandler {
	return &PrioritizationHandler{prioService: prioService}
}

func (h *PrioritizationHandler) ListByUseCase(c *gin.Context) {
	usecaseID, err := pathID(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	rows, err := h.prioService.ListByUseCase(c.Request.Context(), usecaseID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, rows)
}

func (h *PrioritizationHandler) Create(c *gin.Context) {
	usecaseID, err := pathID(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	var payload types.Prioritization
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	created, err := h.prioService.Create(c.Request.Context(), usecaseID, &payload)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, created)
}
