package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enterprise-ai/aihub-backend/internal/services"
	"github.com/enterprise-ai/aihub-backend/internal/types"
)

type ChecklistHandler struct {
	checklistService services.ChecklistService
}

func NewChecklistHandler(checklistService services.ChecklistService) *ChecklistHandler {
	return &ChecklistHandler{checklistService: checklistService}
}

func (h *ChecklistHandler) GetForUseCase(c *gin.Context) {
	usecaseID, err := pathID(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	view, err := h.checklistService.GetForUseCase(c.Request.Context(), usecaseID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, view)
}

func (h *ChecklistHandler) CreateResponse(c *gin.Context) {
	usecaseID, err := pathID(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	var payload types.AIProductChecklistResponse
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	created, err := h.checklistService.CreateResponse(c.Request.Context(), usecaseID, &payload)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, created)
}
