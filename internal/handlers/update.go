package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enterprise-ai/aihub-backend/internal/services"
	"github.com/enterprise-ai/aihub-backend/internal/types"
)

type UpdateHandler struct {
	updateService services.UpdateService
}

func NewUpdateHandler(updateService services.UpdateService) *UpdateHandler {
	return &UpdateHandler{updateService: updateService}
}

func (h *UpdateHandler) ListByUseCase(c *gin.Context) {
	usecaseID, err := pathID(c, "usecases_id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	updates, err := h.updateService.ListByUseCase(c.Request.Context(), usecaseID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, updates)
}

func (h *UpdateHandler) Create(c *gin.Context) {
	var payload types.Update
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	created, err := h.updateService.Create(c.Request.Context(), &payload)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, created)
}
