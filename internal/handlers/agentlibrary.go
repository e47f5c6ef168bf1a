package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enterprise-ai/aihub-backend/internal/services"
	"github.com/enterprise-ai/aihub-backend/internal/types"
)

type AgentLibraryHandler struct {
	agentService services.AgentLibraryService
}

func NewAgentLibraryHandler(agentService services.AgentLibraryService) *AgentLibraryHandler {
	return &AgentLibraryHandler{agentService: agentService}
}

func (h *AgentLibraryHandler) ListByUseCase(c *gin.Context) {
	usecaseID, err := pathID(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	entries, err := h.agentService.ListByUseCase(c.Request.Context(), usecaseID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, entries)
}

func (h *AgentLibraryHandler) Create(c *gin.Context) {
	usecaseID, err := pathID(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	var payload types.AgentLibrary
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	created, err := h.agentService.Create(c.Request.Context(), usecaseID, &payload)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, created)
}
