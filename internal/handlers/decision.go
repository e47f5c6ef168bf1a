package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enterprise-ai/aihub-backend/internal/services"
	"github.com/enterprise-ai/aihub-backend/internal/types"
)

type DecisionHandler struct {
	decisionService services.DecisionService
}

func NewDecisionHandler(decisionService services.DecisionService) *DecisionHandler {
	return &DecisionHandler{decisionService: decisionService}
}

func (h *DecisionHandler) ListByUseCase(c *gin.Context) {
	usecaseID, err := pathID(c, "usecases_id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	decisions, err := h.decisionService.ListByUseCase(c.Request.Context(), usecaseID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, decisions)
}

func (h *DecisionHandler) Create(c *gin.Context) {
	var payload types.Decision
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	created, err := h.decisionService.Create(c.Request.Context(), &payload)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, created)
}
