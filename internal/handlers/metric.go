package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enterprise-ai/aihub-backend/internal/services"
	"github.com/enterprise-ai/aihub-backend/internal/types"
)

type MetricHandler struct {
	metricService services.MetricService
}

func NewMetricHandler(metricService services.MetricService) *MetricHandler {
	return &MetricHandler{metricService: metricService}
}

func (h *MetricHandler) ListByUseCase(c *gin.Context) {
	usecaseID, err := pathID(c, "usecases_id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	metrics, err := h.metricService.ListByUseCase(c.Request.Context(), usecaseID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, metrics)
}

func (h *MetricHandler) Create(c *gin.Context) {
	var payload types.Metric
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	created, err := h.metricService.Create(c.Request.Context(), &payload)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, created)
}
