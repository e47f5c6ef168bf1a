package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/enterprise-ai/aihub-backend/internal/services"
	"github.com/enterprise-ai/aihub-backend/internal/types"
)

type MetricReportedHandler struct {
	reportedService services.MetricReportedService
}

func NewMetricReportedHandler(reportedService services.MetricReportedService) *MetricReportedHandler {
	return &MetricReportedHandler{reportedService: reportedService}
}

func (h *MetricReportedHandler) ListByUseCase(c *gin.Context) {
	usecaseID, err := pathID(c, "usecases_id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	readings, err := h.reportedService.ListByUseCase(c.Request.Context(), usecaseID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, readings)
}

// ListByMetric filters readings by the metric_id query parameter.
func (h *MetricReportedHandler) ListByMetric(c *gin.Context) {
	metricID, err := strconv.Atoi(c.Query("metric_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation", fmt.Errorf("invalid metric_id: %q", c.Query("metric_id")))
		return
	}
	readings, err := h.reportedService.ListByMetric(c.Request.Context(), metricID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, readings)
}

func (h *MetricReportedHandler) Create(c *gin.Context) {
	var payload types.MetricReported
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	created, err := h.reportedService.Create(c.Request.Context(), &payload)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, created)
}
