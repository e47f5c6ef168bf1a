package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/enterprise-ai/aihub-backend/internal/services"
)

type KPIHandler struct {
	kpiService services.KPIService
}

func NewKPIHandler(kpiService services.KPIService) *KPIHandler {
	return &KPIHandler{kpiService: kpiService}
}

// Dashboard always returns 200; degraded sub-computations surface as
// zeros/empty lists rather than an error.
func (h *KPIHandler) Dashboard(c *gin.Context) {
	RespondOK(c, h.kpiService.Dashboard(c.Request.Context()))
}
