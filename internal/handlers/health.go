package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enterprise-ai/aihub-backend/internal/db"
)

type HealthHandler struct {
	postgres *db.PostgresService
	title    string
	version  string
}

func NewHealthHandler(postgres *db.PostgresService, title, version string) *HealthHandler {
	return &HealthHandler{postgres: postgres, title: title, version: version}
}

// Health reports service liveness plus a categorized database status. The
// endpoint itself answers 200 even when the database is unreachable.
func (h *HealthHandler) Health(c *gin.Context) {
	status := h.postgres.Status(c.Request.Context())
	overall := "healthy"
	if !status.Connected {
		overall = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   overall,
		"database": status,
	})
}

// Root is the service metadata banner.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": h.title,
		"version": h.version,
		"docs":    "/health for status, /api for resources",
	})
}
