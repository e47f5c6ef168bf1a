package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/enterprise-ai/aihub-backend/internal/services"
	"github.com/enterprise-ai/aihub-backend/internal/types"
)

type UseCaseHandler struct {
	usecaseService services.UseCaseService
}

func NewUseCaseHandler(usecaseService services.UseCaseService) *UseCaseHandler {
	return &UseCaseHandler{usecaseService: usecaseService}
}

func pathID(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, c.Param(name))
	}
	return id, nil
}

func (h *UseCaseHandler) List(c *gin.Context) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation", fmt.Errorf("invalid skip: %q", c.Query("skip")))
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation", fmt.Errorf("invalid limit: %q", c.Query("limit")))
		return
	}
	usecases, err := h.usecaseService.List(
		c.Request.Context(),
		skip,
		limit,
		c.Query("status"),
		c.Query("phase"),
		c.Query("business_unit"),
	)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, usecases)
}

func (h *UseCaseHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	usecase, err := h.usecaseService.Get(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, usecase)
}

func (h *UseCaseHandler) Create(c *gin.Context) {
	var payload types.UseCase
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	created, err := h.usecaseService.Create(c.Request.Context(), &payload)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, created)
}

func (h *UseCaseHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	var payload types.UseCaseUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	updated, err := h.usecaseService.Update(c.Request.Context(), id, payload)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, updated)
}

func (h *UseCaseHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	if err := h.usecaseService.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "Use case deleted successfully"})
}

func (h *UseCaseHandler) PreviousWeekKPI(c *gin.Context) {
	result, err := h.usecaseService.PreviousWeekCount(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

func (h *UseCaseHandler) ImplementedKPI(c *gin.Context) {
	result, err := h.usecaseService.ImplementedCount(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

func (h *UseCaseHandler) SubmissionTimeline(c *gin.Context) {
	timeline, err := h.usecaseService.SubmissionTimeline(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"timeline": timeline})
}

func (h *UseCaseHandler) Recent(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "4"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation", fmt.Errorf("invalid limit: %q", c.Query("limit")))
		return
	}
	usecases, err := h.usecaseService.Recent(c.Request.Context(), limit)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, usecases)
}

func (h *UseCaseHandler) ListStakeholders(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	stakeholders, err := h.usecaseService.ListStakeholders(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, stakeholders)
}

func (h *UseCaseHandler) CreateStakeholder(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	var payload types.Stakeholder
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	created, err := h.usecaseService.CreateStakeholder(c.Request.Context(), id, &payload)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, created)
}

func (h *UseCaseHandler) ListPlans(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	plans, err := h.usecaseService.ListPlans(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, plans)
}

func (h *UseCaseHandler) CreatePlan(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	var payload types.Plan
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	created, err := h.usecaseService.CreatePlan(c.Request.Context(), id, &payload)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, created)
}
