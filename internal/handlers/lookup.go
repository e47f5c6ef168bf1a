package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/enterprise-ai/aihub-backend/internal/services"
)

type LookupHandler struct {
	lookupService services.LookupService
}

func NewLookupHandler(lookupService services.LookupService) *LookupHandler {
	return &LookupHandler{lookupService: lookupService}
}

func (h *LookupHandler) StatusMappings(c *gin.Context) {
	rows, err := h.lookupService.GetStatusMappings(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, rows)
}

func (h *LookupHandler) BusinessUnits(c *gin.Context) {
	rows, err := h.lookupService.GetBusinessUnits(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, rows)
}

func (h *LookupHandler) AIThemes(c *gin.Context) {
	rows, err := h.lookupService.GetAIThemes(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, rows)
}

func (h *LookupHandler) Personas(c *gin.Context) {
	rows, err := h.lookupService.GetPersonas(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, rows)
}

func (h *LookupHandler) Vendors(c *gin.Context) {
	rows, err := h.lookupService.GetVendors(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, rows)
}

func (h *LookupHandler) Phases(c *gin.Context) {
	rows, err := h.lookupService.GetPhases(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, rows)
}

func (h *LookupHandler) AIModelHierarchy(c *gin.Context) {
	hierarchy, err := h.lookupService.GetAIModelHierarchy(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, hierarchy)
}

func (h *LookupHandler) BusinessStructure(c *gin.Context) {
	structure, err := h.lookupService.GetBusinessStructureHierarchy(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, structure)
}

func (h *LookupHandler) Roles(c *gin.Context) {
	roles, err := h.lookupService.GetRoles(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, roles)
}

func (h *LookupHandler) DropdownData(c *gin.Context) {
	data, err := h.lookupService.GetDropdownData(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, data)
}

func (h *LookupHandler) ChampionsForBusinessUnit(c *gin.Context) {
	champions, err := h.lookupService.GetChampionsForBusinessUnit(c.Request.Context(), c.Param("business_unit"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, champions)
}

func (h *LookupHandler) ChampionNames(c *gin.Context) {
	names, err := h.lookupService.GetAllChampionNames(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, names)
}
