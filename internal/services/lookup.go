package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/enterprise-ai/aihub-backend/internal/pkg/dbctx"
	"github.com/enterprise-ai/aihub-backend/internal/pkg/logger"
	"github.com/enterprise-ai/aihub-backend/internal/repos"
	"github.com/enterprise-ai/aihub-backend/internal/types"
)

// DropdownOption is a {value,label} pair for UI dropdowns; value == label.
type DropdownOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// DropdownData flattens themes, personas and roles in one call.
type DropdownData struct {
	AIThemes []DropdownOption `json:"ai_themes"`
	Personas []DropdownOption `json:"personas"`
	Roles    []DropdownOption `json:"roles"`
}

// VendorHierarchy maps vendor name to its distinct product names, ordered by
// insertion.
type VendorHierarchy struct {
	Vendors map[string][]string `json:"vendors"`
}

// BusinessStructure nests business unit -> team -> distinct sub-teams.
type BusinessStructure struct {
	BusinessUnits map[string]map[string][]string `json:"business_units"`
}

type RolesView struct {
	Roles []string `json:"roles"`
}

type ChampionNames struct {
	Champions []string `json:"champions"`
}

type LookupService interface {
	GetStatusMappings(ctx context.Context) ([]*types.StatusMapping, error)
	GetBusinessUnits(ctx context.Context) ([]*types.BusinessUnitMapping, error)
	GetAIThemes(ctx context.Context) ([]*types.AIThemeMapping, error)
	GetPersonas(ctx context.Context) ([]*types.PersonaMapping, error)
	GetVendors(ctx context.Context) ([]*types.VendorModelMapping, error)
	GetPhases(ctx context.Context) ([]*types.PhaseMapping, error)
	GetAIModelHierarchy(ctx context.Context) (*VendorHierarchy, error)
	GetBusinessStructureHierarchy(ctx context.Context) (*BusinessStructure, error)
	GetRoles(ctx context.Context) (*RolesView, error)
	GetDropdownData(ctx context.Context) (*DropdownData, error)
	GetChampionsForBusinessUnit(ctx context.Context, businessUnit string) ([]*types.AIChampion, error)
	GetAllChampionNames(ctx context.Context) (*ChampionNames, error)
}

type lookupService struct {
	db         *gorm.DB
	log        *logger.Logger
	lookupRepo repos.LookupRepo
}

func NewLookupService(db *gorm.DB, log *logger.Logger, lookupRepo repos.LookupRepo) LookupService {
	serviceLog := log.With("service", "LookupService")
	return &lookupService{db: db, log: serviceLog, lookupRepo: lookupRepo}
}

func (s *lookupService) GetStatusMappings(ctx context.Context) ([]*types.StatusMapping, error) {
	return s.lookupRepo.GetStatusMappings(dbctx.Context{Ctx: ctx})
}

func (s *lookupService) GetBusinessUnits(ctx context.Context) ([]*types.BusinessUnitMapping, error) {
	return s.lookupRepo.GetBusinessUnits(dbctx.Context{Ctx: ctx})
}

func (s *lookupService) GetAIThemes(ctx context.Context) ([]*types.AIThemeMapping, error) {
	return s.lookupRepo.GetAIThemes(dbctx.Context{Ctx: ctx})
}

func (s *lookupService) GetPersonas(ctx context.Context) ([]*types.PersonaMapping, error) {
	return s.lookupRepo.GetPersonas(dbctx.Context{Ctx: ctx})
}

func (s *lookupService) GetVendors(ctx context.Context) ([]*types.VendorModelMapping, error) {
	return s.lookupRepo.GetVendors(dbctx.Context{Ctx: ctx})
}

func (s *lookupService) GetPhases(ctx context.Context) ([]*types.PhaseMapping, error) {
	return s.lookupRepo.GetPhases(dbctx.Context{Ctx: ctx})
}

// GetAIModelHierarchy groups vendor/product rows into vendor -> products,
// suppressing duplicate products while keeping insertion order.
func (s *lookupService) GetAIModelHierarchy(ctx context.Context) (*VendorHierarchy, error) {
	rows, err := s.lookupRepo.GetVendors(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, err
	}
	vendors := map[string][]string{}
	for _, row := range rows {
		if row.VendorName == "" || row.ProductName == "" {
			continue
		}
		if containsString(vendors[row.VendorName], row.ProductName) {
			continue
		}
		vendors[row.VendorName] = append(vendors[row.VendorName], row.ProductName)
	}
	return &VendorHierarchy{Vendors: vendors}, nil
}

// GetBusinessStructureHierarchy nests unit -> team -> sub-teams. Rows with a
// null business unit are dropped; a team with a null sub-team stays as a team
// with no sub-teams.
func (s *lookupService) GetBusinessStructureHierarchy(ctx context.Context) (*BusinessStructure, error) {
	rows, err := s.lookupRepo.GetBusinessUnits(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, err
	}
	structure := map[string]map[string][]string{}
	for _, row := range rows {
		if row.BusinessUnitName == nil || *row.BusinessUnitName == "" {
			continue
		}
		unit := *row.BusinessUnitName
		if _, ok := structure[unit]; !ok {
			structure[unit] = map[string][]string{}
		}
		if row.TeamName == nil || *row.TeamName == "" {
			continue
		}
		team := *row.TeamName
		if _, ok := structure[unit][team]; !ok {
			structure[unit][team] = []string{}
		}
		if row.SubTeamName == nil || *row.SubTeamName == "" {
			continue
		}
		if !containsString(structure[unit][team], *row.SubTeamName) {
			structure[unit][team] = append(structure[unit][team], *row.SubTeamName)
		}
	}
	return &BusinessStructure{BusinessUnits: structure}, nil
}

func (s *lookupService) GetRoles(ctx context.Context) (*RolesView, error) {
	names, err := s.lookupRepo.GetUniqueRoleNames(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, err
	}
	return &RolesView{Roles: dropEmpty(names)}, nil
}

func (s *lookupService) GetDropdownData(ctx context.Context) (*DropdownData, error) {
	dbc := dbctx.Context{Ctx: ctx}
	themes, err := s.lookupRepo.GetUniqueThemeNames(dbc)
	if err != nil {
		return nil, err
	}
	personas, err := s.lookupRepo.GetUniquePersonaNames(dbc)
	if err != nil {
		return nil, err
	}
	roles, err := s.lookupRepo.GetUniqueRoleNames(dbc)
	if err != nil {
		return nil, err
	}
	return &DropdownData{
		AIThemes: toOptions(themes),
		Personas: toOptions(personas),
		Roles:    toOptions(roles),
	}, nil
}

func (s *lookupService) GetChampionsForBusinessUnit(ctx context.Context, businessUnit string) ([]*types.AIChampion, error) {
	return s.lookupRepo.GetChampionsByBusinessUnit(dbctx.Context{Ctx: ctx}, businessUnit)
}

func (s *lookupService) GetAllChampionNames(ctx context.Context) (*ChampionNames, error) {
	names, err := s.lookupRepo.GetUniqueChampionNames(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, err
	}
	return &ChampionNames{Champions: dropEmpty(names)}, nil
}

func toOptions(values []string) []DropdownOption {
	options := []DropdownOption{}
	for _, v := range values {
		if v == "" {
			continue
		}
		options = append(options, DropdownOption{Value: v, Label: v})
	}
	return options
}

func dropEmpty(values []string) []string {
	out := []string{}
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func containsString(haystack []string, needle string) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}
