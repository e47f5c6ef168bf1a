package repos

import (
	"gorm.io/gorm"

	"github.com/enterprise-ai/aihub-backend/internal/pkg/dbctx"
	"github.com/enterprise-ai/aihub-backend/internal/pkg/logger"
	"github.com/enterprise-ai/aihub-backend/internal/types"
)

// LookupRepo is read-only access to the reference tables.
type LookupRepo interface {
	GetStatusMappings(dbc dbctx.Context) ([]*types.StatusMapping, error)
	GetBusinessUnits(dbc dbctx.Context) ([]*types.BusinessUnitMapping, error)
	GetAIThemes(dbc dbctx.Context) ([]*types.AIThemeMapping, error)
	GetPersonas(dbc dbctx.Context) ([]*types.PersonaMapping, error)
	GetVendors(dbc dbctx.Context) ([]*types.VendorModelMapping, error)
	GetRoles(dbc dbctx.Context) ([]*types.RoleMapping, error)
	GetPhases(dbc dbctx.Context) ([]*types.PhaseMapping, error)
	GetUniqueThemeNames(dbc dbctx.Context) ([]string, error)
	GetUniquePersonaNames(dbc dbctx.Context) ([]string, error)
	GetUniqueRoleNames(dbc dbctx.Context) ([]string, error)
	GetChampionsByBusinessUnit(dbc dbctx.Context, businessUnit string) ([]*types.AIChampion, error)
	GetUniqueChampionNames(dbc dbctx.Context) ([]string, error)
}

type lookupRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLookupRepo(db *gorm.DB, baseLog *logger.Logger) LookupRepo {
	repoLog := baseLog.With("repo", "LookupRepo")
	return &lookupRepo{db: db, log: repoLog}
}

func (r *lookupRepo) handle(dbc dbctx.Context) *gorm.DB {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx)
}

func (r *lookupRepo) GetStatusMappings(dbc dbctx.Context) ([]*types.StatusMapping, error) {
	var results []*types.StatusMapping
	if err := r.handle(dbc).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *lookupRepo) GetBusinessUnits(dbc dbctx.Context) ([]*types.BusinessUnitMapping, error) {
	var results []*types.BusinessUnitMapping
	if err := r.handle(dbc).Order(`"Id" ASC`).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *lookupRepo) GetAIThemes(dbc dbctx.Context) ([]*types.AIThemeMapping, error) {
	var results []*types.AIThemeMapping
	if err := r.handle(dbc).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *lookupRepo) GetPersonas(dbc dbctx.Context) ([]*types.PersonaMapping, error) {
	var results []*types.PersonaMapping
	if err := r.handle(dbc).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *lookupRepo) GetVendors(dbc dbctx.Context) ([]*types.VendorModelMapping, error) {
	var results []*types.VendorModelMapping
	if err := r.handle(dbc).Order(`"Id" ASC`).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *lookupRepo) GetRoles(dbc dbctx.Context) ([]*types.RoleMapping, error) {
	var results []*types.RoleMapping
	if err := r.handle(dbc).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *lookupRepo) GetPhases(dbc dbctx.Context) ([]*types.PhaseMapping, error) {
	var results []*types.PhaseMapping
	if err := r.handle(dbc).Order(`"Id" ASC`).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *lookupRepo) GetUniqueThemeNames(dbc dbctx.Context) ([]string, error) {
	var names []string
	if err := r.handle(dbc).
		Model(&types.AIThemeMapping{}).
		Distinct().
		Pluck("ThemeName", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

func (r *lookupRepo) GetUniquePersonaNames(dbc dbctx.Context) ([]string, error) {
	var names []string
	if err := r.handle(dbc).
		Model(&types.PersonaMapping{}).
		Distinct().
		Pluck("PersonaName", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

func (r *lookupRepo) GetUniqueRoleNames(dbc dbctx.Context) ([]string, error) {
	var names []string
	if err := r.handle(dbc).
		Model(&types.RoleMapping{}).
		Distinct().
		Pluck("RoleName", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

func (r *lookupRepo) GetChampionsByBusinessUnit(dbc dbctx.Context, businessUnit string) ([]*types.AIChampion, error) {
	var results []*types.AIChampion
	if err := r.handle(dbc).
		Where(`"BusinessUnit" = ?`, businessUnit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *lookupRepo) GetUniqueChampionNames(dbc dbctx.Context) ([]string, error) {
	var names []string
	if err := r.handle(dbc).
		Model(&types.AIChampion{}).
		Distinct().
		Pluck("UKrewer", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}
