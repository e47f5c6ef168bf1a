package types

import (
	"time"
)

// Plan is a scheduled phase window for a use case.
type Plan struct {
	Id           int        `gorm:"column:Id;primaryKey;autoIncrement" json:"Id"`
	StartDate    *time.Time `gorm:"column:StartDate" json:"StartDate"`
	EndDate      *time.Time `gorm:"column:EndDate" json:"EndDate"`
	UseCasesID   int        `gorm:"column:UseCasesID;index" json:"UseCasesID"`
	UseCasePhase string     `gorm:"column:UseCasePhase;size:100" json:"UseCasePhase"`
	Created      *time.Time `gorm:"column:Created" json:"Created"`
}

func (Plan) TableName() string { return "Plan" }
