package types

import (
	"time"
)

// Stakeholder is a person associated with a use case.
type Stakeholder struct {
	Id              int        `gorm:"column:Id;primaryKey;autoIncrement" json:"Id"`
	Stakeholder     string     `gorm:"column:Stakeholder;size:255" json:"Stakeholder"`
	Role            string     `gorm:"column:Role;size:255" json:"Role"`
	ReviewerType    string     `gorm:"column:ReviewerType;size:255" json:"ReviewerType"`
	StakeholderFlag *bool      `gorm:"column:StakeholderFlag" json:"StakeholderFlag"`
	UseCasesID      int        `gorm:"column:UseCasesID;index" json:"UseCasesID"`
	BusinessUnit    string     `gorm:"column:BusinessUnit;size:255" json:"BusinessUnit"`
	Created         *time.Time `gorm:"column:Created" json:"Created"`
	UseCaseTitle    string     `gorm:"column:UseCaseTitle;size:255" json:"UseCaseTitle"`
}

func (Stakeholder) TableName() string { return "Stakeholder" }

// NewStakeholder is the successor stakeholder table kept alongside the
// legacy one during the upstream migration.
type NewStakeholder struct {
	Id              int        `gorm:"column:Id;primaryKey;autoIncrement" json:"Id"`
	Stakeholder     string     `gorm:"column:Stakeholder;size:255" json:"Stakeholder"`
	Role            string     `gorm:"column:Role;size:255" json:"Role"`
	ReviewerType    string     `gorm:"column:ReviewerType;size:255" json:"ReviewerType"`
	StakeholderFlag *bool      `gorm:"column:StakeholderFlag" json:"StakeholderFlag"`
	UseCasesID      int        `gorm:"column:UseCasesID;index" json:"UseCasesID"`
	Created         *time.Time `gorm:"column:Created" json:"Created"`
}

func (NewStakeholder) TableName() string { return "New_Stakeholder" }
