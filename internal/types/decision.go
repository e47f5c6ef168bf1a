package types

// Decision is a phase-gate approval record for a use case.
type Decision struct {
	Id               int    `gorm:"column:Id;primaryKey;autoIncrement" json:"Id"`
	DecisionComments string `gorm:"column:DecisionComments;type:text" json:"DecisionComments"`
	Role             string `gorm:"column:Role;size:255" json:"Role"`
	ReviewerType     string `gorm:"column:ReviewerType;size:255" json:"ReviewerType"`
	Approver         string `gorm:"column:Approver;size:255" json:"Approver"`
	Phase            string `gorm:"column:Phase;size:100" json:"Phase"`
	Result           string `gorm:"column:Result;size:50" json:"Result"`
	UseCasesID       int    `gorm:"column:UseCasesID;index" json:"UseCasesID"`
}

func (Decision) TableName() string { return "Decisions" }
