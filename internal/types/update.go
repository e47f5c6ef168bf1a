package types

// Update is a free-text progress note with a phase/status snapshot taken at
// submission time.
type Update struct {
	Id               int    `gorm:"column:Id;primaryKey;autoIncrement" json:"Id"`
	SubmittedBy      string `gorm:"column:SubmittedBy;size:255" json:"SubmittedBy"`
	SubmitterRole    string `gorm:"column:SubmitterRole;size:255" json:"SubmitterRole"`
	UseCasePhase     string `gorm:"column:UseCasePhase;size:100" json:"UseCasePhase"`
	UseCaseStatus    string `gorm:"column:UseCaseStatus;size:100" json:"UseCaseStatus"`
	MeaningfulUpdate string `gorm:"column:MeaningfulUpdate;type:text" json:"MeaningfulUpdate"`
	UseCasesID       int    `gorm:"column:UseCasesID;index" json:"UseCasesID"`
}

func (Update) TableName() string { return "Updates" }
