package types

// AgentLibrary holds AI agent configuration notes for a use case.
type AgentLibrary struct {
	Id              int    `gorm:"column:Id;primaryKey;autoIncrement" json:"Id"`
	UseCasesID      int    `gorm:"column:UseCasesID;index" json:"UseCasesID"`
	KnowledgeSource string `gorm:"column:KnowledgeSource;type:text" json:"KnowledgeSource"`
	Instructions    string `gorm:"column:Instructions;type:text" json:"Instructions"`
}

func (AgentLibrary) TableName() string { return "AgentLibrary" }
