package types

import (
	"time"
)

// AIProductQuestion is a master checklist question.
type AIProductQuestion struct {
	ID            int        `gorm:"column:ID;primaryKey;autoIncrement" json:"ID"`
	Question      string     `gorm:"column:Question;type:text" json:"Question"`
	QuestionType  string     `gorm:"column:QuestionType;size:255" json:"QuestionType"`
	ResponseValue string     `gorm:"column:ResponseValue;size:255" json:"ResponseValue"`
	Created       *time.Time `gorm:"column:Created" json:"Created"`
}

func (AIProductQuestion) TableName() string { return "AIProductQuestions" }

// AIProductChecklistResponse is a use case's answer to a checklist question.
type AIProductChecklistResponse struct {
	Id         int        `gorm:"column:Id;primaryKey;autoIncrement" json:"Id"`
	UseCasesID int        `gorm:"column:UseCasesID;index" json:"UseCasesID"`
	QuestionID int        `gorm:"column:QuestionID;index" json:"QuestionID"`
	Response   string     `gorm:"column:Response;type:text" json:"Response"`
	Created    *time.Time `gorm:"column:Created" json:"Created"`
}

func (AIProductChecklistResponse) TableName() string { return "AIProductChecklist" }

// PhaseApprovalInformation records a phase approval request.
type PhaseApprovalInformation struct {
	Id                 int        `gorm:"column:Id;primaryKey;autoIncrement" json:"Id"`
	UseCaseTitle       string     `gorm:"column:UseCaseTitle;size:255" json:"UseCaseTitle"`
	UseCaseID          int        `gorm:"column:UseCaseID;index" json:"UseCaseID"`
	RequestedBy        string     `gorm:"column:RequestedBy;size:255" json:"RequestedBy"`
	RequestedOn        *time.Time `gorm:"column:RequestedOn" json:"RequestedOn"`
	DescriptionPurpose string     `gorm:"column:DescriptionPurpose;type:text" json:"DescriptionPurpose"`
}

func (PhaseApprovalInformation) TableName() string { return "PhaseApprovalInformation" }
