package types

import (
	"time"
)

// UseCase is a tracked AI initiative proposal and its lifecycle state.
// Column names mirror the upstream reporting schema, so everything is
// tagged explicitly instead of relying on GORM's snake_case convention.
type UseCase struct {
	ID                 int        `gorm:"column:ID;primaryKey;autoIncrement" json:"ID"`
	BusinessUnit       string     `gorm:"column:BusinessUnit;size:255" json:"BusinessUnit"`
	UseCase            string     `gorm:"column:UseCase;size:255" json:"UseCase"`
	Headlines          string     `gorm:"column:Headlines;type:text" json:"Headlines"`
	Opportunity        string     `gorm:"column:Opportunity;type:text" json:"Opportunity"`
	Evidence           string     `gorm:"column:Evidence;type:text" json:"Evidence"`
	BusinessValue      string     `gorm:"column:BusinessValue;type:text" json:"BusinessValue"`
	TargetPersonas     string     `gorm:"column:TargetPersonas;type:text" json:"TargetPersonas"`
	Phase              string     `gorm:"column:Phase;size:100" json:"Phase"`
	Status             string     `gorm:"column:Status;size:100" json:"Status"`
	VendorName         string     `gorm:"column:VendorName;size:255" json:"VendorName"`
	ModelName          string     `gorm:"column:ModelName;size:255" json:"ModelName"`
	AITheme            string     `gorm:"column:AITheme;size:512" json:"AITheme"`
	PrimaryContact     string     `gorm:"column:PrimaryContact;size:255" json:"PrimaryContact"`
	InformationLink    string     `gorm:"column:InformationLink;size:1024" json:"InformationLink"`
	TeamName           string     `gorm:"column:TeamName;size:255" json:"TeamName"`
	SubTeamName        string     `gorm:"column:SubTeamName;size:255" json:"SubTeamName"`
	DisplayStatus      *bool      `gorm:"column:DisplayStatus" json:"DisplayStatus"`
	ImageLink          string     `gorm:"column:ImageLink;size:1024" json:"ImageLink"`
	Created            *time.Time `gorm:"column:Created" json:"Created"`
	CreatedBy          string     `gorm:"column:CreatedBy;size:255" json:"CreatedBy"`
	Title              string     `gorm:"column:Title;size:255" json:"Title"`
	AIProductChecklist *bool      `gorm:"column:AIProductChecklist" json:"AIProductChecklist"`
	ESEResourcesNeeded *bool      `gorm:"column:ESEResourcesNeeded" json:"ESEResourcesNeeded"`
}

func (UseCase) TableName() string { return "UseCases" }

// UseCaseUpdate is an explicit partial-update payload: only non-nil fields
// are applied. Field names are compile-time checked against the model by
// Changes(), which builds the column map handed to GORM.
type UseCaseUpdate struct {
	BusinessUnit       *string `json:"BusinessUnit"`
	UseCase            *string `json:"UseCase"`
	Headlines          *string `json:"Headlines"`
	Opportunity        *string `json:"Opportunity"`
	Evidence           *string `json:"Evidence"`
	BusinessValue      *string `json:"BusinessValue"`
	TargetPersonas     *string `json:"TargetPersonas"`
	Phase              *string `json:"Phase"`
	Status             *string `json:"Status"`
	VendorName         *string `json:"VendorName"`
	ModelName          *string `json:"ModelName"`
	AITheme            *string `json:"AITheme"`
	PrimaryContact     *string `json:"PrimaryContact"`
	InformationLink    *string `json:"InformationLink"`
	TeamName           *string `json:"TeamName"`
	SubTeamName        *string `json:"SubTeamName"`
	DisplayStatus      *bool   `json:"DisplayStatus"`
	ImageLink          *string `json:"ImageLink"`
	CreatedBy          *string `json:"CreatedBy"`
	Title              *string `json:"Title"`
	AIProductChecklist *bool   `json:"AIProductChecklist"`
	ESEResourcesNeeded *bool   `json:"ESEResourcesNeeded"`
}

// Changes returns the column assignments for the supplied fields.
func (u UseCaseUpdate) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	setStr := func(col string, v *string) {
		if v != nil {
			changes[col] = *v
		}
	}
	setBool := func(col string, v *bool) {
		if v != nil {
			changes[col] = *v
		}
	}
	setStr("BusinessUnit", u.BusinessUnit)
	setStr("UseCase", u.UseCase)
	setStr("Headlines", u.Headlines)
	setStr("Opportunity", u.Opportunity)
	setStr("Evidence", u.Evidence)
	setStr("BusinessValue", u.BusinessValue)
	setStr("TargetPersonas", u.TargetPersonas)
	setStr("Phase", u.Phase)
	setStr("Status", u.Status)
	setStr("VendorName", u.VendorName)
	setStr("ModelName", u.ModelName)
	setStr("AITheme", u.AITheme)
	setStr("PrimaryContact", u.PrimaryContact)
	setStr("InformationLink", u.InformationLink)
	setStr("TeamName", u.TeamName)
	setStr("SubTeamName", u.SubTeamName)
	setBool("DisplayStatus", u.DisplayStatus)
	setStr("ImageLink", u.ImageLink)
	setStr("CreatedBy", u.CreatedBy)
	setStr("Title", u.Title)
	setBool("AIProductChecklist", u.AIProductChecklist)
	setBool("ESEResourcesNeeded", u.ESEResourcesNeeded)
	return changes
}
