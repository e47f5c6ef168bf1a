package types

// Lookup/reference tables. Read-mostly; seeded at startup when empty. None of
// these are enforced as foreign keys on the UseCase text fields.

type AIThemeMapping struct {
	ID              int    `gorm:"column:ID;primaryKey;autoIncrement" json:"ID"`
	ThemeName       string `gorm:"column:ThemeName;size:255" json:"ThemeName"`
	ThemeDefinition string `gorm:"column:ThemeDefinition;type:text" json:"ThemeDefinition"`
	ThemeExample    string `gorm:"column:ThemeExample;size:255" json:"ThemeExample"`
}

func (AIThemeMapping) TableName() string { return "AIThemeMapping" }

type PersonaMapping struct {
	ID             int    `gorm:"column:ID;primaryKey;autoIncrement" json:"ID"`
	PersonaName    string `gorm:"column:PersonaName;size:255" json:"PersonaName"`
	RoleDefinition string `gorm:"column:RoleDefinition;type:text" json:"RoleDefinition"`
	ExampleRoles   string `gorm:"column:ExampleRoles;type:text" json:"ExampleRoles"`
}

func (PersonaMapping) TableName() string { return "PersonaMapping" }

type VendorModelMapping struct {
	Id          int    `gorm:"column:Id;primaryKey;autoIncrement" json:"Id"`
	VendorName  string `gorm:"column:VendorName;size:255" json:"VendorName"`
	ProductName string `gorm:"column:ProductName;size:255" json:"ProductName"`
}

func (VendorModelMapping) TableName() string { return "VendorModelMapping" }

type BusinessUnitMapping struct {
	Id               int     `gorm:"column:Id;primaryKey;autoIncrement" json:"Id"`
	BusinessUnitName *string `gorm:"column:BusinessUnitName;size:255" json:"BusinessUnitName"`
	TeamName         *string `gorm:"column:TeamName;size:255" json:"TeamName"`
	SubTeamName      *string `gorm:"column:SubTeamName;size:255" json:"SubTeamName"`
}

func (BusinessUnitMapping) TableName() string { return "BusinessUnitMapping" }

type RoleMapping struct {
	Id         int    `gorm:"column:Id;primaryKey;autoIncrement" json:"Id"`
	RoleName   string `gorm:"column:RoleName;size:255" json:"RoleName"`
	ReviewType string `gorm:"column:ReviewType;size:255" json:"ReviewType"`
}

func (RoleMapping) TableName() string { return "RoleMapping" }

type StatusMapping struct {
	Id                int    `gorm:"column:Id;primaryKey;autoIncrement" json:"Id"`
	StatusName        string `gorm:"column:StatusName;size:100" json:"StatusName"`
	StatusColor       string `gorm:"column:StatusColor;size:50" json:"StatusColor"`
	StatusDefinitions string `gorm:"column:StatusDefinitions;type:text" json:"StatusDefinitions"`
}

func (StatusMapping) TableName() string { return "StatusMapping" }

type ImplementationTimespan struct {
	Timespan string `gorm:"column:Timespan;size:100;primaryKey" json:"Timespan"`
}

func (ImplementationTimespan) TableName() string { return "ImplementationTimespan" }

type ReportingFrequency struct {
	Frequency string `gorm:"column:Frequency;size:100;primaryKey" json:"Frequency"`
}

func (ReportingFrequency) TableName() string { return "ReportingFrequency" }

type UnitOfMeasure struct {
	UnitOfMeasure string `gorm:"column:UnitOfMeasure;size:255;primaryKey" json:"UnitOfMeasure"`
}

func (UnitOfMeasure) TableName() string { return "UnitOfMeasure" }

type PhaseMapping struct {
	Id          int    `gorm:"column:Id;primaryKey;autoIncrement" json:"Id"`
	Phase       string `gorm:"column:Phase;size:100" json:"Phase"`
	PhaseStage  string `gorm:"column:PhaseStage;size:100" json:"PhaseStage"`
	Environment string `gorm:"column:Environment;size:100" json:"Environment"`
}

func (PhaseMapping) TableName() string { return "PhaseMapping" }

type RICE struct {
	Id              int    `gorm:"column:Id;primaryKey;autoIncrement" json:"Id"`
	CategoryDisplay string `gorm:"column:CategoryDisplay;size:255" json:"CategoryDisplay"`
	CategoryHeader  string `gorm:"column:CategoryHeader;size:255" json:"CategoryHeader"`
	CategoryValue   string `gorm:"column:CategoryValue;size:255" json:"CategoryValue"`
}

func (RICE) TableName() string { return "RICE" }

type Outcome struct {
	Id                 int    `gorm:"column:Id;primaryKey;autoIncrement" json:"Id"`
	OutcomeCategory    string `gorm:"column:OutcomeCategory;size:255" json:"OutcomeCategory"`
	OutcomeDescription string `gorm:"column:OutcomeDescription;type:text" json:"OutcomeDescription"`
}

func (Outcome) TableName() string { return "Outcomes" }

// AIChampion maps a business unit to its designated champion.
type AIChampion struct {
	Id           int    `gorm:"column:Id;primaryKey;autoIncrement" json:"Id"`
	BusinessUnit string `gorm:"column:BusinessUnit;size:255" json:"BusinessUnit"`
	UKrewer      string `gorm:"column:UKrewer;size:255" json:"UKrewer"`
	Role         string `gorm:"column:Role;size:255" json:"Role"`
}

func (AIChampion) TableName() string { return "AIChampions" }

type Delivery struct {
	Id    int    `gorm:"column:Id;primaryKey;autoIncrement" json:"Id"`
	Title string `gorm:"column:Title;size:255" json:"Title"`
}

func (Delivery) TableName() string { return "Delivery" }
