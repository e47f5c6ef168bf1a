package types

// Prioritization holds RICE scoring for a use case. RICEScore is derived
// (reach * impact * confidence / effort) and stored.
type Prioritization struct {
	Id                 int      `gorm:"column:Id;primaryKey;autoIncrement" json:"Id"`
	Reach              *float64 `gorm:"column:Reach;type:numeric(18,4)" json:"Reach"`
	Impact             *float64 `gorm:"column:Impact;type:numeric(18,4)" json:"Impact"`
	Confidence         *float64 `gorm:"column:Confidence;type:numeric(18,4)" json:"Confidence"`
	Effort             *float64 `gorm:"column:Effort;type:numeric(18,4)" json:"Effort"`
	RICEScore          *float64 `gorm:"column:RICEScore;type:numeric(18,12)" json:"RICEScore"`
	Priority           string   `gorm:"column:Priority;size:50" json:"Priority"`
	AIGalleryDisplay   *bool    `gorm:"column:AIGalleryDisplay" json:"AIGalleryDisplay"`
	SLTReporting       *bool    `gorm:"column:SLTReporting" json:"SLTReporting"`
	TotalUserBase      *int     `gorm:"column:TotalUserBase" json:"TotalUserBase"`
	Timespan           string   `gorm:"column:Timespan;size:100" json:"Timespan"`
	ReportingFrequency string   `gorm:"column:ReportingFrequency;size:100" json:"ReportingFrequency"`
	UseCasesID         int      `gorm:"column:UseCasesID;index" json:"UseCasesID"`
}

func (Prioritization) TableName() string { return "Prioritization" }
