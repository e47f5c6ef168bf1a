package types

import (
	"time"
)

// Metric is a success metric tracked for a use case. UseCasesID is a plain
// integer column; parent existence is checked at the service layer, not by a
// database constraint.
type Metric struct {
	Id                       int        `gorm:"column:Id;primaryKey;autoIncrement" json:"Id"`
	PrimarySuccessMetricName string     `gorm:"column:PrimarySuccessMetricName;size:255" json:"PrimarySuccessMetricName"`
	BaselineValue            *float64   `gorm:"column:BaselineValue;type:numeric(18,4)" json:"BaselineValue"`
	BaselineDate             *time.Time `gorm:"column:BaselineDate" json:"BaselineDate"`
	TargetValue              *float64   `gorm:"column:TargetValue;type:numeric(18,4)" json:"TargetValue"`
	TargetDate               *time.Time `gorm:"column:TargetDate" json:"TargetDate"`
	MetricType               string     `gorm:"column:MetricType;size:255" json:"MetricType"`
	UnitOfMeasure            string     `gorm:"column:UnitOfMeasure;size:255" json:"UnitOfMeasure"`
	UseCasesID               int        `gorm:"column:UseCasesID;index" json:"UseCasesID"`
}

func (Metric) TableName() string { return "Metric" }

// MetricReported is a periodic reading against a Metric.
type MetricReported struct {
	Id            int        `gorm:"column:Id;primaryKey;autoIncrement" json:"Id"`
	ReportedValue *float64   `gorm:"column:ReportedValue;type:numeric(18,4)" json:"ReportedValue"`
	ReportedDate  *time.Time `gorm:"column:ReportedDate" json:"ReportedDate"`
	UseCasesID    int        `gorm:"column:UseCasesID;index" json:"UseCasesID"`
	MetricID      int        `gorm:"column:MetricID;index" json:"MetricID"`
	Created       *time.Time `gorm:"column:Created" json:"Created"`
	Modified      *time.Time `gorm:"column:Modified" json:"Modified"`
}

func (MetricReported) TableName() string { return "MetricReported" }
