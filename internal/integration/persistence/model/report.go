// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-ledger/backend/internal/domain/entity"
)

// ReportModel represents the reports audit table in the database.
type ReportModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ReportType  string    `gorm:"type:varchar(10);not null"`
	StartDate   time.Time `gorm:"type:date;not null"`
	EndDate     time.Time `gorm:"type:date;not null"`
	GeneratedAt time.Time `gorm:"not null;index"`
}

// TableName returns the table name for the ReportModel.
func (ReportModel) TableName() string {
	return "reports"
}

// ToEntity converts a ReportModel to a domain Report entity.
func (m *ReportModel) ToEntity() *entity.Report {
	return &entity.Report{
		ID:          m.ID,
		UserID:      m.UserID,
		ReportType:  entity.ReportType(m.ReportType),
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		GeneratedAt: m.GeneratedAt,
	}
}

// ReportFromEntity creates a ReportModel from a domain Report entity.
func ReportFromEntity(report *entity.Report) *ReportModel {
	return &ReportModel{
		ID:          report.ID,
		UserID:      report.UserID,
		ReportType:  string(report.ReportType),
		StartDate:   report.StartDate,
		EndDate:     report.EndDate,
		GeneratedAt: report.GeneratedAt,
	}
}
