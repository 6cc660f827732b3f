package models

import "time"

// SkinAnalysisScore is append-only history; "latest" is the row with
// the max AnalysisDate for a user.
type SkinAnalysisScore struct {
	BaseModel
	UserID       string    `gorm:"not null;index"`
	AcneScore    float64   `gorm:"not null"`
	BagsScore    float64   `gorm:"not null"`
	RednessScore float64   `gorm:"not null"`
	HealthScore  float64   `gorm:"not null"`
	AnalysisDate time.Time `gorm:"not null;index"`
}
