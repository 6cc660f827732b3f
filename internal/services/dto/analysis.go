package dto

import "time"

type SaveScoresRequest struct {
	UserID       string  `json:"userID" binding:"required"`
	AcneScore    float64 `json:"acneScore" binding:"gte=0"`
	BagsScore    float64 `json:"bagsScore" binding:"gte=0"`
	RednessScore float64 `json:"rednessScore" binding:"gte=0"`
	HealthScore  float64 `json:"healthScore" binding:"gte=0"`
}

type ScoresResponse struct {
	UserID       string    `json:"userID"`
	AcneScore    float64   `json:"acneScore"`
	BagsScore    float64   `json:"bagsScore"`
	RednessScore float64   `json:"rednessScore"`
	HealthScore  float64   `json:"healthScore"`
	AnalysisDate time.Time `json:"analysisDate"`
}
