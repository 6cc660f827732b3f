package repositories

import (
	"errors"

	"skinfeed_backend/internal/models"

	"gorm.io/gorm"
)

var ErrScoreNotFound = errors.New("skin analysis score not found")

type AnalysisRepository interface {
	// Create appends one score row; scores are history, never upserted.
	Create(db *gorm.DB, score *models.SkinAnalysisScore) error
	FindLatestByUserID(db *gorm.DB, userID string) (*models.SkinAnalysisScore, error)
}

type AnalysisRepositoryImpl struct{}

func NewAnalysisRepository() AnalysisRepository {
	return &AnalysisRepositoryImpl{}
}

func (r *AnalysisRepositoryImpl) Create(db *gorm.DB, score *models.SkinAnalysisScore) error {
	return db.Create(score).Error
}

func (r *AnalysisRepositoryImpl) FindLatestByUserID(db *gorm.DB, userID string) (*models.SkinAnalysisScore, error) {
	var score models.SkinAnalysisScore
	err := db.Where("user_id = ?", userID).Order("analysis_date DESC").First(&score).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScoreNotFound
		}
		return nil, err
	}
	return &score, nil
}
