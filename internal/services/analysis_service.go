package services

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"time"

	"skinfeed_backend/internal/analysisclient"
	"skinfeed_backend/internal/imageprocessor"
	"skinfeed_backend/internal/logger"
	"skinfeed_backend/internal/models"
	"skinfeed_backend/internal/repositories"
	"skinfeed_backend/internal/services/dto"
	"skinfeed_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AnalysisService interface {
	SaveScores(db *gorm.DB, req *dto.SaveScoresRequest) error
	GetLatestScores(db *gorm.DB, userID string) (*dto.ScoresResponse, error)
	AnalyzeImage(ctx context.Context, file *multipart.FileHeader) ([]byte, error)
}

type AnalysisServiceImpl struct {
	analysisRepo repositories.AnalysisRepository
	userRepo     repositories.UserRepository
	client       *analysisclient.Client
}

func NewAnalysisService(
	analysisRepo repositories.AnalysisRepository,
	userRepo repositories.UserRepository,
	client *analysisclient.Client,
) AnalysisService {
	return &AnalysisServiceImpl{
		analysisRepo: analysisRepo,
		userRepo:     userRepo,
		client:       client,
	}
}

// SaveScores appends one score row per call; scores are history, with
// "latest" resolved at read time by analysis date.
func (s *AnalysisServiceImpl) SaveScores(db *gorm.DB, req *dto.SaveScoresRequest) error {
	if _, err := s.userRepo.FindByID(db, req.UserID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	score := &models.SkinAnalysisScore{
		UserID:       req.UserID,
		AcneScore:    req.AcneScore,
		BagsScore:    req.BagsScore,
		RednessScore: req.RednessScore,
		HealthScore:  req.HealthScore,
		AnalysisDate: time.Now(),
	}

	if err := s.analysisRepo.Create(db, score); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AnalysisServiceImpl) GetLatestScores(db *gorm.DB, userID string) (*dto.ScoresResponse, error) {
	score, err := s.analysisRepo.FindLatestByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrScoreNotFound) {
			return nil, apperrors.ErrAnalysisNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.ScoresResponse{
		UserID:       score.UserID,
		AcneScore:    score.AcneScore,
		BagsScore:    score.BagsScore,
		RednessScore: score.RednessScore,
		HealthScore:  score.HealthScore,
		AnalysisDate: score.AnalysisDate,
	}, nil
}

// AnalyzeImage forwards the uploaded binary unchanged to the external
// analysis service and relays its JSON response verbatim.
func (s *AnalysisServiceImpl) AnalyzeImage(ctx context.Context, file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Reject non-images locally instead of burning a call to the
	// external service on them.
	if !imageprocessor.IsValidImage(bytes.NewReader(data)) {
		return nil, apperrors.ErrUnsupportedImage
	}

	result, err := s.client.Analyze(ctx, file.Filename, data)
	if err != nil {
		logger.CtxWithError(ctx, "analysis service call failed", err)
		return nil, apperrors.ErrAnalysisService(err)
	}
	return result, nil
}
