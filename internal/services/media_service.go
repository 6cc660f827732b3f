package services

import (
	"mime/multipart"

	"skinfeed_backend/internal/imageprocessor"
	"skinfeed_backend/internal/models"
	"skinfeed_backend/internal/repositories"
	"skinfeed_backend/internal/services/dto"
	"skinfeed_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type MediaService interface {
	UploadPostImage(db *gorm.DB, postID string, file *multipart.FileHeader) (*dto.UploadImageResponse, error)
	GetPostImage(db *gorm.DB, id string) (*models.PostImage, error)
	SetProfilePicture(db *gorm.DB, userID string, file *multipart.FileHeader) (*dto.UploadImageResponse, error)
	GetProfilePicture(db *gorm.DB, id string) (*models.ProfilePicture, error)
}

type MediaServiceImpl struct {
	mediaRepo repositories.MediaRepository
	postRepo  repositories.PostRepository
	userRepo  repositories.UserRepository
	processor *imageprocessor.Processor
}

func NewMediaService(
	mediaRepo repositories.MediaRepository,
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	processor *imageprocessor.Processor,
) MediaService {
	return &MediaServiceImpl{
		mediaRepo: mediaRepo,
		postRepo:  postRepo,
		userRepo:  userRepo,
		processor: processor,
	}
}

// UploadPostImage recompresses the uploaded file format-preservingly
// and stores it keyed to the target post. The post must exist.
func (s *MediaServiceImpl) UploadPostImage(db *gorm.DB, postID string, file *multipart.FileHeader) (*dto.UploadImageResponse, error) {
	if _, err := s.postRepo.FindByID(db, postID); err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	processed, err := s.recompress(file)
	if err != nil {
		return nil, err
	}

	img := &models.PostImage{
		PostID:   postID,
		Data:     processed.Data,
		MimeType: processed.MimeType,
		Size:     int64(len(processed.Data)),
	}
	if err := s.mediaRepo.CreatePostImage(db, img); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.UploadImageResponse{ID: img.ID}, nil
}

// GetPostImage fetches a stored blob by id.
func (s *MediaServiceImpl) GetPostImage(db *gorm.DB, id string) (*models.PostImage, error) {
	img, err := s.mediaRepo.FindPostImageByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrImageNotFound) {
			return nil, apperrors.ErrImageNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return img, nil
}

// SetProfilePicture replaces the user's picture: delete-then-insert in
// one transaction so a user never ends up with two avatars.
func (s *MediaServiceImpl) SetProfilePicture(db *gorm.DB, userID string, file *multipart.FileHeader) (*dto.UploadImageResponse, error) {
	if _, err := s.userRepo.FindByID(db, userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	processed, err := s.recompress(file)
	if err != nil {
		return nil, err
	}

	pic := &models.ProfilePicture{
		UserID:   userID,
		Data:     processed.Data,
		MimeType: processed.MimeType,
		Size:     int64(len(processed.Data)),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return s.mediaRepo.ReplaceProfilePicture(tx, pic)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.UploadImageResponse{ID: pic.ID}, nil
}

func (s *MediaServiceImpl) GetProfilePicture(db *gorm.DB, id string) (*models.ProfilePicture, error) {
	pic, err := s.mediaRepo.FindProfilePictureByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrImageNotFound) {
			return nil, apperrors.ErrImageNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return pic, nil
}

func (s *MediaServiceImpl) recompress(file *multipart.FileHeader) (*imageprocessor.Result, error) {
	src, err := file.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer src.Close()

	processed, err := s.processor.Recompress(src)
	if err != nil {
		return nil, apperrors.ErrUnsupportedImage
	}
	return processed, nil
}
