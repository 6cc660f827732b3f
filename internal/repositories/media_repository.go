package repositories

import (
	"errors"

	"skinfeed_backend/internal/models"

	"gorm.io/gorm"
)

var ErrImageNotFound = errors.New("image not found")

// MediaRepository covers both blob tables: post images and profile
// pictures share the same access pattern.
type MediaRepository interface {
	CreatePostImage(db *gorm.DB, img *models.PostImage) error
	FindPostImageByID(db *gorm.DB, id string) (*models.PostImage, error)

	ReplaceProfilePicture(db *gorm.DB, pic *models.ProfilePicture) error
	FindProfilePictureByID(db *gorm.DB, id string) (*models.ProfilePicture, error)
	FindProfilePictureIDsByUserIDs(db *gorm.DB, userIDs []string) (map[string]string, error)
}

type MediaRepositoryImpl struct{}

func NewMediaRepository() MediaRepository {
	return &MediaRepositoryImpl{}
}

func (r *MediaRepositoryImpl) CreatePostImage(db *gorm.DB, img *models.PostImage) error {
	return db.Create(img).Error
}

func (r *MediaRepositoryImpl) FindPostImageByID(db *gorm.DB, id string) (*models.PostImage, error) {
	var img models.PostImage
	err := db.First(&img, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrImageNotFound
		}
		return nil, err
	}
	return &img, nil
}

// ReplaceProfilePicture deletes any existing picture rows for the user
// and inserts the new one. Callers run it inside a transaction.
func (r *MediaRepositoryImpl) ReplaceProfilePicture(db *gorm.DB, pic *models.ProfilePicture) error {
	if err := db.Where("user_id = ?", pic.UserID).Delete(&models.ProfilePicture{}).Error; err != nil {
		return err
	}
	return db.Create(pic).Error
}

func (r *MediaRepositoryImpl) FindProfilePictureByID(db *gorm.DB, id string) (*models.ProfilePicture, error) {
	var pic models.ProfilePicture
	err := db.First(&pic, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrImageNotFound
		}
		return nil, err
	}
	return &pic, nil
}

// FindProfilePictureIDsByUserIDs returns the first picture id per user
// for the given page of authors.
func (r *MediaRepositoryImpl) FindProfilePictureIDsByUserIDs(db *gorm.DB, userIDs []string) (map[string]string, error) {
	pics := make(map[string]string, len(userIDs))
	if len(userIDs) == 0 {
		return pics, nil
	}

	type row struct {
		ID     string
		UserID string
	}
	var rows []row
	err := db.Model(&models.ProfilePicture{}).
		Select("id, user_id").
		Where("user_id IN ?", userIDs).
		Order("created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		if _, ok := pics[r.UserID]; !ok {
			pics[r.UserID] = r.ID
		}
	}
	return pics, nil
}
