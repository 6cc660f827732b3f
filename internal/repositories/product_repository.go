package repositories

import (
	"skinfeed_backend/internal/models"

	"gorm.io/gorm"
)

type ProductRepository interface {
	// FindMatching returns products whose suitableSkinType contains the
	// user's skin type as a substring, OR'd with an IN-list of concern
	// categories. An empty extraTypes slice skips the IN clause.
	FindMatching(db *gorm.DB, skinType string, extraTypes []string) ([]models.Product, error)
	FindAll(db *gorm.DB) ([]models.Product, error)
}

type ProductRepositoryImpl struct{}

func NewProductRepository() ProductRepository {
	return &ProductRepositoryImpl{}
}

func (r *ProductRepositoryImpl) FindMatching(db *gorm.DB, skinType string, extraTypes []string) ([]models.Product, error) {
	var products []models.Product

	// LOWER keeps the match case-insensitive on postgres and sqlite
	// alike; callers pass lowercased inputs.
	query := db.Where("LOWER(suitable_skin_type) LIKE ?", "%"+skinType+"%")
	if len(extraTypes) > 0 {
		query = query.Or("LOWER(suitable_skin_type) IN ?", extraTypes)
	}

	err := db.Where(query).Order("name ASC").Find(&products).Error
	return products, err
}

func (r *ProductRepositoryImpl) FindAll(db *gorm.DB) ([]models.Product, error) {
	var products []models.Product
	err := db.Order("name ASC").Find(&products).Error
	return products, err
}
