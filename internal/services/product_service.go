package services

import (
	"strings"

	"skinfeed_backend/internal/algorithms"
	"skinfeed_backend/internal/models"
	"skinfeed_backend/internal/repositories"
	"skinfeed_backend/internal/services/dto"
	"skinfeed_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProductService interface {
	MatchProducts(db *gorm.DB, q *dto.MatchProductsQuery) ([]dto.ProductDTO, error)
}

type ProductServiceImpl struct {
	productRepo repositories.ProductRepository
	userRepo    repositories.UserRepository
}

func NewProductService(productRepo repositories.ProductRepository, userRepo repositories.UserRepository) ProductService {
	return &ProductServiceImpl{
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// MatchProducts looks up the user's skin type and filters the catalog:
// substring match on suitableSkinType OR'd with the concern-derived
// category IN-list. A wildcard concern returns the whole catalog.
func (s *ProductServiceImpl) MatchProducts(db *gorm.DB, q *dto.MatchProductsQuery) ([]dto.ProductDTO, error) {
	user, err := s.userRepo.FindByID(db, q.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	var concerns []string
	if q.Concerns != "" {
		concerns = strings.Split(q.Concerns, ",")
	}
	extraTypes := algorithms.ExpandConcerns(concerns)

	products := []dto.ProductDTO{}
	if algorithms.ContainsWildcard(extraTypes) {
		all, err := s.productRepo.FindAll(db)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		for _, p := range all {
			products = append(products, toProductDTO(p))
		}
		return products, nil
	}

	matched, err := s.productRepo.FindMatching(db, strings.ToLower(user.SkinType), extraTypes)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for _, p := range matched {
		products = append(products, toProductDTO(p))
	}
	return products, nil
}

func toProductDTO(p models.Product) dto.ProductDTO {
	return dto.ProductDTO{
		ID:               p.ID,
		Name:             p.Name,
		Brand:            p.Brand,
		SuitableSkinType: p.SuitableSkinType,
		Attributes:       p.Attributes,
	}
}
