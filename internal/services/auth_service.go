package services

import (
	"skinfeed_backend/internal/auth"
	"skinfeed_backend/internal/models"
	"skinfeed_backend/internal/repositories"
	"skinfeed_backend/internal/services/dto"
	"skinfeed_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Signup(db *gorm.DB, req *dto.SignupRequest) error
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
	}
}

// Signup inserts a new user. The password is bcrypt-hashed here; the
// raw value never reaches the repository.
func (s *AuthServiceImpl) Signup(db *gorm.DB, req *dto.SignupRequest) error {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Gender:       req.Gender,
		Age:          req.Age,
		SkinType:     req.SkinType,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return apperrors.ErrEmailAlreadyExists
		}
		return apperrors.InternalError(err)
	}

	return nil
}

// Login checks the credentials and issues a 30-day token embedding the
// user's id and email. A missing user and a bad password are distinct
// outcomes (404 vs 401) per the client contract.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrIncorrectPassword
	}

	token, err := auth.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Message:  "Login successful",
		Token:    token,
		UserID:   user.ID,
		Email:    user.Email,
		UserName: displayName(user),
	}, nil
}

func displayName(user *models.User) string {
	name := user.FirstName
	if user.LastName != "" {
		if name != "" {
			name += " "
		}
		name += user.LastName
	}
	return name
}
