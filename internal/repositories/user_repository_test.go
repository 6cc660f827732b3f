package repositories_test

import (
	"testing"

	"skinfeed_backend/internal/models"
	"skinfeed_backend/internal/repositories"
	"skinfeed_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreate_DuplicateEmail(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewUserRepository()

	email := helpers.UniqueEmail("duprepo")

	require.NoError(t, repo.Create(db, &models.User{
		Email:        email,
		PasswordHash: "hash-one",
		FirstName:    "First",
		LastName:     "Writer",
		SkinType:     "normal",
	}))

	// The unique index surfaces the duplicate as the domain error, not
	// a raw driver error.
	err := repo.Create(db, &models.User{
		Email:        email,
		PasswordHash: "hash-two",
		FirstName:    "Second",
		LastName:     "Writer",
		SkinType:     "oily",
	})
	assert.ErrorIs(t, err, repositories.ErrUserAlreadyExists)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
