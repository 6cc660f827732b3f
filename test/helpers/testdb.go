package helpers

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"skinfeed_backend/internal/app"
	"skinfeed_backend/internal/auth"
	"skinfeed_backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var dbCounter atomic.Int64

// NewTestDB opens a fresh in-memory database and migrates the full
// schema. Every call gets its own database, so tests stay isolated and
// can run in parallel.
func NewTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbCounter.Add(1))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get *sql.DB: %v", err)
	}
	// A single connection keeps the shared in-memory db alive and
	// avoids sqlite write contention under parallel requests.
	sqlDB.SetMaxOpenConns(1)

	if err := app.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// CreateUser inserts a user directly, hashing the password first when
// it is not already a bcrypt hash.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) *models.User {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashed, err := auth.HashPassword(user.PasswordHash)
		if err != nil {
			t.Fatalf("failed to hash password: %v", err)
		}
		user.PasswordHash = hashed
	}
	if user.SkinType == "" {
		user.SkinType = "normal"
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", user.Email, err)
	}
	return user
}

// UniqueEmail generates an email address no other test user has.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// CreateTestPost inserts a post directly.
func CreateTestPost(t *testing.T, db *gorm.DB, userID, content string) *models.Post {
	post := &models.Post{
		UserID:  userID,
		Content: content,
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("failed to create test post: %v", err)
	}
	return post
}

// CreateTestProduct inserts a product directly.
func CreateTestProduct(t *testing.T, db *gorm.DB, name, brand, suitableSkinType string) *models.Product {
	product := &models.Product{
		Name:             name,
		Brand:            brand,
		SuitableSkinType: suitableSkinType,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to create test product: %v", err)
	}
	return product
}
