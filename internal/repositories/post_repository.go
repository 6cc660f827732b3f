package repositories

import (
	"errors"
	"time"

	"skinfeed_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPostNotFound = errors.New("post not found")

// CommentWithAuthor is one row of the comments listing join.
type CommentWithAuthor struct {
	ID        string
	PostID    string
	UserID    string
	Content   string
	CreatedAt time.Time
	FirstName string
	LastName  string
}

type PostRepository interface {
	Create(db *gorm.DB, post *models.Post) error
	FindByID(db *gorm.DB, id string) (*models.Post, error)
	ListPage(db *gorm.DB, offset, limit int) ([]models.Post, error)

	// Like toggle primitives; the service wraps them in a transaction.
	DeleteLike(db *gorm.DB, postID, userID string) (int64, error)
	CreateLike(db *gorm.DB, like *models.Like) error

	// Page-scoped annotation lookups, keyed by the page's ids only.
	CountLikesByPostIDs(db *gorm.DB, postIDs []string) (map[string]int64, error)
	FindLikedPostIDs(db *gorm.DB, userID string, postIDs []string) (map[string]bool, error)
	FindImageIDsByPostIDs(db *gorm.DB, postIDs []string) (map[string][]string, error)

	CreateComment(db *gorm.DB, comment *models.Comment) error
	ListCommentsWithAuthors(db *gorm.DB, postID string) ([]CommentWithAuthor, error)
}

type PostRepositoryImpl struct{}

func NewPostRepository() PostRepository {
	return &PostRepositoryImpl{}
}

func (r *PostRepositoryImpl) Create(db *gorm.DB, post *models.Post) error {
	return db.Create(post).Error
}

func (r *PostRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Post, error) {
	var post models.Post
	err := db.First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// ListPage returns one feed page, newest first. Offset/limit pagination
// keeps the sequence page-restartable.
func (r *PostRepositoryImpl) ListPage(db *gorm.DB, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

func (r *PostRepositoryImpl) DeleteLike(db *gorm.DB, postID, userID string) (int64, error) {
	res := db.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.Like{})
	return res.RowsAffected, res.Error
}

func (r *PostRepositoryImpl) CreateLike(db *gorm.DB, like *models.Like) error {
	return db.Create(like).Error
}

func (r *PostRepositoryImpl) CountLikesByPostIDs(db *gorm.DB, postIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	type row struct {
		PostID string
		Count  int64
	}
	var rows []row
	err := db.Model(&models.Like{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		counts[r.PostID] = r.Count
	}
	return counts, nil
}

func (r *PostRepositoryImpl) FindLikedPostIDs(db *gorm.DB, userID string, postIDs []string) (map[string]bool, error) {
	liked := make(map[string]bool, len(postIDs))
	if userID == "" || len(postIDs) == 0 {
		return liked, nil
	}

	var ids []string
	err := db.Model(&models.Like{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

func (r *PostRepositoryImpl) FindImageIDsByPostIDs(db *gorm.DB, postIDs []string) (map[string][]string, error) {
	images := make(map[string][]string, len(postIDs))
	if len(postIDs) == 0 {
		return images, nil
	}

	type row struct {
		ID     string
		PostID string
	}
	var rows []row
	err := db.Model(&models.PostImage{}).
		Select("id, post_id").
		Where("post_id IN ?", postIDs).
		Order("created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		images[r.PostID] = append(images[r.PostID], r.ID)
	}
	return images, nil
}

func (r *PostRepositoryImpl) CreateComment(db *gorm.DB, comment *models.Comment) error {
	return db.Create(comment).Error
}

// ListCommentsWithAuthors joins comments with their authors in a single
// query, oldest first.
func (r *PostRepositoryImpl) ListCommentsWithAuthors(db *gorm.DB, postID string) ([]CommentWithAuthor, error) {
	var rows []CommentWithAuthor
	err := db.Model(&models.Comment{}).
		Select("comments.id, comments.post_id, comments.user_id, comments.content, comments.created_at, users.first_name, users.last_name").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.post_id = ?", postID).
		Order("comments.created_at ASC").
		Scan(&rows).Error
	return rows, err
}
