package services

import (
	"strings"

	"skinfeed_backend/internal/imageprocessor"
	"skinfeed_backend/internal/models"
	"skinfeed_backend/internal/repositories"
	"skinfeed_backend/internal/services/dto"
	"skinfeed_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const defaultFeedLimit = 30

type PostService interface {
	CreatePost(db *gorm.DB, req *dto.CreatePostRequest) (*dto.CreatePostResponse, error)
	ListPosts(db *gorm.DB, q *dto.FeedQuery) ([]dto.PostDTO, error)
	ToggleLike(db *gorm.DB, postID, userID string) (*dto.ToggleLikeResponse, error)
	CreateComment(db *gorm.DB, postID string, req *dto.CreateCommentRequest) error
	ListComments(db *gorm.DB, postID string) ([]dto.CommentDTO, error)
}

type PostServiceImpl struct {
	postRepo  repositories.PostRepository
	mediaRepo repositories.MediaRepository
	userRepo  repositories.UserRepository
	processor *imageprocessor.Processor
}

func NewPostService(
	postRepo repositories.PostRepository,
	mediaRepo repositories.MediaRepository,
	userRepo repositories.UserRepository,
	processor *imageprocessor.Processor,
) PostService {
	return &PostServiceImpl{
		postRepo:  postRepo,
		mediaRepo: mediaRepo,
		userRepo:  userRepo,
		processor: processor,
	}
}

// CreatePost inserts the post and, when an image is attached, the
// recompressed image row. Both writes run in one transaction so a
// failed image insert never leaves a half-created post behind.
func (s *PostServiceImpl) CreatePost(db *gorm.DB, req *dto.CreatePostRequest) (*dto.CreatePostResponse, error) {
	if _, err := s.userRepo.FindByID(db, req.UserID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	var processed *imageprocessor.Result
	if req.File != nil {
		file, err := req.File.Open()
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		defer file.Close()

		processed, err = s.processor.Recompress(file)
		if err != nil {
			return nil, apperrors.ErrUnsupportedImage
		}
	}

	post := &models.Post{
		UserID:  req.UserID,
		Content: req.Content,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := s.postRepo.Create(tx, post); err != nil {
			return err
		}
		if processed != nil {
			img := &models.PostImage{
				PostID:   post.ID,
				Data:     processed.Data,
				MimeType: processed.MimeType,
				Size:     int64(len(processed.Data)),
			}
			if err := s.mediaRepo.CreatePostImage(tx, img); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.CreatePostResponse{PostID: post.ID}, nil
}

// ListPosts returns one newest-first page annotated with like counts,
// the viewer's liked flags, image ids and author profile pictures. All
// side-table lookups are batched by the page's ids only.
func (s *PostServiceImpl) ListPosts(db *gorm.DB, q *dto.FeedQuery) ([]dto.PostDTO, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultFeedLimit
	}

	posts, err := s.postRepo.ListPage(db, q.Offset, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(posts) == 0 {
		return []dto.PostDTO{}, nil
	}

	postIDs := make([]string, 0, len(posts))
	userIDs := make([]string, 0, len(posts))
	seenUsers := make(map[string]bool)
	for _, p := range posts {
		postIDs = append(postIDs, p.ID)
		if !seenUsers[p.UserID] {
			seenUsers[p.UserID] = true
			userIDs = append(userIDs, p.UserID)
		}
	}

	likeCounts, err := s.postRepo.CountLikesByPostIDs(db, postIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	likedByViewer, err := s.postRepo.FindLikedPostIDs(db, q.UserID, postIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	imageIDs, err := s.postRepo.FindImageIDsByPostIDs(db, postIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	profilePics, err := s.mediaRepo.FindProfilePictureIDsByUserIDs(db, userIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	names, err := s.userRepo.FindNamesByIDs(db, userIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.PostDTO, 0, len(posts))
	for _, p := range posts {
		entry := dto.PostDTO{
			PostID:    p.ID,
			UserID:    p.UserID,
			Content:   p.Content,
			CreatedAt: p.CreatedAt,
			LikeCount: likeCounts[p.ID],
			Liked:     likedByViewer[p.ID],
			ImageIDs:  imageIDs[p.ID],
			UserName:  names[p.UserID],
		}
		if entry.ImageIDs == nil {
			entry.ImageIDs = []string{}
		}
		if picID, ok := profilePics[p.UserID]; ok {
			entry.ProfilePictureID = &picID
		}
		result = append(result, entry)
	}

	return result, nil
}

// ToggleLike flips the like relationship atomically: delete the pair,
// and if nothing was deleted, insert it. The whole flip runs in one
// transaction and the composite unique index backs the race.
func (s *PostServiceImpl) ToggleLike(db *gorm.DB, postID, userID string) (*dto.ToggleLikeResponse, error) {
	if _, err := s.postRepo.FindByID(db, postID); err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	var liked bool
	err := db.Transaction(func(tx *gorm.DB) error {
		deleted, err := s.postRepo.DeleteLike(tx, postID, userID)
		if err != nil {
			return err
		}
		if deleted > 0 {
			liked = false
			return nil
		}

		liked = true
		return s.postRepo.CreateLike(tx, &models.Like{PostID: postID, UserID: userID})
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ToggleLikeResponse{Liked: liked}, nil
}

// CreateComment appends a comment; blank content is rejected before it
// reaches the store.
func (s *PostServiceImpl) CreateComment(db *gorm.DB, postID string, req *dto.CreateCommentRequest) error {
	if strings.TrimSpace(req.Content) == "" {
		return apperrors.ErrEmptyComment
	}

	if _, err := s.postRepo.FindByID(db, postID); err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return apperrors.ErrPostNotFound
		}
		return apperrors.InternalError(err)
	}

	comment := &models.Comment{
		PostID:  postID,
		UserID:  req.UserID,
		Content: req.Content,
	}

	if err := s.postRepo.CreateComment(db, comment); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ListComments returns a post's comments oldest-first, each enriched
// with the author's display name and profile picture id.
func (s *PostServiceImpl) ListComments(db *gorm.DB, postID string) ([]dto.CommentDTO, error) {
	rows, err := s.postRepo.ListCommentsWithAuthors(db, postID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	userIDs := make([]string, 0, len(rows))
	seenUsers := make(map[string]bool)
	for _, row := range rows {
		if !seenUsers[row.UserID] {
			seenUsers[row.UserID] = true
			userIDs = append(userIDs, row.UserID)
		}
	}

	profilePics, err := s.mediaRepo.FindProfilePictureIDsByUserIDs(db, userIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.CommentDTO, 0, len(rows))
	for _, row := range rows {
		name := row.FirstName
		if row.LastName != "" {
			if name != "" {
				name += " "
			}
			name += row.LastName
		}

		entry := dto.CommentDTO{
			CommentID: row.ID,
			PostID:    row.PostID,
			UserID:    row.UserID,
			Content:   row.Content,
			CreatedAt: row.CreatedAt,
			UserName:  name,
		}
		if picID, ok := profilePics[row.UserID]; ok {
			entry.ProfilePictureID = &picID
		}
		result = append(result, entry)
	}

	return result, nil
}
