package dto

import (
	"mime/multipart"
	"time"
)

// CreatePostRequest binds from a multipart form so a post and its image
// can arrive in one request. File is picked off the form by the handler.
type CreatePostRequest struct {
	UserID  string                `form:"userId" binding:"required"`
	Content string                `form:"content" binding:"required"`
	File    *multipart.FileHeader `form:"-"`
}

type CreatePostResponse struct {
	PostID string `json:"postId"`
}

// FeedQuery are the pagination and viewer parameters of GET /api/posts.
type FeedQuery struct {
	Offset int    `form:"offset" binding:"omitempty,gte=0"`
	Limit  int    `form:"limit" binding:"omitempty,gte=1,lte=100"`
	UserID string `form:"userId"` // viewer, drives the liked flag
}

// PostDTO is one feed entry: the post plus its per-viewer annotations.
type PostDTO struct {
	PostID           string    `json:"postId"`
	UserID           string    `json:"userId"`
	Content          string    `json:"content"`
	CreatedAt        time.Time `json:"createdAt"`
	LikeCount        int64     `json:"likeCount"`
	Liked            bool      `json:"liked"`
	ImageIDs         []string  `json:"imageIds"`
	UserName         string    `json:"userName"`
	ProfilePictureID *string   `json:"profilePictureId"`
}

type ToggleLikeRequest struct {
	UserID string `json:"userId" binding:"required"`
}

type ToggleLikeResponse struct {
	Liked bool `json:"liked"`
}

type CreateCommentRequest struct {
	UserID  string `json:"userId" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// CommentDTO is a comment enriched with its author's name and avatar.
type CommentDTO struct {
	CommentID        string    `json:"commentId"`
	PostID           string    `json:"postId"`
	UserID           string    `json:"userId"`
	Content          string    `json:"content"`
	CreatedAt        time.Time `json:"createdAt"`
	UserName         string    `json:"userName"`
	ProfilePictureID *string   `json:"profilePictureId"`
}
