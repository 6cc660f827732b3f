package handlers

import (
	"net/http"

	"skinfeed_backend/internal/services"
	"skinfeed_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	*BaseHandler
	postService services.PostService
}

func NewPostHandler(base *BaseHandler, postService services.PostService) *PostHandler {
	return &PostHandler{
		BaseHandler: base,
		postService: postService,
	}
}

func (h *PostHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/add-posts", h.CreatePost)
	rg.GET("/posts", h.ListPosts)
	rg.POST("/posts/:postId/like", h.ToggleLike)
	rg.POST("/posts/:postId/comment", h.CreateComment)
	rg.GET("/posts/:postId/comments", h.ListComments)
}

// CreatePost accepts a multipart form so the post text and an optional
// first image land in a single request.
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	// File is optional; a bare text post is fine.
	if file, err := c.FormFile("file"); err == nil {
		req.File = file
	}

	db := h.GetDB(c)

	resp, err := h.postService.CreatePost(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *PostHandler) ListPosts(c *gin.Context) {
	var q dto.FeedQuery
	if !h.BindAndValidate_Query(c, &q) {
		return
	}

	db := h.GetDB(c)

	posts, err := h.postService.ListPosts(db, &q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) ToggleLike(c *gin.Context) {
	postID := c.Param("postId")

	var req dto.ToggleLikeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	resp, err := h.postService.ToggleLike(db, postID, req.UserID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PostHandler) CreateComment(c *gin.Context) {
	postID := c.Param("postId")

	var req dto.CreateCommentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.postService.CreateComment(db, postID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Comment added",
	})
}

func (h *PostHandler) ListComments(c *gin.Context) {
	postID := c.Param("postId")

	db := h.GetDB(c)

	comments, err := h.postService.ListComments(db, postID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}
