package handlers

import (
	"net/http"

	"skinfeed_backend/internal/services"
	"skinfeed_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	*BaseHandler
	mediaService services.MediaService
}

func NewMediaHandler(base *BaseHandler, mediaService services.MediaService) *MediaHandler {
	return &MediaHandler{
		BaseHandler:  base,
		mediaService: mediaService,
	}
}

func (h *MediaHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/posts/:postId/upload-images", h.UploadPostImage)
	rg.GET("/post-image/:id", h.GetPostImage)
	rg.GET("/profile-picture/:id", h.GetProfilePicture)
}

// RegisterAuthRoutes covers the routes that need a logged-in user.
func (h *MediaHandler) RegisterAuthRoutes(rg *gin.RouterGroup) {
	rg.PUT("/profile-picture", h.SetProfilePicture)
}

func (h *MediaHandler) UploadPostImage(c *gin.Context) {
	postID := c.Param("postId")

	file, err := c.FormFile("file")
	if err != nil {
		h.HandleServiceError(c, apperrors.ErrFileRequired)
		return
	}

	db := h.GetDB(c)

	resp, err := h.mediaService.UploadPostImage(db, postID, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *MediaHandler) GetPostImage(c *gin.Context) {
	db := h.GetDB(c)

	img, err := h.mediaService.GetPostImage(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Data(http.StatusOK, img.MimeType, img.Data)
}

func (h *MediaHandler) SetProfilePicture(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		h.HandleServiceError(c, apperrors.ErrFileRequired)
		return
	}

	db := h.GetDB(c)

	resp, err := h.mediaService.SetProfilePicture(db, userID, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *MediaHandler) GetProfilePicture(c *gin.Context) {
	db := h.GetDB(c)

	pic, err := h.mediaService.GetProfilePicture(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Data(http.StatusOK, pic.MimeType, pic.Data)
}
