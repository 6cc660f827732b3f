package handlers

import (
	"net/http"

	"skinfeed_backend/internal/services"
	"skinfeed_backend/internal/services/dto"
	"skinfeed_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AnalysisHandler struct {
	*BaseHandler
	analysisService services.AnalysisService
}

func NewAnalysisHandler(base *BaseHandler, analysisService services.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		BaseHandler:     base,
		analysisService: analysisService,
	}
}

func (h *AnalysisHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/save-skin-analysis", h.SaveScores)
	rg.GET("/skin-analysis/latest/:userId", h.GetLatestScores)
	rg.POST("/analyze-image", h.AnalyzeImage)
}

func (h *AnalysisHandler) SaveScores(c *gin.Context) {
	var req dto.SaveScoresRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.analysisService.SaveScores(db, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Analysis scores saved",
	})
}

func (h *AnalysisHandler) GetLatestScores(c *gin.Context) {
	db := h.GetDB(c)

	resp, err := h.analysisService.GetLatestScores(db, c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AnalyzeImage forwards the uploaded photo to the analysis service and
// relays its JSON verbatim; no scores are stored here.
func (h *AnalysisHandler) AnalyzeImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		h.HandleServiceError(c, apperrors.ErrFileRequired)
		return
	}

	body, err := h.analysisService.AnalyzeImage(c.Request.Context(), file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}
