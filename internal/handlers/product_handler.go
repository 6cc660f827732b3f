package handlers

import (
	"net/http"

	"skinfeed_backend/internal/services"
	"skinfeed_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	*BaseHandler
	productService services.ProductService
}

func NewProductHandler(base *BaseHandler, productService services.ProductService) *ProductHandler {
	return &ProductHandler{
		BaseHandler:    base,
		productService: productService,
	}
}

func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products/matching", h.MatchProducts)
}

func (h *ProductHandler) MatchProducts(c *gin.Context) {
	var q dto.MatchProductsQuery
	if !h.BindAndValidate_Query(c, &q) {
		return
	}

	db := h.GetDB(c)

	products, err := h.productService.MatchProducts(db, &q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}
