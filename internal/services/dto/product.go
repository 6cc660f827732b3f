package dto

import "gorm.io/datatypes"

// MatchProductsQuery: concerns is a comma-separated list of concern
// keywords (acne, bags, redness...).
type MatchProductsQuery struct {
	UserID   string `form:"userId" binding:"required"`
	Concerns string `form:"concerns"`
}

type ProductDTO struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Brand            string         `json:"brand"`
	SuitableSkinType string         `json:"suitableSkinType"`
	Attributes       datatypes.JSON `json:"attributes,omitempty"`
}
