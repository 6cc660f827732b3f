package models

import "gorm.io/datatypes"

// Product is read-only from this service's perspective; the catalog is
// maintained elsewhere. SuitableSkinType is free text matched by
// substring and by the concern mapping's IN-list.
type Product struct {
	BaseModel
	Name             string `gorm:"not null"`
	Brand            string
	SuitableSkinType string         `gorm:"type:varchar(100);index"`
	Attributes       datatypes.JSON `gorm:"type:jsonb"` // display attributes (price, imageUrl...)
}
