package models

import "gorm.io/gorm"

// Product represents a product in the store catalog.
type Product struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	Name          string  `json:"name" validate:"required,min=3,max=100"`
	Description   string  `json:"description" validate:"omitempty,max=500"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	ImageURL      string  `json:"image_url" validate:"omitempty,url"`
	StockQuantity int     `json:"stock_quantity" gorm:"not null;default:0" validate:"gte=0"`
	gorm.Model            // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
