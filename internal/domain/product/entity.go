// internal/domain/product/entity.go
package product

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Product represents a catalog item
type Product struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	SKU         string         `gorm:"uniqueIndex;not null;size:100" json:"sku"`
	Name        string         `gorm:"not null;size:255" json:"name"`
	Slug        string         `gorm:"uniqueIndex;not null;size:255" json:"slug"`
	Description string         `gorm:"type:text" json:"description"`
	Price       int64          `gorm:"not null" json:"price"` // Price in minor currency units
	Image       string         `gorm:"size:500" json:"image"`
	Category    string         `gorm:"not null;size:100;index" json:"category"`
	Colors      string         `gorm:"size:255" json:"colors"` // Comma-separated variant colors
	Sizes       string         `gorm:"size:255" json:"sizes"`  // Comma-separated variant sizes
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides the table name
func (Product) TableName() string {
	return "products"
}

// ColorOptions returns the variant colors as a slice
func (p *Product) ColorOptions() []string {
	return splitOptions(p.Colors)
}

// SizeOptions returns the variant sizes as a slice
func (p *Product) SizeOptions() []string {
	return splitOptions(p.Sizes)
}

// GetFormattedPrice returns the price as a float in major units
func (p *Product) GetFormattedPrice() float64 {
	return float64(p.Price) / 100
}

func splitOptions(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	options := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			options = append(options, trimmed)
		}
	}
	return options
}
