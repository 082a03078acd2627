package adapters

import (
	"time"

	"admin_backend/internal/feature/products/domain/entity"
)

// ProductModel is the GORM model for the products table.
type ProductModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:255;not null;uniqueIndex:idx_products_name_owner"`
	Owner     string    `gorm:"size:255;not null;uniqueIndex:idx_products_name_owner"`
	Category  string    `gorm:"size:64;not null;index"`
	Count     int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ToEntity converts the GORM model to a domain entity.
func (m *ProductModel) ToEntity() entity.Product {
	return entity.Product{
		ID:        m.ID,
		Name:      m.Name,
		Owner:     m.Owner,
		Category:  m.Category,
		Count:     m.Count,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ProductModelFromEntity converts a domain entity to a GORM model.
func ProductModelFromEntity(p *entity.Product) *ProductModel {
	return &ProductModel{
		ID:        p.ID,
		Name:      p.Name,
		Owner:     p.Owner,
		Category:  p.Category,
		Count:     p.Count,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
