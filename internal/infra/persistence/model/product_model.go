package model

import "time"

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID             int64   `gorm:"primaryKey;autoIncrement"`
	Name           string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	CategoryID     int64   `gorm:"not null"`
	SuggestedPrice float64 `gorm:"type:decimal(12,2);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
