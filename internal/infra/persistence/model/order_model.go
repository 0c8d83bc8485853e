package model

import "time"

// OrderModel mirrors the 'orders' table. UserID is the buyer; SellerID the
// selling account.
type OrderModel struct {
	ID                   int64     `gorm:"primaryKey;autoIncrement"`
	UserID               int64     `gorm:"not null;index"`
	SellerID             int64     `gorm:"not null;index"`
	DeliveryAddressID    int64     `gorm:"not null"`
	DeliveryForecast     time.Time `gorm:"not null"`
	ShippingCompany      string    `gorm:"type:varchar(255)"`
	ShippingCompanyPrice float64   `gorm:"type:decimal(12,2)"`
	CreatedAt            time.Time

	OrderProducts []*OrderProductModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderProductModel mirrors the 'order_products' table. A row referencing a
// product blocks the product's deletion.
type OrderProductModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	OrderID   int64   `gorm:"not null;index"`
	ProductID int64   `gorm:"not null;index"`
	UnitPrice float64 `gorm:"type:decimal(12,2);not null"`
	Amount    int     `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderProductModel) TableName() string {
	return "order_products"
}
