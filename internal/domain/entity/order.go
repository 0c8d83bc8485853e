package entity

import "time"

// Order links a buyer and a seller with shipping metadata. Order lines live
// in OrderProduct rows.
type Order struct {
	ID                   int64
	UserID               int64 // Buyer.
	SellerID             int64
	DeliveryAddressID    int64
	DeliveryForecast     time.Time
	ShippingCompany      string
	ShippingCompanyPrice float64
	CreatedAt            time.Time
}

// OrderProduct is a single order line. The presence of a line referencing a
// product is what blocks that product's deletion.
type OrderProduct struct {
	ID        int64
	OrderID   int64
	ProductID int64
	UnitPrice float64
	Amount    int
}
