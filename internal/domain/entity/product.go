package entity

import "time"

// Product is a catalog item. Names are unique across the catalog and the
// suggested price must be strictly positive.
type Product struct {
	ID             int64
	Name           string
	CategoryID     int64
	SuggestedPrice float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
