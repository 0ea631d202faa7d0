// models/service.go
package models

// Service is a bookable diagnostic test or department from the catalog.
// PriceRange is a display string (e.g. "₹999 - ₹1,999") and is never parsed
// as a currency amount.
type Service struct {
	ID         string `bson:"id" json:"id"`
	Name       string `bson:"name" json:"name"`
	Category   string `bson:"category" json:"category"`
	PriceRange string `bson:"price_range" json:"priceRange"`
}
