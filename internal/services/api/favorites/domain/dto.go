// Package domain holds DTOs for saved sales
package domain

import "time"

// Favorite is a saved sale reference with a projection of the sale
// itself, enough for a saved-sales screen without a second fetch
type Favorite struct {
	SaleID    string    `json:"saleId"`
	Title     string    `json:"title"`
	City      string    `json:"city,omitempty"`
	State     string    `json:"state,omitempty"`
	DateStart string    `json:"dateStart"`
	Status    string    `json:"status"`
	SavedAt   time.Time `json:"savedAt"`
}
