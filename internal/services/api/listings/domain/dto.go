// Package domain holds DTOs for the listing posting flow
package domain

import "time"

// Status is the listing lifecycle state
type Status string

// Lifecycle states. auto_hidden is set by moderation sweeps, not by the
// owner; it publishes back through the same transition as hidden.
const (
	StatusDraft      Status = "draft"
	StatusPublished  Status = "published"
	StatusHidden     Status = "hidden"
	StatusAutoHidden Status = "auto_hidden"
)

// Valid reports whether s is a known lifecycle state
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusHidden, StatusAutoHidden:
		return true
	}
	return false
}

// Listing is a sale record as owned and edited by its poster
type Listing struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	State       string    `json:"state,omitempty"`
	ZipCode     string    `json:"zipCode,omitempty"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Tags        []string  `json:"tags,omitempty"`
	DateStart   string    `json:"dateStart"`
	TimeStart   string    `json:"timeStart,omitempty"`
	DateEnd     string    `json:"dateEnd,omitempty"`
	TimeEnd     string    `json:"timeEnd,omitempty"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// CreateListingInput is the payload for posting a new sale. Location is
// pointer-typed so presence can be told apart from the zero coordinate.
type CreateListingInput struct {
	Title       string   `json:"title"       validate:"required,min=3,max=120"`
	Description string   `json:"description" validate:"omitempty,max=2000"`
	Address     string   `json:"address"     validate:"omitempty,max=160"`
	City        string   `json:"city"        validate:"omitempty,max=80"`
	State       string   `json:"state"       validate:"omitempty,max=40"`
	ZipCode     string   `json:"zipCode"     validate:"omitempty,max=10"`
	Lat         *float64 `json:"lat"         validate:"required,latitude"`
	Lng         *float64 `json:"lng"         validate:"required,longitude"`
	Tags        []string `json:"tags"        validate:"omitempty,max=10,dive,min=1,max=32"`
	DateStart   string   `json:"dateStart"   validate:"required,datetime=2006-01-02"`
	TimeStart   string   `json:"timeStart"   validate:"omitempty,datetime=15:04:05"`
	DateEnd     string   `json:"dateEnd"     validate:"omitempty,datetime=2006-01-02"`
	TimeEnd     string   `json:"timeEnd"     validate:"omitempty,datetime=15:04:05"`
}

// UpdateListingInput carries partial edits; nil fields are untouched
type UpdateListingInput struct {
	Title       *string   `json:"title"       validate:"omitempty,min=3,max=120"`
	Description *string   `json:"description" validate:"omitempty,max=2000"`
	Address     *string   `json:"address"     validate:"omitempty,max=160"`
	City        *string   `json:"city"        validate:"omitempty,max=80"`
	State       *string   `json:"state"       validate:"omitempty,max=40"`
	ZipCode     *string   `json:"zipCode"     validate:"omitempty,max=10"`
	Lat         *float64  `json:"lat"         validate:"omitempty,latitude"`
	Lng         *float64  `json:"lng"         validate:"omitempty,longitude"`
	Tags        *[]string `json:"tags"        validate:"omitempty,max=10,dive,min=1,max=32"`
	DateStart   *string   `json:"dateStart"   validate:"omitempty,datetime=2006-01-02"`
	TimeStart   *string   `json:"timeStart"   validate:"omitempty,datetime=15:04:05"`
	DateEnd     *string   `json:"dateEnd"     validate:"omitempty,datetime=2006-01-02"`
	TimeEnd     *string   `json:"timeEnd"     validate:"omitempty,datetime=15:04:05"`
}

// ListMineInput bounds the owner listing page
type ListMineInput struct {
	Limit int `json:"limit" validate:"omitempty,min=1,max=100"`
}
