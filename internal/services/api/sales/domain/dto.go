// Package domain holds DTOs for the sales search HTTP and service contracts
package domain

import (
	"time"

	"yardsale/internal/core/datewindow"
)

// Search parameter bounds. Radius and limit are clamped, not rejected;
// the category cap and free-text cap are hard limits.
const (
	MinRadiusKm     = 1.0
	MaxRadiusKm     = 160.0
	DefaultRadiusKm = 40.2336 // ~25 miles

	MinLimit     = 1
	MaxLimit     = 48
	DefaultLimit = 24

	MaxCategories = 10
	MaxQueryLen   = 64
)

// SearchInput is a parsed and type-checked search request. The HTTP
// layer builds it from query parameters; clamping happens in the
// service so every caller gets the same bounds. DistanceKm and Limit
// are nil when the caller omitted them, so an explicit zero clamps to
// the minimum instead of silently taking the default.
type SearchInput struct {
	Lat        float64
	Lng        float64
	DistanceKm *float64
	DateRange  datewindow.Kind
	StartDate  string // required together with EndDate for custom ranges
	EndDate    string
	Categories []string
	Query      string
	Limit      *int
	Cursor     string
}

// Center echoes the search origin back to the caller
type Center struct {
	Lat float64 `json:"lat" example:"38.2527"`
	Lng float64 `json:"lng" example:"-85.7585"`
}

// SaleResult is one search hit: a normalized sale projection plus the
// computed distance and combined start/end instants
type SaleResult struct {
	ID             string    `json:"id"             example:"0d9a4c6e-6f6e-4f6e-9a3b-2f4f1f6f0a11"`
	Title          string    `json:"title"          example:"Multi-family yard sale"`
	Lat            float64   `json:"lat"            example:"38.2601"`
	Lng            float64   `json:"lng"            example:"-85.7510"`
	City           string    `json:"city"           example:"Louisville"`
	State          string    `json:"state"          example:"KY"`
	ZipCode        string    `json:"zipCode,omitempty" example:"40202"`
	Tags           []string  `json:"tags,omitempty" example:"furniture"`
	StartsAt       time.Time `json:"startsAt"`
	EndsAt         time.Time `json:"endsAt"`
	DistanceMeters float64   `json:"distanceMeters" example:"1274.5"`
	Geohash        string    `json:"geohash,omitempty" example:"dpb7r2k"`
}

// SearchResp is the search payload. Degraded and DateWindow are present
// only when meaningful; their absence is part of the contract.
type SearchResp struct {
	OK         bool               `json:"ok"         example:"true"`
	Data       []SaleResult       `json:"data"`
	Center     Center             `json:"center"`
	DistanceKm float64            `json:"distanceKm" example:"25"`
	Count      int                `json:"count"      example:"24"`
	NextCursor string             `json:"nextCursor,omitempty" example:"eyJkIjoxMjc0LjUsInMiOjE3NDk4ODgwMDAwMDAsImlkIjoiLi4uIn0"` //nolint:lll
	DurationMs int64              `json:"durationMs" example:"12"`
	Degraded   bool               `json:"degraded,omitempty" example:"false"`
	DateWindow *datewindow.Window `json:"dateWindow,omitempty"`
}
