package service

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"yardsale/internal/core/datewindow"
	"yardsale/internal/core/geo"
	"yardsale/internal/services/api/sales/domain"
	"yardsale/internal/services/api/sales/repo"
)

// date and time component layouts as postgres renders them
const (
	dateLayout     = "2006-01-02"
	timeLayout     = "15:04:05"
	timeLayoutSec0 = "15:04"
)

// normalize converts a raw row from either query path into the single
// result shape. Precise rows carry the database's distance; degraded
// rows get theirs computed here. Rows with unusable schedule data are
// dropped rather than failing the whole page.
func normalize(raw repo.RowSale, center geo.Point, degraded bool, caser *cases.Caser) (domain.SaleResult, bool) {
	startsAt, ok := combine(raw.DateStart, raw.TimeStart)
	if !ok {
		return domain.SaleResult{}, false
	}

	// a missing end time means the sale runs to the end of its last
	// stated day; a missing end date means the end of the start day
	var endsAt time.Time
	switch {
	case raw.DateEnd != "" && raw.TimeEnd != "":
		endsAt, ok = combine(raw.DateEnd, raw.TimeEnd)
		if !ok {
			return domain.SaleResult{}, false
		}
	case raw.DateEnd != "":
		if end, eok := combine(raw.DateEnd, "00:00:00"); eok {
			endsAt = datewindow.EndOfDay(end)
		}
	default:
		endsAt = datewindow.EndOfDay(startsAt)
	}
	if endsAt.Before(startsAt) {
		return domain.SaleResult{}, false
	}

	loc := geo.Point{Lat: raw.Lat, Lng: raw.Lng}
	distance := raw.DistanceMeters
	if degraded {
		distance = geo.HaversineKm(center, loc) * 1000
	}

	return domain.SaleResult{
		ID:             raw.ID,
		Title:          raw.Title,
		Lat:            raw.Lat,
		Lng:            raw.Lng,
		City:           caser.String(raw.City),
		State:          raw.State,
		ZipCode:        raw.ZipCode,
		Tags:           raw.Tags,
		StartsAt:       startsAt,
		EndsAt:         endsAt,
		DistanceMeters: distance,
		Geohash:        geo.Cell(loc),
	}, true
}

// combine merges separate date and time components into one instant.
// Listings store wall-clock times; UTC keeps them comparable.
func combine(date, clock string) (time.Time, bool) {
	if clock == "" {
		clock = "00:00:00"
	}
	layout := dateLayout + " " + timeLayout
	t, err := time.ParseInLocation(layout, date+" "+clock, time.UTC)
	if err != nil {
		t, err = time.ParseInLocation(dateLayout+" "+timeLayoutSec0, date+" "+clock, time.UTC)
	}
	return t, err == nil
}

// newTitleCaser builds a fresh caser per request; Caser carries
// transform state and is not safe to share across goroutines
func newTitleCaser() *cases.Caser {
	c := cases.Title(language.AmericanEnglish, cases.NoLower)
	return &c
}
