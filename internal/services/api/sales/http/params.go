package http

import (
	"net/url"
	"strconv"
	"strings"

	"yardsale/internal/core/datewindow"
	perr "yardsale/internal/platform/errors"
	"yardsale/internal/services/api/sales/domain"
)

// parseSearchQuery turns raw query parameters into a typed SearchInput.
// Location is the only hard requirement here; range clamping is left to
// the service so programmatic callers get identical bounds.
func parseSearchQuery(v url.Values) (domain.SearchInput, error) {
	lat, err := requiredFloat(v, "lat")
	if err != nil {
		return domain.SearchInput{}, err
	}
	lng, err := requiredFloat(v, "lng")
	if err != nil {
		return domain.SearchInput{}, err
	}

	distanceKm, err := optionalFloat(v, "distanceKm")
	if err != nil {
		return domain.SearchInput{}, err
	}

	var limit *int
	if raw := v.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return domain.SearchInput{}, perr.WithField(
				perr.New(perr.ErrorCodeValidation, "limit must be an integer"), "limit")
		}
		limit = &n
	}

	start, end := v.Get("startDate"), v.Get("endDate")
	if (start == "") != (end == "") {
		return domain.SearchInput{}, perr.New(perr.ErrorCodeValidation,
			"startDate and endDate are required together")
	}

	kind := datewindow.Kind(v.Get("dateRange"))
	if start != "" {
		// explicit bounds always mean a custom window, whatever the
		// dateRange parameter said
		kind = datewindow.KindCustom
	}

	return domain.SearchInput{
		Lat:        lat,
		Lng:        lng,
		DistanceKm: distanceKm,
		DateRange:  kind,
		StartDate:  start,
		EndDate:    end,
		Categories: splitCategories(v.Get("categories")),
		Query:      strings.TrimSpace(v.Get("q")),
		Limit:      limit,
		Cursor:     v.Get("cursor"),
	}, nil
}

func requiredFloat(v url.Values, key string) (float64, error) {
	raw := v.Get(key)
	if raw == "" {
		return 0, perr.WithField(
			perr.New(perr.ErrorCodeValidation, "invalid location"), key)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, perr.WithField(
			perr.New(perr.ErrorCodeValidation, "invalid location"), key)
	}
	return f, nil
}

// optionalFloat returns nil when the parameter is absent so downstream
// clamping can tell "not sent" apart from an explicit zero
func optionalFloat(v url.Values, key string) (*float64, error) {
	raw := v.Get(key)
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, perr.WithField(
			perr.Newf(perr.ErrorCodeValidation, "%s must be a number", key), key)
	}
	return &f, nil
}

// splitCategories splits the CSV, trims whitespace, and drops empties.
// The count cap lives in the service alongside the other bounds.
func splitCategories(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
