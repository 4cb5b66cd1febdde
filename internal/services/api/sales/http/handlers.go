// Package http provides http transport for sale search
package http

import (
	stdhttp "net/http"

	"yardsale/internal/modkit/httpkit"
	svc "yardsale/internal/services/api/sales/service"
)

// Register mounts sales endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/search", h.search)
}

type handlers struct{ svc svc.Service }

// @Summary Search sales near a location
// @Description Radius search around a coordinate with optional date window,
// @Description category, and free-text filters. Pages are resumed with the
// @Description opaque cursor from the previous response.
// @Tags Sales
// @Produce json
// @Param lat query number true "Latitude of the search center"
// @Param lng query number true "Longitude of the search center"
// @Param distanceKm query number false "Search radius in km, clamped to [1,160]" default(40.2336)
// @Param dateRange query string false "any, today, weekend, next_weekend, or custom" default(any)
// @Param startDate query string false "Custom range start, YYYY-MM-DD"
// @Param endDate query string false "Custom range end (inclusive), YYYY-MM-DD"
// @Param categories query string false "Comma separated tags, max 10"
// @Param q query string false "Free text over titles, max 64 chars"
// @Param limit query int false "Page size, clamped to [1,48]" default(24)
// @Param cursor query string false "Opaque resume token from nextCursor"
// @Success 200 {object} domain.SearchResp "ok"
// @Failure 400 {object} httpkit.Envelope "invalid location or date range"
// @Router /sales/search [get]
func (h *handlers) search(r *stdhttp.Request) (any, error) {
	in, err := parseSearchQuery(r.URL.Query())
	if err != nil {
		return nil, err
	}
	return h.svc.Search(r.Context(), in)
}
