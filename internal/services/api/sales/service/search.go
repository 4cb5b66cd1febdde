package service

import (
	"context"
	"math"
	"sort"
	"time"

	"yardsale/internal/core/cursor"
	"yardsale/internal/core/datewindow"
	"yardsale/internal/core/geo"
	perr "yardsale/internal/platform/errors"
	"yardsale/internal/platform/logger"
	"yardsale/internal/services/api/sales/domain"
	"yardsale/internal/services/api/sales/repo"
)

// radiusSlackMeters absorbs float drift between the database's distance
// and ours so rows sitting exactly on the rim are not dropped
const radiusSlackMeters = 1.0

// Search runs the radius search pipeline: resolve the date window, try
// the spatial procedure, fall back to a bounding-box scan when it is
// unavailable, then filter, sort, and page the merged shape the same
// way regardless of which path produced the rows.
func (s *Svc) Search(ctx context.Context, in domain.SearchInput) (domain.SearchResp, error) {
	started := time.Now()

	if err := validateLocation(in.Lat, in.Lng); err != nil {
		return domain.SearchResp{}, err
	}
	if len(in.Query) > domain.MaxQueryLen {
		return domain.SearchResp{}, perr.New(perr.ErrorCodeValidation, "search text too long")
	}

	// absent parameters take the default; a value the caller actually
	// sent, zero included, is clamped into range instead
	radiusKm := domain.DefaultRadiusKm
	if in.DistanceKm != nil {
		radiusKm = clampFloat(*in.DistanceKm, domain.MinRadiusKm, domain.MaxRadiusKm)
	}
	limit := domain.DefaultLimit
	if in.Limit != nil {
		limit = clampInt(*in.Limit, domain.MinLimit, domain.MaxLimit)
	}
	cats := in.Categories
	if len(cats) > domain.MaxCategories {
		cats = cats[:domain.MaxCategories]
	}

	window, err := datewindow.Resolve(in.DateRange, in.StartDate, in.EndDate, s.now())
	if err != nil {
		return domain.SearchResp{}, perr.Wrap(err, perr.ErrorCodeValidation, "invalid date range")
	}

	center := geo.Point{Lat: in.Lat, Lng: in.Lng}
	fetch := limit + overfetch

	rows, degraded, err := s.fetch(ctx, center, radiusKm, cats, in.Query, window, fetch)
	if err != nil {
		return domain.SearchResp{}, err
	}

	results := s.shape(rows, center, radiusKm, window, degraded)

	// cursor slice: a bad token means "first page", never an error
	if in.Cursor != "" {
		if resume, derr := cursor.Decode(in.Cursor); derr == nil {
			results = sliceAfter(results, resume)
		} else {
			logger.C(ctx).Debug().Msg("ignoring undecodable search cursor")
		}
	}

	next := ""
	if len(results) >= limit {
		next = cursor.Encode(sortKey(results[limit-1]))
	}
	if len(results) > limit {
		results = results[:limit]
	}

	return domain.SearchResp{
		OK:         true,
		Data:       results,
		Center:     domain.Center{Lat: in.Lat, Lng: in.Lng},
		DistanceKm: radiusKm,
		Count:      len(results),
		NextCursor: next,
		DurationMs: time.Since(started).Milliseconds(),
		Degraded:   degraded,
		DateWindow: window,
	}, nil
}

// fetch tries the spatial procedure and falls back to the bounding-box
// scan. Only the primary path's failure is absorbed; a fallback failure
// is a real persistence error.
func (s *Svc) fetch(
	ctx context.Context,
	center geo.Point,
	radiusKm float64,
	cats []string,
	q string,
	window *datewindow.Window,
	fetch int,
) ([]repo.RowSale, bool, error) {
	primary := repo.WithinDistanceQuery{
		Lat:          center.Lat,
		Lng:          center.Lng,
		RadiusMeters: radiusKm * 1000,
		Categories:   cats,
		Query:        q,
		Limit:        fetch,
	}
	if window != nil {
		// coarse database-side prefilter; precise overlap runs later
		primary.DateStart = window.Start.Format("2006-01-02")
		primary.DateEnd = window.End.Format("2006-01-02")
	}

	pctx, cancel := context.WithTimeout(ctx, s.primaryTimeout)
	rows, rpcErr := s.Repo.WithinDistance(pctx, primary)
	cancel()
	if rpcErr == nil {
		return rows, false, nil
	}

	logger.C(ctx).Warn().
		Err(rpcErr).
		Float64("radius_km", radiusKm).
		Msg("spatial search unavailable, serving bounding box fallback")

	box := geo.BoundingBox(center, radiusKm)
	bq := repo.BoundingBoxQuery{
		MinLat:     box.MinLat,
		MaxLat:     box.MaxLat,
		MinLng:     box.MinLng,
		MaxLng:     box.MaxLng,
		Categories: cats,
		Query:      q,
		Limit:      fetch,
	}
	rows, err := s.Repo.BoundingBox(ctx, bq)
	if err == nil && len(rows) == 0 {
		// one widen retry without the status filter; geometry is unchanged
		bq.Relaxed = true
		rows, err = s.Repo.BoundingBox(ctx, bq)
	}
	if err != nil {
		return nil, true, perr.Wrap(err, perr.ErrorCodeDB, "sale search failed")
	}
	return rows, true, nil
}

// shape normalizes raw rows from either path, enforces the radius on
// the computed distance, applies the precise date filter, and sorts by
// the total (distance, startsAt, id) order
func (s *Svc) shape(
	rows []repo.RowSale,
	center geo.Point,
	radiusKm float64,
	window *datewindow.Window,
	degraded bool,
) []domain.SaleResult {
	radiusMeters := radiusKm * 1000
	caser := newTitleCaser()

	results := make([]domain.SaleResult, 0, len(rows))
	for _, raw := range rows {
		res, ok := normalize(raw, center, degraded, caser)
		if !ok {
			continue
		}
		// the bounding box is a superset of the circle, so rows past the
		// rim must be discarded here, after the true distance is known
		if res.DistanceMeters > radiusMeters+radiusSlackMeters {
			continue
		}
		if !datewindow.Overlaps(res.StartsAt, res.EndsAt, window) {
			continue
		}
		results = append(results, res)
	}

	sort.Slice(results, func(i, j int) bool {
		return sortKey(results[i]).Less(sortKey(results[j]))
	})
	return results
}

// sliceAfter drops every row at or before the resume key
func sliceAfter(results []domain.SaleResult, resume cursor.Key) []domain.SaleResult {
	idx := sort.Search(len(results), func(i int) bool {
		return sortKey(results[i]).After(resume)
	})
	return results[idx:]
}

func sortKey(r domain.SaleResult) cursor.Key {
	return cursor.Key{DistanceMeters: r.DistanceMeters, StartsAt: r.StartsAt, ID: r.ID}
}

func validateLocation(lat, lng float64) error {
	switch {
	case math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0):
		return perr.New(perr.ErrorCodeValidation, "invalid location")
	case lat < -90 || lat > 90 || lng < -180 || lng > 180:
		return perr.New(perr.ErrorCodeValidation, "invalid location")
	}
	return nil
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
