// Package repo provides postgres access for sale search
package repo

import (
	"context"
	"strings"

	"yardsale/internal/modkit/repokit"
)

// WithinDistanceQuery asks the PostGIS procedure for published sales
// inside a radius. The date bounds are coarse prefilters; precise
// window filtering happens in the service.
type WithinDistanceQuery struct {
	Lat          float64
	Lng          float64
	RadiusMeters float64
	Categories   []string
	Query        string
	DateStart    string // YYYY-MM-DD, empty for none
	DateEnd      string
	Limit        int
}

// BoundingBoxQuery scans the sales table by attribute range when the
// spatial procedure is unavailable. No date filtering here at all; the
// service owns it. Relaxed drops the application-level status filter
// for the single widen retry on an empty first pass.
type BoundingBoxQuery struct {
	MinLat     float64
	MaxLat     float64
	MinLng     float64
	MaxLng     float64
	Categories []string
	Query      string
	Relaxed    bool
	Limit      int
}

// RowSale is a raw sale row as stored: date and time components are
// kept separate and distance is only populated by the spatial path
type RowSale struct {
	ID             string
	Title          string
	Lat            float64
	Lng            float64
	City           string
	State          string
	ZipCode        string
	DateStart      string
	TimeStart      string
	DateEnd        string
	TimeEnd        string
	Tags           []string
	Status         string
	DistanceMeters float64
}

// Repo defines the repository contract for sale search
type Repo interface {
	WithinDistance(ctx context.Context, q WithinDistanceQuery) ([]RowSale, error)
	BoundingBox(ctx context.Context, q BoundingBoxQuery) ([]RowSale, error)
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) WithinDistance(ctx context.Context, in WithinDistanceQuery) ([]RowSale, error) {
	// categories bind as a real text[] parameter; building an array
	// literal in Go would need quote and backslash escaping
	const sql = `
select id::text, title, lat, lng,
coalesce(city,''), coalesce(state,''), coalesce(zip_code,''),
date_start::text, time_start::text,
coalesce(date_end::text,''), coalesce(time_end::text,''),
coalesce(tags,'{}'), status::text, distance_meters
from search_sales_within_distance(
$1, $2, $3,
nullif($4::text[], '{}'::text[]), nullif($5,''),
nullif($6,'')::date, nullif($7,'')::date,
$8
)
`
	cats := in.Categories
	if cats == nil {
		cats = []string{}
	}
	return r.scanSales(ctx, sql,
		in.Lat, in.Lng, in.RadiusMeters,
		cats, in.Query,
		in.DateStart, in.DateEnd,
		in.Limit,
	)
}

func (r *queries) BoundingBox(ctx context.Context, in BoundingBoxQuery) ([]RowSale, error) {
	const sql = `
select id::text, title, lat, lng,
coalesce(city,''), coalesce(state,''), coalesce(zip_code,''),
date_start::text, time_start::text,
coalesce(date_end::text,''), coalesce(time_end::text,''),
coalesce(tags,'{}'), status::text, 0::float8 as distance_meters
from sales
where lat between $1 and $2
and lng between $3 and $4
and ($5 or status = 'published')
and (cardinality($6::text[]) = 0 or tags && $6::text[])
and ($7 = '' or title ilike '%' || $7 || '%')
order by date_start, time_start, id
limit $8
`
	cats := in.Categories
	if cats == nil {
		cats = []string{}
	}
	return r.scanSales(ctx, sql,
		in.MinLat, in.MaxLat, in.MinLng, in.MaxLng,
		in.Relaxed, cats, escapeLike(in.Query), in.Limit,
	)
}

func (r *queries) scanSales(ctx context.Context, sql string, args ...any) ([]RowSale, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RowSale
	for rows.Next() {
		var rr RowSale
		if err := rows.Scan(
			&rr.ID,
			&rr.Title,
			&rr.Lat,
			&rr.Lng,
			&rr.City,
			&rr.State,
			&rr.ZipCode,
			&rr.DateStart,
			&rr.TimeStart,
			&rr.DateEnd,
			&rr.TimeEnd,
			&rr.Tags,
			&rr.Status,
			&rr.DistanceMeters,
		); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

// escapeLike neutralizes ilike metacharacters so user text matches
// literally; backslash is the default postgres escape character
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
