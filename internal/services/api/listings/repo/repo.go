// Package repo provides postgres access for listings
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"yardsale/internal/modkit/repokit"
	perr "yardsale/internal/platform/errors"
)

// RowListing is a sale row in its stored shape. The same table feeds
// the search module; dates and times stay as separate text columns.
type RowListing struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	Address     string
	City        string
	State       string
	ZipCode     string
	Lat         float64
	Lng         float64
	Tags        []string
	DateStart   string
	TimeStart   string
	DateEnd     string
	TimeEnd     string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Repo defines the repository contract for listings
type Repo interface {
	Insert(ctx context.Context, row RowListing) error
	Update(ctx context.Context, row RowListing) error
	Get(ctx context.Context, id string) (RowListing, error)
	Delete(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id, status string, at time.Time) error
	ListByOwner(ctx context.Context, ownerID string, limit int) ([]RowListing, error)
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

const listingColumns = `
id::text, owner_id::text, title, coalesce(description,''),
coalesce(address,''), coalesce(city,''), coalesce(state,''), coalesce(zip_code,''),
lat, lng, coalesce(tags,'{}'),
date_start::text, coalesce(time_start::text,''),
coalesce(date_end::text,''), coalesce(time_end::text,''),
status::text, created_at, updated_at
`

func (r *queries) Insert(ctx context.Context, row RowListing) error {
	const sql = `
insert into sales (
id, owner_id, title, description, address, city, state, zip_code,
lat, lng, tags,
date_start, time_start, date_end, time_end,
status, created_at, updated_at
) values (
$1, $2, $3, nullif($4,''), nullif($5,''), nullif($6,''), nullif($7,''), nullif($8,''),
$9, $10, $11,
$12::date, nullif($13,'')::time, nullif($14,'')::date, nullif($15,'')::time,
$16, $17, $18
)
`
	_, err := r.q.Exec(ctx, sql,
		row.ID, row.OwnerID, row.Title, row.Description, row.Address,
		row.City, row.State, row.ZipCode,
		row.Lat, row.Lng, tagsArray(row.Tags),
		row.DateStart, row.TimeStart, row.DateEnd, row.TimeEnd,
		row.Status, row.CreatedAt, row.UpdatedAt,
	)
	return perr.FromPostgresWithField(err, "insert listing")
}

func (r *queries) Update(ctx context.Context, row RowListing) error {
	const sql = `
update sales set
title = $2, description = nullif($3,''), address = nullif($4,''),
city = nullif($5,''), state = nullif($6,''), zip_code = nullif($7,''),
lat = $8, lng = $9, tags = $10,
date_start = $11::date, time_start = nullif($12,'')::time,
date_end = nullif($13,'')::date, time_end = nullif($14,'')::time,
updated_at = $15
where id = $1
`
	tag, err := r.q.Exec(ctx, sql,
		row.ID, row.Title, row.Description, row.Address,
		row.City, row.State, row.ZipCode,
		row.Lat, row.Lng, tagsArray(row.Tags),
		row.DateStart, row.TimeStart, row.DateEnd, row.TimeEnd,
		row.UpdatedAt,
	)
	if err != nil {
		return perr.FromPostgresWithField(err, "update listing")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("listing %s not found", row.ID)
	}
	return nil
}

func (r *queries) Get(ctx context.Context, id string) (RowListing, error) {
	sql := `select ` + listingColumns + ` from sales where id = $1`

	var row RowListing
	err := r.q.QueryRow(ctx, sql, id).Scan(
		&row.ID, &row.OwnerID, &row.Title, &row.Description,
		&row.Address, &row.City, &row.State, &row.ZipCode,
		&row.Lat, &row.Lng, &row.Tags,
		&row.DateStart, &row.TimeStart, &row.DateEnd, &row.TimeEnd,
		&row.Status, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return RowListing{}, perr.NotFoundf("listing %s not found", id)
		}
		return RowListing{}, perr.FromPostgres(err, "get listing")
	}
	return row, nil
}

func (r *queries) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `delete from sales where id = $1`, id)
	if err != nil {
		return perr.FromPostgres(err, "delete listing")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("listing %s not found", id)
	}
	return nil
}

func (r *queries) SetStatus(ctx context.Context, id, status string, at time.Time) error {
	tag, err := r.q.Exec(ctx,
		`update sales set status = $2, updated_at = $3 where id = $1`,
		id, status, at,
	)
	if err != nil {
		return perr.FromPostgres(err, "set listing status")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("listing %s not found", id)
	}
	return nil
}

func (r *queries) ListByOwner(ctx context.Context, ownerID string, limit int) ([]RowListing, error) {
	sql := `select ` + listingColumns + `
from sales
where owner_id = $1
order by updated_at desc, id
limit $2`

	rows, err := r.q.Query(ctx, sql, ownerID, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "list listings")
	}
	defer rows.Close()

	var out []RowListing
	for rows.Next() {
		var row RowListing
		if err := rows.Scan(
			&row.ID, &row.OwnerID, &row.Title, &row.Description,
			&row.Address, &row.City, &row.State, &row.ZipCode,
			&row.Lat, &row.Lng, &row.Tags,
			&row.DateStart, &row.TimeStart, &row.DateEnd, &row.TimeEnd,
			&row.Status, &row.CreatedAt, &row.UpdatedAt,
		); err != nil {
			return nil, perr.FromPostgres(err, "scan listing")
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// tagsArray keeps empty tag sets as an empty postgres array, never null
func tagsArray(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
