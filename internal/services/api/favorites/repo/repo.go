// Package repo provides postgres access for saved sales
package repo

import (
	"context"
	"time"

	"yardsale/internal/modkit/repokit"
	perr "yardsale/internal/platform/errors"
)

// RowFavorite is a saved sale joined to its listing projection
type RowFavorite struct {
	SaleID    string
	Title     string
	City      string
	State     string
	DateStart string
	Status    string
	SavedAt   time.Time
}

// Repo defines the repository contract for saved sales
type Repo interface {
	Save(ctx context.Context, userID, saleID string, at time.Time) error
	Unsave(ctx context.Context, userID, saleID string) error
	ListByUser(ctx context.Context, userID string, limit int) ([]RowFavorite, error)
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

func (r *queries) Save(ctx context.Context, userID, saleID string, at time.Time) error {
	// saving twice is a no-op; the fk rejects unknown sales
	const sql = `
insert into favorites (user_id, sale_id, created_at)
values ($1, $2, $3)
on conflict (user_id, sale_id) do nothing
`
	_, err := r.q.Exec(ctx, sql, userID, saleID, at)
	if err != nil {
		if perr.IsForeignKeyViolation(err) {
			return perr.NotFoundf("sale %s not found", saleID)
		}
		return perr.FromPostgres(err, "save favorite")
	}
	return nil
}

func (r *queries) Unsave(ctx context.Context, userID, saleID string) error {
	tag, err := r.q.Exec(ctx,
		`delete from favorites where user_id = $1 and sale_id = $2`,
		userID, saleID,
	)
	if err != nil {
		return perr.FromPostgres(err, "unsave favorite")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("sale %s is not saved", saleID)
	}
	return nil
}

func (r *queries) ListByUser(ctx context.Context, userID string, limit int) ([]RowFavorite, error) {
	const sql = `
select s.id::text, s.title, coalesce(s.city,''), coalesce(s.state,''),
s.date_start::text, s.status::text, f.created_at
from favorites f
join sales s on s.id = f.sale_id
where f.user_id = $1
order by f.created_at desc, s.id
limit $2
`
	rows, err := r.q.Query(ctx, sql, userID, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "list favorites")
	}
	defer rows.Close()

	var out []RowFavorite
	for rows.Next() {
		var row RowFavorite
		if err := rows.Scan(
			&row.SaleID, &row.Title, &row.City, &row.State,
			&row.DateStart, &row.Status, &row.SavedAt,
		); err != nil {
			return nil, perr.FromPostgres(err, "scan favorite")
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
