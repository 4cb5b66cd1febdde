// Package service contains the saved-sales workflow
package service

import (
	"context"
	"time"

	"yardsale/internal/modkit/repokit"
	perr "yardsale/internal/platform/errors"
	"yardsale/internal/services/api/favorites/domain"
	"yardsale/internal/services/api/favorites/repo"
)

// defaultListLimit bounds the saved-sales page when none is given
const defaultListLimit = 100

// Service defines the service contract for saved sales
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	now func() time.Time
}

// Option mutates Svc during New
type Option func(*Svc)

// WithNow overrides the clock, used by tests
func WithNow(now func() time.Time) Option {
	return func(s *Svc) { s.now = now }
}

// New creates a new favorites service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opts ...Option) *Svc {
	if db == nil {
		panic("favorites.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("favorites.Service requires a non nil Repo binder")
	}
	s := &Svc{
		Repo:   binder.Bind(db),
		binder: binder,
		db:     db,
		now:    time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Save marks a sale as saved for the user. Saving twice is a no-op.
func (s *Svc) Save(ctx context.Context, userID, saleID string) error {
	if saleID == "" {
		return perr.New(perr.ErrorCodeValidation, "sale id is required")
	}
	return s.Repo.Save(ctx, userID, saleID, s.now().UTC())
}

// Unsave removes a saved sale for the user
func (s *Svc) Unsave(ctx context.Context, userID, saleID string) error {
	if saleID == "" {
		return perr.New(perr.ErrorCodeValidation, "sale id is required")
	}
	return s.Repo.Unsave(ctx, userID, saleID)
}

// List returns the user's saved sales, most recently saved first
func (s *Svc) List(ctx context.Context, userID string, limit int) ([]domain.Favorite, error) {
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	rows, err := s.Repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Favorite, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Favorite{
			SaleID:    row.SaleID,
			Title:     row.Title,
			City:      row.City,
			State:     row.State,
			DateStart: row.DateStart,
			Status:    row.Status,
			SavedAt:   row.SavedAt,
		})
	}
	return out, nil
}
