// Package service contains the sale search workflow: the precise
// spatial path, the degraded bounding-box fallback, and the shared
// filter/sort/page pipeline both paths feed into.
package service

import (
	"time"

	"yardsale/internal/modkit/repokit"
	"yardsale/internal/services/api/sales/domain"
	"yardsale/internal/services/api/sales/repo"
)

// overfetch pads every page read so rows rejected by the precise date
// filter or skipped by the cursor still leave a full page behind
const overfetch = 50

// defaultPrimaryTimeout bounds the spatial procedure call so a slow
// PostGIS query degrades instead of hanging the request
const defaultPrimaryTimeout = 5 * time.Second

// Service defines the service contract for sale search
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	// seams for tests
	now            func() time.Time
	primaryTimeout time.Duration
}

// Option mutates Svc during New
type Option func(*Svc)

// WithNow overrides the clock, used by tests to pin date windows
func WithNow(now func() time.Time) Option {
	return func(s *Svc) { s.now = now }
}

// WithPrimaryTimeout overrides the spatial path timeout
func WithPrimaryTimeout(d time.Duration) Option {
	return func(s *Svc) { s.primaryTimeout = d }
}

// New creates a new sale search service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opts ...Option) *Svc {
	if db == nil {
		panic("sales.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("sales.Service requires a non nil Repo binder")
	}
	s := &Svc{
		Repo:           binder.Bind(db),
		binder:         binder,
		db:             db,
		now:            time.Now,
		primaryTimeout: defaultPrimaryTimeout,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}
