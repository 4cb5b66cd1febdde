// Package service contains the listing posting workflow: create and
// edit drafts, move them through the publish lifecycle, and enforce
// that only the owner can touch a listing.
package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"yardsale/internal/modkit/repokit"
	perr "yardsale/internal/platform/errors"
	ptime "yardsale/internal/platform/time"
	"yardsale/internal/services/api/listings/domain"
	"yardsale/internal/services/api/listings/repo"
)

// defaultMineLimit bounds the owner listing page when none is given
const defaultMineLimit = 50

// Service defines the service contract for listings
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	now   func() time.Time
	newID func() string
}

// Option mutates Svc during New
type Option func(*Svc)

// WithNow overrides the clock, used by tests
func WithNow(now func() time.Time) Option {
	return func(s *Svc) { s.now = now }
}

// WithIDs overrides id generation, used by tests
func WithIDs(fn func() string) Option {
	return func(s *Svc) { s.newID = fn }
}

// New creates a new listings service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opts ...Option) *Svc {
	if db == nil {
		panic("listings.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("listings.Service requires a non nil Repo binder")
	}
	s := &Svc{
		Repo:   binder.Bind(db),
		binder: binder,
		db:     db,
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Create stores a new draft owned by ownerID
func (s *Svc) Create(ctx context.Context, ownerID string, in domain.CreateListingInput) (domain.Listing, error) {
	if err := checkSchedule(in.DateStart, in.TimeStart, in.DateEnd, in.TimeEnd); err != nil {
		return domain.Listing{}, err
	}

	now := s.now().UTC()
	row := repo.RowListing{
		ID:          s.newID(),
		OwnerID:     ownerID,
		Title:       in.Title,
		Description: in.Description,
		Address:     in.Address,
		City:        in.City,
		State:       in.State,
		ZipCode:     in.ZipCode,
		Lat:         *in.Lat,
		Lng:         *in.Lng,
		Tags:        normalizeTags(in.Tags),
		DateStart:   in.DateStart,
		TimeStart:   in.TimeStart,
		DateEnd:     in.DateEnd,
		TimeEnd:     in.TimeEnd,
		Status:      string(domain.StatusDraft),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Insert(ctx, row); err != nil {
		return domain.Listing{}, err
	}
	return toListing(row), nil
}

// Update applies partial edits to an owned listing
func (s *Svc) Update(ctx context.Context, ownerID, id string, in domain.UpdateListingInput) (domain.Listing, error) {
	row, err := s.owned(ctx, ownerID, id)
	if err != nil {
		return domain.Listing{}, err
	}

	applyString(&row.Title, in.Title)
	applyString(&row.Description, in.Description)
	applyString(&row.Address, in.Address)
	applyString(&row.City, in.City)
	applyString(&row.State, in.State)
	applyString(&row.ZipCode, in.ZipCode)
	if in.Lat != nil {
		row.Lat = *in.Lat
	}
	if in.Lng != nil {
		row.Lng = *in.Lng
	}
	if in.Tags != nil {
		row.Tags = normalizeTags(*in.Tags)
	}
	applyString(&row.DateStart, in.DateStart)
	applyString(&row.TimeStart, in.TimeStart)
	applyString(&row.DateEnd, in.DateEnd)
	applyString(&row.TimeEnd, in.TimeEnd)

	if err := checkSchedule(row.DateStart, row.TimeStart, row.DateEnd, row.TimeEnd); err != nil {
		return domain.Listing{}, err
	}

	row.UpdatedAt = s.now().UTC()
	if err := s.Repo.Update(ctx, row); err != nil {
		return domain.Listing{}, err
	}
	return toListing(row), nil
}

// Get returns a listing. Published listings are public; anything else
// is only visible to its owner.
func (s *Svc) Get(ctx context.Context, callerID, id string) (domain.Listing, error) {
	row, err := s.Repo.Get(ctx, id)
	if err != nil {
		return domain.Listing{}, err
	}
	if row.Status != string(domain.StatusPublished) && row.OwnerID != callerID {
		// hide the existence of unpublished drafts from strangers
		return domain.Listing{}, perr.NotFoundf("listing %s not found", id)
	}
	return toListing(row), nil
}

// Delete removes an owned listing
func (s *Svc) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := s.owned(ctx, ownerID, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}

// Publish moves an owned listing to published
func (s *Svc) Publish(ctx context.Context, ownerID, id string) (domain.Listing, error) {
	return s.transition(ctx, ownerID, id, domain.StatusPublished)
}

// Hide takes a published listing off the search surface
func (s *Svc) Hide(ctx context.Context, ownerID, id string) (domain.Listing, error) {
	return s.transition(ctx, ownerID, id, domain.StatusHidden)
}

// ListMine returns the caller's listings, most recently touched first
func (s *Svc) ListMine(ctx context.Context, ownerID string, limit int) ([]domain.Listing, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultMineLimit
	}
	rows, err := s.Repo.ListByOwner(ctx, ownerID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Listing, 0, len(rows))
	for _, row := range rows {
		out = append(out, toListing(row))
	}
	return out, nil
}

// allowedTransitions maps a target state to the states it may leave from
var allowedTransitions = map[domain.Status][]domain.Status{
	domain.StatusPublished: {domain.StatusDraft, domain.StatusHidden, domain.StatusAutoHidden},
	domain.StatusHidden:    {domain.StatusPublished},
}

func (s *Svc) transition(ctx context.Context, ownerID, id string, to domain.Status) (domain.Listing, error) {
	row, err := s.owned(ctx, ownerID, id)
	if err != nil {
		return domain.Listing{}, err
	}

	from := domain.Status(row.Status)
	ok := false
	for _, f := range allowedTransitions[to] {
		if f == from {
			ok = true
			break
		}
	}
	if !ok {
		return domain.Listing{}, perr.Conflictf("cannot move listing from %s to %s", from, to)
	}

	now := s.now().UTC()
	if err := s.Repo.SetStatus(ctx, id, string(to), now); err != nil {
		return domain.Listing{}, err
	}
	row.Status = string(to)
	row.UpdatedAt = now
	return toListing(row), nil
}

// owned loads a listing and enforces ownership
func (s *Svc) owned(ctx context.Context, ownerID, id string) (repo.RowListing, error) {
	row, err := s.Repo.Get(ctx, id)
	if err != nil {
		return repo.RowListing{}, err
	}
	if row.OwnerID != ownerID {
		return repo.RowListing{}, perr.Forbiddenf("listing %s belongs to another user", id)
	}
	return row, nil
}

// checkSchedule enforces the cross-field rule the per-field validator
// tags cannot: the end must not precede the start
func checkSchedule(dateStart, timeStart, dateEnd, timeEnd string) error {
	if dateEnd == "" {
		if timeEnd != "" && timeStart != "" && timeEnd < timeStart {
			return perr.WithField(
				perr.New(perr.ErrorCodeValidation, "end time is before start time"), "timeEnd")
		}
		return nil
	}
	if dateEnd < dateStart {
		return perr.WithField(
			perr.New(perr.ErrorCodeValidation, "end date is before start date"), "dateEnd")
	}
	if dateEnd == dateStart && timeEnd != "" && timeStart != "" && timeEnd < timeStart {
		return perr.WithField(
			perr.New(perr.ErrorCodeValidation, "end time is before start time"), "timeEnd")
	}
	return nil
}

// normalizeTags dedupes and sorts so equality is stable across edits
func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func toListing(row repo.RowListing) domain.Listing {
	return domain.Listing{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Title:       row.Title,
		Description: row.Description,
		Address:     row.Address,
		City:        row.City,
		State:       row.State,
		ZipCode:     row.ZipCode,
		Lat:         row.Lat,
		Lng:         row.Lng,
		Tags:        row.Tags,
		DateStart:   row.DateStart,
		TimeStart:   row.TimeStart,
		DateEnd:     row.DateEnd,
		TimeEnd:     row.TimeEnd,
		Status:      domain.Status(row.Status),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   ptime.Ptr(row.UpdatedAt),
	}
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
