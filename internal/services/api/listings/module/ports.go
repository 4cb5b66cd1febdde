package module

import (
	"context"

	listingsdom "yardsale/internal/services/api/listings/domain"
	listingssvc "yardsale/internal/services/api/listings/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptListingsPort adapts the listings service to the domain port interface
type adaptListingsPort struct{ svc listingssvc.Service }

// Create implements the domain ServicePort interface
func (a adaptListingsPort) Create(ctx context.Context, ownerID string, in listingsdom.CreateListingInput) (listingsdom.Listing, error) {
	return a.svc.Create(ctx, ownerID, in)
}

// Update implements the domain ServicePort interface
func (a adaptListingsPort) Update(ctx context.Context, ownerID, id string, in listingsdom.UpdateListingInput) (listingsdom.Listing, error) {
	return a.svc.Update(ctx, ownerID, id, in)
}

// Get implements the domain ServicePort interface
func (a adaptListingsPort) Get(ctx context.Context, callerID, id string) (listingsdom.Listing, error) {
	return a.svc.Get(ctx, callerID, id)
}

// Delete implements the domain ServicePort interface
func (a adaptListingsPort) Delete(ctx context.Context, ownerID, id string) error {
	return a.svc.Delete(ctx, ownerID, id)
}

// Publish implements the domain ServicePort interface
func (a adaptListingsPort) Publish(ctx context.Context, ownerID, id string) (listingsdom.Listing, error) {
	return a.svc.Publish(ctx, ownerID, id)
}

// Hide implements the domain ServicePort interface
func (a adaptListingsPort) Hide(ctx context.Context, ownerID, id string) (listingsdom.Listing, error) {
	return a.svc.Hide(ctx, ownerID, id)
}

// ListMine implements the domain ServicePort interface
func (a adaptListingsPort) ListMine(ctx context.Context, ownerID string, limit int) ([]listingsdom.Listing, error) {
	return a.svc.ListMine(ctx, ownerID, limit)
}
