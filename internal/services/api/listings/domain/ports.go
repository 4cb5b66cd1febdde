package domain

import "context"

// ServicePort defines the service contract for listings
type ServicePort interface {
	Create(ctx context.Context, ownerID string, in CreateListingInput) (Listing, error)
	Update(ctx context.Context, ownerID, id string, in UpdateListingInput) (Listing, error)
	Get(ctx context.Context, callerID, id string) (Listing, error)
	Delete(ctx context.Context, ownerID, id string) error
	Publish(ctx context.Context, ownerID, id string) (Listing, error)
	Hide(ctx context.Context, ownerID, id string) (Listing, error)
	ListMine(ctx context.Context, ownerID string, limit int) ([]Listing, error)
}
