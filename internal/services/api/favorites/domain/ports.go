package domain

import "context"

// ServicePort defines the service contract for saved sales
type ServicePort interface {
	Save(ctx context.Context, userID, saleID string) error
	Unsave(ctx context.Context, userID, saleID string) error
	List(ctx context.Context, userID string, limit int) ([]Favorite, error)
}
