package module

import (
	"context"

	favoritesdom "yardsale/internal/services/api/favorites/domain"
	favoritessvc "yardsale/internal/services/api/favorites/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptFavoritesPort adapts the favorites service to the domain port interface
type adaptFavoritesPort struct{ svc favoritessvc.Service }

// Save implements the domain ServicePort interface
func (a adaptFavoritesPort) Save(ctx context.Context, userID, saleID string) error {
	return a.svc.Save(ctx, userID, saleID)
}

// Unsave implements the domain ServicePort interface
func (a adaptFavoritesPort) Unsave(ctx context.Context, userID, saleID string) error {
	return a.svc.Unsave(ctx, userID, saleID)
}

// List implements the domain ServicePort interface
func (a adaptFavoritesPort) List(ctx context.Context, userID string, limit int) ([]favoritesdom.Favorite, error) {
	return a.svc.List(ctx, userID, limit)
}
