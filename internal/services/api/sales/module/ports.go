package module

import (
	"context"

	salesdom "yardsale/internal/services/api/sales/domain"
	salessvc "yardsale/internal/services/api/sales/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptSalesPort adapts the sales service to the domain port interface
type adaptSalesPort struct{ svc salessvc.Service }

// Search implements the domain ServicePort interface
func (a adaptSalesPort) Search(ctx context.Context, in salesdom.SearchInput) (salesdom.SearchResp, error) {
	return a.svc.Search(ctx, in)
}
