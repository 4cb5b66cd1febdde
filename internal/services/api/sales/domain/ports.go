package domain

import "context"

// ServicePort defines the service contract for sale search
type ServicePort interface {
	Search(ctx context.Context, in SearchInput) (SearchResp, error)
}
