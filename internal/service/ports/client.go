package ports

import (
	"context"

	"github.com/stpnv0/HoursLedger/internal/domain"
)

type ClientRepo interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	GetByEmail(ctx context.Context, email string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	UpdateProfile(ctx context.Context, c *domain.Client) error
	// UpdatePackages replaces the whole packages document of a client.
	UpdatePackages(ctx context.Context, clientID string, packages []domain.Package) error
	Delete(ctx context.Context, id string) error
}
