package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/HoursLedger/internal/domain"
	"github.com/wb-go/wbf/logger"
)

func (s *LedgerService) CreatePackage(ctx context.Context, clientID string, input domain.CreatePackageInput) (*domain.Package, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.TotalHours <= 0 {
		return nil, fmt.Errorf("%w: total_hours must be positive", domain.ErrValidation)
	}

	client, err := s.repo.GetByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}

	pkg := domain.Package{
		ID:             uuid.New().String(),
		Name:           name,
		TotalHours:     input.TotalHours,
		RemainingHours: input.TotalHours,
		Bookings:       []domain.Booking{},
	}

	packages := append(slices.Clone(client.Packages), pkg)
	if err = s.repo.UpdatePackages(ctx, client.ID, packages); err != nil {
		return nil, fmt.Errorf("update packages: %w", err)
	}

	s.logger.Info("package created",
		logger.String("client_id", clientID),
		logger.String("package_id", pkg.ID),
		logger.Any("total_hours", pkg.TotalHours),
	)

	return &pkg, nil
}

// UpdatePackage renames a package and/or changes its total hours.
func (s *LedgerService) UpdatePackage(ctx context.Context, clientID, packageID string, input domain.UpdatePackageInput) (*domain.Package, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", domain.ErrValidation)
	}

	_, pkg, err := s.mutate(ctx, clientID, packageID, func(pkg domain.Package, now time.Time) (domain.Package, error) {
		out := pkg.Clone()
		if input.Name != nil {
			out.Name = strings.TrimSpace(*input.Name)
		}
		if input.TotalHours != nil {
			return s.engine.EditPackageHours(out, *input.TotalHours, now)
		}
		return s.engine.Recompute(out, now)
	})
	if err != nil {
		return nil, err
	}

	return &pkg, nil
}

func (s *LedgerService) DeletePackage(ctx context.Context, clientID, packageID string) error {
	client, err := s.repo.GetByID(ctx, clientID)
	if err != nil {
		return fmt.Errorf("get client: %w", err)
	}

	idx := client.PackageIndex(packageID)
	if idx < 0 {
		return domain.ErrPackageNotFound
	}

	packages := slices.Delete(slices.Clone(client.Packages), idx, idx+1)
	if err = s.repo.UpdatePackages(ctx, client.ID, packages); err != nil {
		return fmt.Errorf("update packages: %w", err)
	}

	s.logger.Info("package deleted",
		logger.String("client_id", clientID),
		logger.String("package_id", packageID),
	)

	return nil
}
