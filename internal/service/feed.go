package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/HoursLedger/internal/export"
	"github.com/stpnv0/HoursLedger/internal/ledger"
)

// CalendarFeed renders the visible lessons of a client as iCalendar.
func (s *LedgerService) CalendarFeed(ctx context.Context, clientID string) ([]byte, error) {
	client, err := s.repo.GetByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}

	now := s.clock.Now()
	views := make([]ledger.PackageView, 0, len(client.Packages))
	for _, pkg := range client.Packages {
		view, err := s.engine.Resolve(pkg, now)
		if err != nil {
			return nil, fmt.Errorf("resolve package %s: %w", pkg.ID, err)
		}
		views = append(views, view)
	}

	return export.ClientCalendar(client, views, now), nil
}
