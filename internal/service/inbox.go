package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/stpnv0/HoursLedger/internal/domain"
	"github.com/stpnv0/HoursLedger/internal/ledger"
	"github.com/wb-go/wbf/logger"
)

const overviewWindow = 7 * 24 * time.Hour

// walk resolves every package of every client and hands the views to fn.
// Packages that fail to resolve are logged and skipped.
func (s *LedgerService) walk(ctx context.Context, now time.Time, fn func(c *domain.Client, view ledger.PackageView)) error {
	clients, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list clients: %w", err)
	}

	for _, c := range clients {
		for _, pkg := range c.Packages {
			view, err := s.engine.Resolve(pkg, now)
			if err != nil {
				s.logger.Error("failed to resolve package",
					logger.String("client_id", c.ID),
					logger.String("package_id", pkg.ID),
					logger.String("error", err.Error()),
				)
				continue
			}
			fn(c, view)
		}
	}
	return nil
}

// PendingRequests lists every unresolved request across all clients,
// soonest lesson first.
func (s *LedgerService) PendingRequests(ctx context.Context) ([]domain.PendingRequest, error) {
	var out []domain.PendingRequest
	err := s.walk(ctx, s.clock.Now(), func(c *domain.Client, view ledger.PackageView) {
		for _, o := range view.Occurrences {
			if o.Status != ledger.StatusPendingRequest {
				continue
			}
			out = append(out, domain.PendingRequest{
				ClientID:    c.ID,
				ClientName:  c.Name,
				PackageID:   view.Package.ID,
				PackageName: view.Package.Name,
				BookingID:   o.BookingID,
				DateKey:     o.DateKey,
				LessonStart: o.Start,
				Hours:       o.Hours,
				Request:     *o.Request,
			})
		}
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(out, func(a, b domain.PendingRequest) int {
		return a.LessonStart.Compare(b.LessonStart)
	})
	return out, nil
}

// Overview collects the lessons of the next seven days and the packages
// running low on hours.
func (s *LedgerService) Overview(ctx context.Context) (*domain.Overview, error) {
	now := s.clock.Now()
	until := now.Add(overviewWindow)
	threshold := s.engine.Policy().LowHoursThreshold

	out := &domain.Overview{GeneratedAt: now}
	err := s.walk(ctx, now, func(c *domain.Client, view ledger.PackageView) {
		for _, o := range view.Occurrences {
			if o.Status != ledger.StatusScheduled && o.Status != ledger.StatusPendingRequest {
				continue
			}
			if o.Start.Before(now) || !o.Start.Before(until) {
				continue
			}
			out.Upcoming = append(out.Upcoming, domain.UpcomingLesson{
				ClientID:    c.ID,
				ClientName:  c.Name,
				PackageID:   view.Package.ID,
				PackageName: view.Package.Name,
				BookingID:   o.BookingID,
				DateKey:     o.DateKey,
				Start:       o.Start,
				Hours:       o.Hours,
				Pending:     o.Status == ledger.StatusPendingRequest,
			})
		}

		if view.Balance.RemainingHours < threshold {
			out.LowHours = append(out.LowHours, domain.LowHoursPackage{
				ClientID:       c.ID,
				ClientName:     c.Name,
				PackageID:      view.Package.ID,
				PackageName:    view.Package.Name,
				RemainingHours: view.Balance.RemainingHours,
				BookableHours:  view.Balance.BookableHours,
			})
		}
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(out.Upcoming, func(a, b domain.UpcomingLesson) int {
		return a.Start.Compare(b.Start)
	})
	return out, nil
}

// SendDigest pushes the current overview to the admin chat.
func (s *LedgerService) SendDigest(ctx context.Context) error {
	overview, err := s.Overview(ctx)
	if err != nil {
		return fmt.Errorf("build overview: %w", err)
	}

	s.notifier.SendDigest(ctx, overview)

	s.logger.Info("digest sent",
		logger.Int("upcoming", len(overview.Upcoming)),
		logger.Int("low_hours", len(overview.LowHours)),
	)
	return nil
}
