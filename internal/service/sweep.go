package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/stpnv0/HoursLedger/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// Sweep runs one reconciliation cycle over every package of every client.
// Only clients whose packages changed are written back. A package that
// fails to reconcile or a client that fails to persist is logged and
// counted, and the cycle moves on.
func (s *LedgerService) Sweep(ctx context.Context) (domain.SweepReport, error) {
	var report domain.SweepReport

	clients, err := s.repo.List(ctx)
	if err != nil {
		return report, fmt.Errorf("list clients: %w", err)
	}

	now := s.clock.Now()
	for _, c := range clients {
		if err = ctx.Err(); err != nil {
			return report, err
		}
		report.Clients++

		packages := slices.Clone(c.Packages)
		changed := false
		for i, pkg := range c.Packages {
			report.Packages++

			res, err := s.engine.Reconcile(pkg, now)
			if err != nil {
				report.Failed++
				s.logger.Error("failed to reconcile package",
					logger.String("client_id", c.ID),
					logger.String("package_id", pkg.ID),
					logger.String("error", err.Error()),
				)
				continue
			}
			if !res.Changed {
				continue
			}

			packages[i] = res.Package
			changed = true
			report.Completed += len(res.Completed)

			for _, o := range res.Completed {
				s.logger.Debug("lesson completed",
					logger.String("client_id", c.ID),
					logger.String("package_id", pkg.ID),
					logger.String("occurrence", o.Key),
				)
			}
		}

		if !changed {
			continue
		}

		if err := s.repo.UpdatePackages(ctx, c.ID, packages); err != nil {
			report.Failed++
			s.logger.Error("failed to persist reconciled packages",
				logger.String("client_id", c.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		report.Updated++
	}

	return report, nil
}
