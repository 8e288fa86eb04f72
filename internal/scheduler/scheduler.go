package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/HoursLedger/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type sweeper interface {
	Sweep(ctx context.Context) (domain.SweepReport, error)
}

// Scheduler drives the reconciliation sweep on a fixed interval.
type Scheduler struct {
	ledger   sweeper
	interval time.Duration
	logger   logger.Logger
}

func New(
	ledger sweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		ledger:   ledger,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	start := time.Now()
	report, err := s.ledger.Sweep(ctx)
	if err != nil {
		s.logger.Error("sweep failed",
			logger.String("error", err.Error()),
		)
		return
	}

	if report.Completed == 0 && report.Updated == 0 && report.Failed == 0 {
		return
	}

	s.logger.Info("sweep finished",
		logger.Int("clients", report.Clients),
		logger.Int("packages", report.Packages),
		logger.Int("completed", report.Completed),
		logger.Int("updated", report.Updated),
		logger.Int("failed", report.Failed),
		logger.Duration("took", time.Since(start)),
	)
}
