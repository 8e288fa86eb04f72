package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/wb-go/wbf/logger"
)

type digestSender interface {
	SendDigest(ctx context.Context) error
}

// Digest sends the admin overview on a cron schedule.
type Digest struct {
	cron   *cron.Cron
	sender digestSender
	logger logger.Logger
}

// NewDigest validates spec (standard five-field cron syntax) and prepares
// the job. Schedules are evaluated in loc.
func NewDigest(sender digestSender, spec string, loc *time.Location, logger logger.Logger) (*Digest, error) {
	d := &Digest{
		cron:   cron.New(cron.WithLocation(loc)),
		sender: sender,
		logger: logger,
	}

	if _, err := cron.ParseStandard(spec); err != nil {
		return nil, fmt.Errorf("parse digest schedule %q: %w", spec, err)
	}
	if _, err := d.cron.AddFunc(spec, func() { d.run(context.Background()) }); err != nil {
		return nil, fmt.Errorf("add digest job: %w", err)
	}

	return d, nil
}

// Start runs the cron loop until ctx is cancelled and waits for a running
// job to finish.
func (d *Digest) Start(ctx context.Context) {
	d.cron.Start()
	d.logger.Info("digest scheduler started")

	<-ctx.Done()

	<-d.cron.Stop().Done()
	d.logger.Info("digest scheduler stopped")
}

func (d *Digest) run(ctx context.Context) {
	if err := d.sender.SendDigest(ctx); err != nil {
		d.logger.Error("failed to send digest",
			logger.String("error", err.Error()),
		)
	}
}
