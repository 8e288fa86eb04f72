package ledger

import (
	"math"
	"time"

	"github.com/stpnv0/HoursLedger/internal/domain"
)

type Balance struct {
	TotalHours     float64
	CompletedHours float64
	BookedHours    float64
	RemainingHours float64
	BookableHours  float64
	LowHours       bool
}

// PackageView is the read projection of a package at a point in time.
type PackageView struct {
	Package     domain.Package
	Occurrences []Occurrence
	Balance     Balance
}

// Visible drops cancelled occurrences.
func (v PackageView) Visible() []Occurrence {
	out := make([]Occurrence, 0, len(v.Occurrences))
	for _, o := range v.Occurrences {
		if o.Status != StatusCancelled {
			out = append(out, o)
		}
	}
	return out
}

func (v PackageView) Statuses() map[string]Status {
	out := make(map[string]Status, len(v.Occurrences))
	for _, o := range v.Occurrences {
		out[o.Key] = o.Status
	}
	return out
}

// Resolve expands the package, assigns every occurrence its status and
// computes the balance from scratch. The cached RemainingHours of pkg is
// ignored.
func (e *Engine) Resolve(pkg domain.Package, now time.Time) (PackageView, error) {
	occs, err := e.ExpandPackage(pkg)
	if err != nil {
		return PackageView{}, err
	}

	var completed, booked float64
	for i := range occs {
		o := &occs[i]
		o.Status = statusOf(*o, now)
		o.Label = occurrenceLabel(*o)

		switch o.Status {
		case StatusCancelled:
			continue
		case StatusCompleted:
			completed += o.Hours
		}
		booked += o.Hours
	}

	bal := Balance{
		TotalHours:     pkg.TotalHours,
		CompletedHours: roundHours(completed),
		BookedHours:    roundHours(booked),
	}
	bal.RemainingHours = roundHours(pkg.TotalHours - bal.CompletedHours)
	bal.BookableHours = roundHours(pkg.TotalHours - bal.BookedHours)
	bal.LowHours = bal.RemainingHours < e.policy.LowHoursThreshold ||
		bal.BookableHours < e.policy.LowHoursThreshold

	return PackageView{Package: pkg, Occurrences: occs, Balance: bal}, nil
}

func statusOf(o Occurrence, now time.Time) Status {
	switch {
	case o.IsCancelled:
		return StatusCancelled
	case o.Request != nil && !o.Request.Resolved:
		return StatusPendingRequest
	case o.IsProcessed:
		return StatusCompleted
	case o.Type == domain.BookingTypeSingle && o.Start.Before(now):
		return StatusCompleted
	default:
		return StatusScheduled
	}
}

// recompute refreshes the cached RemainingHours of pkg in place.
func (e *Engine) recompute(pkg *domain.Package, now time.Time) error {
	view, err := e.Resolve(*pkg, now)
	if err != nil {
		return err
	}
	pkg.RemainingHours = view.Balance.RemainingHours
	return nil
}

func roundHours(h float64) float64 {
	return math.Round(h*1e6) / 1e6
}
