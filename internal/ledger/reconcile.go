package ledger

import (
	"time"

	"github.com/stpnv0/HoursLedger/internal/domain"
)

type ReconcileResult struct {
	Package   domain.Package
	Completed []Occurrence
	// Changed reports whether the package differs from the input and has
	// to be written back.
	Changed bool
}

// Reconcile marks every elapsed, non-cancelled occurrence without an
// unresolved request as processed and refreshes the cached balance.
// Running it twice with the same now is a no-op the second time.
func (e *Engine) Reconcile(pkg domain.Package, now time.Time) (ReconcileResult, error) {
	occs, err := e.ExpandPackage(pkg)
	if err != nil {
		return ReconcileResult{Package: pkg}, err
	}

	out := pkg.Clone()
	var completed []Occurrence
	for _, o := range occs {
		if o.IsCancelled || o.IsProcessed || !o.Start.Before(now) {
			continue
		}
		if o.Request != nil && !o.Request.Resolved {
			continue
		}

		b := &out.Bookings[out.BookingIndex(o.BookingID)]
		if b.IsRecurring() {
			b.ProcessedDates = append(b.ProcessedDates, o.DateKey)
		} else {
			b.IsProcessed = true
		}
		o.IsProcessed = true
		o.Status = StatusCompleted
		o.Label = occurrenceLabel(o)
		completed = append(completed, o)
	}

	before := out.RemainingHours
	if err = e.recompute(&out, now); err != nil {
		return ReconcileResult{Package: pkg}, err
	}

	return ReconcileResult{
		Package:   out,
		Completed: completed,
		Changed:   len(completed) > 0 || before != out.RemainingHours,
	}, nil
}
