package ledger

import (
	"fmt"
	"slices"
	"time"

	"github.com/stpnv0/HoursLedger/internal/domain"
)

const hoursEpsilon = 1e-9

// OccurrenceRef addresses one occurrence inside a package. DateKey may be
// empty for single bookings.
type OccurrenceRef struct {
	BookingID string
	DateKey   string
}

// CreateBooking validates the input, checks it fits in the bookable hours
// and returns the package with the new booking appended.
func (e *Engine) CreateBooking(pkg domain.Package, in domain.CreateBookingInput, now time.Time) (domain.Package, domain.Booking, error) {
	b, err := e.buildBooking(in)
	if err != nil {
		return pkg, domain.Booking{}, err
	}

	view, err := e.Resolve(pkg, now)
	if err != nil {
		return pkg, domain.Booking{}, err
	}

	cost := bookingCost(b)
	if cost > view.Balance.BookableHours+hoursEpsilon {
		return pkg, domain.Booking{}, fmt.Errorf("%w: need %gh, %gh bookable",
			domain.ErrInsufficientHours, cost, view.Balance.BookableHours)
	}

	out := pkg.Clone()
	out.Bookings = append(out.Bookings, b)
	if err = e.recompute(&out, now); err != nil {
		return pkg, domain.Booking{}, err
	}

	return out, b, nil
}

func (e *Engine) buildBooking(in domain.CreateBookingInput) (domain.Booking, error) {
	if in.HoursBooked <= 0 {
		return domain.Booking{}, fmt.Errorf("%w: hours_booked must be positive", domain.ErrValidation)
	}
	if in.Start.IsZero() {
		return domain.Booking{}, fmt.Errorf("%w: start is required", domain.ErrValidation)
	}

	switch in.Type {
	case domain.BookingTypeSingle:
		return domain.Booking{
			ID:          e.newID(),
			Type:        domain.BookingTypeSingle,
			DateTime:    in.Start.Truncate(time.Second),
			HoursBooked: in.HoursBooked,
		}, nil

	case domain.BookingTypeRecurring:
		if in.Weeks < 1 {
			return domain.Booking{}, fmt.Errorf("%w: weeks must be at least 1", domain.ErrValidation)
		}
		if in.Weeks > e.policy.MaxWeeks {
			return domain.Booking{}, fmt.Errorf("%w: weeks must be at most %d", domain.ErrValidation, e.policy.MaxWeeks)
		}
		if len(in.Days) == 0 {
			return domain.Booking{}, fmt.Errorf("%w: select at least one weekday", domain.ErrValidation)
		}
		seen := make(map[domain.Weekday]bool, len(in.Days))
		for _, d := range in.Days {
			if !d.Valid() {
				return domain.Booking{}, fmt.Errorf("%w: unknown weekday %q", domain.ErrValidation, d)
			}
			if seen[d] {
				return domain.Booking{}, fmt.Errorf("%w: duplicate weekday %q", domain.ErrValidation, d)
			}
			seen[d] = true
		}
		return domain.Booking{
			ID:          e.newID(),
			Type:        domain.BookingTypeRecurring,
			StartDate:   in.Start.Truncate(time.Second),
			HoursBooked: in.HoursBooked,
			Recurrence: &domain.Recurrence{
				Weeks: in.Weeks,
				Days:  slices.Clone(in.Days),
			},
		}, nil

	default:
		return domain.Booking{}, fmt.Errorf("%w: unknown booking type %q", domain.ErrValidation, in.Type)
	}
}

func bookingCost(b domain.Booking) float64 {
	if b.IsRecurring() {
		return b.HoursBooked * float64(b.Recurrence.Weeks*len(b.Recurrence.Days))
	}
	return b.HoursBooked
}

// DeleteOccurrence removes a single booking, or excludes one date from a
// recurring series. The series itself is never deleted.
func (e *Engine) DeleteOccurrence(pkg domain.Package, ref OccurrenceRef, now time.Time) (domain.Package, error) {
	occ, err := e.findOccurrence(pkg, ref)
	if err != nil {
		return pkg, err
	}

	out := pkg.Clone()
	idx := out.BookingIndex(ref.BookingID)
	if occ.Type == domain.BookingTypeSingle {
		out.Bookings = slices.Delete(out.Bookings, idx, idx+1)
	} else {
		b := &out.Bookings[idx]
		cancelDate(b, occ.DateKey)
		if r, ok := b.Requests[occ.DateKey]; ok && !r.Resolved {
			delete(b.Requests, occ.DateKey)
		}
	}

	if err = e.recompute(&out, now); err != nil {
		return pkg, err
	}
	return out, nil
}

// EditPackageHours sets a new total and recomputes the remaining hours.
func (e *Engine) EditPackageHours(pkg domain.Package, totalHours float64, now time.Time) (domain.Package, error) {
	if totalHours <= 0 {
		return pkg, fmt.Errorf("%w: total_hours must be positive", domain.ErrValidation)
	}

	out := pkg.Clone()
	out.TotalHours = totalHours
	if err := e.recompute(&out, now); err != nil {
		return pkg, err
	}
	return out, nil
}

// Recompute returns pkg with its cached balance refreshed.
func (e *Engine) Recompute(pkg domain.Package, now time.Time) (domain.Package, error) {
	out := pkg.Clone()
	if err := e.recompute(&out, now); err != nil {
		return pkg, err
	}
	return out, nil
}

// findOccurrence locates a non-cancelled occurrence of the referenced booking.
func (e *Engine) findOccurrence(pkg domain.Package, ref OccurrenceRef) (Occurrence, error) {
	idx := pkg.BookingIndex(ref.BookingID)
	if idx < 0 {
		return Occurrence{}, domain.ErrBookingNotFound
	}

	occs, err := e.Expand(pkg.Bookings[idx])
	if err != nil {
		return Occurrence{}, err
	}

	for _, o := range occs {
		if o.IsCancelled {
			continue
		}
		if o.DateKey == ref.DateKey || (ref.DateKey == "" && o.Type == domain.BookingTypeSingle) {
			return o, nil
		}
	}
	return Occurrence{}, fmt.Errorf("%w: %s on %s", domain.ErrOccurrenceNotFound, ref.BookingID, ref.DateKey)
}

// cancelDate moves key into the cancelled set of a recurring booking.
func cancelDate(b *domain.Booking, key string) {
	if !slices.Contains(b.CancelledDates, key) {
		b.CancelledDates = append(b.CancelledDates, key)
	}
	b.ProcessedDates = slices.DeleteFunc(b.ProcessedDates, func(d string) bool { return d == key })
}
