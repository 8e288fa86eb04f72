package ledger

import (
	"fmt"
	"slices"
	"time"

	"github.com/stpnv0/HoursLedger/internal/domain"
)

type Status string

const (
	StatusScheduled      Status = "scheduled"
	StatusCompleted      Status = "completed"
	StatusCancelled      Status = "cancelled"
	StatusPendingRequest Status = "pending_request"
)

// Occurrence is one dated lesson derived from a booking. Status and Label
// are empty until the occurrence goes through Resolve.
type Occurrence struct {
	Key         string
	BookingID   string
	Type        domain.BookingType
	DateKey     string
	Start       time.Time
	End         time.Time
	Hours       float64
	IsProcessed bool
	IsCancelled bool
	Request     *domain.Request
	Status      Status
	Label       string
}

// OccurrenceKey identifies a recurring occurrence.
func OccurrenceKey(bookingID, dateKey string) string {
	return bookingID + "-" + dateKey
}

// Expand produces the occurrences of one booking in ascending order.
// Cancelled occurrences are kept and flagged.
func (e *Engine) Expand(b domain.Booking) ([]Occurrence, error) {
	if b.HoursBooked <= 0 {
		return nil, fmt.Errorf("%w: booking %s: hours must be positive", domain.ErrValidation, b.ID)
	}

	switch b.Type {
	case domain.BookingTypeSingle:
		if b.DateTime.IsZero() {
			return nil, fmt.Errorf("%w: booking %s: missing date", domain.ErrValidation, b.ID)
		}
		start := e.cal.In(b.DateTime)
		key := e.cal.DateKey(start)
		return []Occurrence{e.occurrence(b, b.ID, key, start, b.IsProcessed, false)}, nil

	case domain.BookingTypeRecurring:
		days, err := recurrenceDays(b)
		if err != nil {
			return nil, err
		}
		dates, err := e.cal.Series(b.StartDate, b.Recurrence.Weeks, days)
		if err != nil {
			return nil, fmt.Errorf("%w: booking %s: %v", domain.ErrValidation, b.ID, err)
		}

		out := make([]Occurrence, 0, len(dates))
		for _, start := range dates {
			key := e.cal.DateKey(start)
			out = append(out, e.occurrence(
				b, OccurrenceKey(b.ID, key), key, start,
				b.IsDateProcessed(key), b.IsDateCancelled(key),
			))
		}
		return out, nil

	default:
		return nil, fmt.Errorf("%w: booking %s: unknown type %q", domain.ErrValidation, b.ID, b.Type)
	}
}

// ExpandPackage expands all bookings of a package and sorts the result by
// start time. Equal starts keep booking insertion order.
func (e *Engine) ExpandPackage(pkg domain.Package) ([]Occurrence, error) {
	var all []Occurrence
	for _, b := range pkg.Bookings {
		occ, err := e.Expand(b)
		if err != nil {
			return nil, err
		}
		all = append(all, occ...)
	}

	slices.SortStableFunc(all, func(a, b Occurrence) int {
		return a.Start.Compare(b.Start)
	})
	return all, nil
}

func (e *Engine) occurrence(b domain.Booking, key, dateKey string, start time.Time, processed, cancelled bool) Occurrence {
	occ := Occurrence{
		Key:         key,
		BookingID:   b.ID,
		Type:        b.Type,
		DateKey:     dateKey,
		Start:       start,
		End:         start.Add(hoursDuration(b.HoursBooked)),
		Hours:       b.HoursBooked,
		IsProcessed: processed,
		IsCancelled: cancelled,
	}
	if r, ok := b.Requests[dateKey]; ok {
		cp := r.Clone()
		occ.Request = &cp
	}
	return occ
}

func recurrenceDays(b domain.Booking) ([]time.Weekday, error) {
	if b.Recurrence == nil {
		return nil, fmt.Errorf("%w: booking %s: missing recurrence", domain.ErrValidation, b.ID)
	}
	if b.Recurrence.Weeks < 1 {
		return nil, fmt.Errorf("%w: booking %s: weeks must be at least 1", domain.ErrValidation, b.ID)
	}
	if len(b.Recurrence.Days) == 0 {
		return nil, fmt.Errorf("%w: booking %s: no weekdays", domain.ErrValidation, b.ID)
	}
	if b.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: booking %s: missing start date", domain.ErrValidation, b.ID)
	}

	days := make([]time.Weekday, 0, len(b.Recurrence.Days))
	for _, d := range b.Recurrence.Days {
		off, ok := d.Offset()
		if !ok {
			return nil, fmt.Errorf("%w: booking %s: unknown weekday %q", domain.ErrValidation, b.ID, d)
		}
		days = append(days, time.Weekday(off))
	}
	return days, nil
}

func hoursDuration(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}
