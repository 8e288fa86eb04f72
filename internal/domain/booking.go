package domain

import (
	"slices"
	"time"
)

type BookingType string

const (
	BookingTypeSingle    BookingType = "single"
	BookingTypeRecurring BookingType = "recurring"
)

type Weekday string

const (
	Sunday    Weekday = "sun"
	Monday    Weekday = "mon"
	Tuesday   Weekday = "tue"
	Wednesday Weekday = "wed"
	Thursday  Weekday = "thu"
	Friday    Weekday = "fri"
	Saturday  Weekday = "sat"
)

var weekdayOffsets = map[Weekday]int{
	Sunday:    0,
	Monday:    1,
	Tuesday:   2,
	Wednesday: 3,
	Thursday:  4,
	Friday:    5,
	Saturday:  6,
}

// Offset maps the weekday to 0 (sun) … 6 (sat).
func (d Weekday) Offset() (int, bool) {
	off, ok := weekdayOffsets[d]
	return off, ok
}

func (d Weekday) Valid() bool {
	_, ok := weekdayOffsets[d]
	return ok
}

type Recurrence struct {
	Weeks int       `json:"weeks"`
	Days  []Weekday `json:"days"`
}

// Booking is a tagged union on Type. Single bookings use DateTime and
// IsProcessed; recurring ones use StartDate, Recurrence, ProcessedDates
// and CancelledDates. Requests are keyed by date-key for both.
type Booking struct {
	ID             string             `json:"id"`
	Type           BookingType        `json:"type"`
	DateTime       time.Time          `json:"dateTime,omitzero"`
	StartDate      time.Time          `json:"startDate,omitzero"`
	HoursBooked    float64            `json:"hoursBooked"`
	IsProcessed    bool               `json:"isProcessed,omitempty"`
	Recurrence     *Recurrence        `json:"recurrence,omitempty"`
	ProcessedDates []string           `json:"processedDates,omitempty"`
	CancelledDates []string           `json:"cancelledDates,omitempty"`
	Requests       map[string]Request `json:"requests,omitempty"`
}

type CreateBookingInput struct {
	Type        BookingType
	Start       time.Time
	HoursBooked float64
	Weeks       int
	Days        []Weekday
}

func (b Booking) IsRecurring() bool {
	return b.Type == BookingTypeRecurring
}

func (b Booking) Clone() Booking {
	out := b
	if b.Recurrence != nil {
		r := *b.Recurrence
		r.Days = slices.Clone(b.Recurrence.Days)
		out.Recurrence = &r
	}
	out.ProcessedDates = slices.Clone(b.ProcessedDates)
	out.CancelledDates = slices.Clone(b.CancelledDates)
	if b.Requests != nil {
		out.Requests = make(map[string]Request, len(b.Requests))
		for k, r := range b.Requests {
			out.Requests[k] = r.Clone()
		}
	}
	return out
}

func (b Booking) IsDateProcessed(key string) bool {
	return slices.Contains(b.ProcessedDates, key)
}

func (b Booking) IsDateCancelled(key string) bool {
	return slices.Contains(b.CancelledDates, key)
}

// PendingRequest returns the unresolved request stored at key, if any.
func (b Booking) PendingRequest(key string) (Request, bool) {
	r, ok := b.Requests[key]
	if !ok || r.Resolved {
		return Request{}, false
	}
	return r, true
}
