// Package ledger is the hour-accounting engine. It expands stored bookings
// into dated occurrences, resolves their status and the package balance,
// and applies booking mutations. Every operation is a pure function of a
// package snapshot and a point in time; callers persist the returned
// snapshot as a whole.
package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/HoursLedger/internal/calendar"
)

const (
	defaultLowHoursThreshold = 5
	defaultUrgentNotice      = 7 * 24 * time.Hour
	defaultShortNotice       = 3 * 24 * time.Hour
	defaultMaxWeeks          = 104
)

// Policy holds the business constants of the ledger.
type Policy struct {
	// LowHoursThreshold triggers the low-hours warning when either the
	// remaining or the bookable hours drop below it. Zero only flags
	// overdrawn packages.
	LowHoursThreshold float64
	// UrgentNotice is the window in which a reschedule must offer
	// availability windows instead of a single proposed slot.
	UrgentNotice time.Duration
	// ShortNotice is the window in which a request is recorded as urgent
	// without alternatives.
	ShortNotice time.Duration
	// MaxWeeks caps the length of a recurring series.
	MaxWeeks int
}

func DefaultPolicy() Policy {
	return Policy{
		LowHoursThreshold: defaultLowHoursThreshold,
		UrgentNotice:      defaultUrgentNotice,
		ShortNotice:       defaultShortNotice,
		MaxWeeks:          defaultMaxWeeks,
	}
}

type Engine struct {
	cal    calendar.Calendar
	policy Policy
	newID  func() string
}

type Option func(*Engine)

// WithIDGenerator replaces the booking id generator.
func WithIDGenerator(f func() string) Option {
	return func(e *Engine) { e.newID = f }
}

func New(cal calendar.Calendar, policy Policy, opts ...Option) *Engine {
	def := DefaultPolicy()
	if policy.LowHoursThreshold < 0 {
		policy.LowHoursThreshold = def.LowHoursThreshold
	}
	if policy.UrgentNotice <= 0 {
		policy.UrgentNotice = def.UrgentNotice
	}
	if policy.ShortNotice <= 0 {
		policy.ShortNotice = def.ShortNotice
	}
	if policy.MaxWeeks <= 0 {
		policy.MaxWeeks = def.MaxWeeks
	}

	e := &Engine{
		cal:    cal,
		policy: policy,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Calendar() calendar.Calendar { return e.cal }

func (e *Engine) Policy() Policy { return e.policy }
