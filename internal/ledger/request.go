package ledger

import (
	"fmt"
	"slices"
	"time"

	"github.com/stpnv0/HoursLedger/internal/domain"
)

const clockLayout = "15:04"

// RequestChange attaches a client request to one occurrence. The notice
// left before the lesson decides which details are required.
func (e *Engine) RequestChange(pkg domain.Package, ref OccurrenceRef, in domain.RequestChangeInput, now time.Time) (domain.Package, domain.Request, error) {
	occ, err := e.findOccurrence(pkg, ref)
	if err != nil {
		return pkg, domain.Request{}, err
	}
	if occ.Request != nil && !occ.Request.Resolved {
		return pkg, domain.Request{}, fmt.Errorf("%w: %s", domain.ErrDuplicateRequest, occ.DateKey)
	}
	if statusOf(occ, now) == StatusCompleted || !occ.Start.After(now) {
		return pkg, domain.Request{}, fmt.Errorf("%w: lesson on %s has already started", domain.ErrValidation, occ.DateKey)
	}

	req, err := e.buildRequest(occ, in, now)
	if err != nil {
		return pkg, domain.Request{}, err
	}

	out := pkg.Clone()
	b := &out.Bookings[out.BookingIndex(occ.BookingID)]
	if b.Requests == nil {
		b.Requests = make(map[string]domain.Request)
	}
	b.Requests[occ.DateKey] = req

	if err = e.recompute(&out, now); err != nil {
		return pkg, domain.Request{}, err
	}
	return out, req, nil
}

func (e *Engine) buildRequest(occ Occurrence, in domain.RequestChangeInput, now time.Time) (domain.Request, error) {
	kind := in.Kind
	if kind == "" {
		kind = domain.RequestKindReschedule
	}
	if kind != domain.RequestKindReschedule && kind != domain.RequestKindCancellation {
		return domain.Request{}, fmt.Errorf("%w: unknown request kind %q", domain.ErrValidation, in.Kind)
	}

	notice := occ.Start.Sub(now)
	req := domain.Request{
		Kind:      kind,
		Urgency:   domain.UrgencyNormal,
		CreatedAt: now,
	}

	switch {
	case kind == domain.RequestKindCancellation:
		if notice < e.policy.UrgentNotice {
			req.Urgency = domain.UrgencyUrgent
		}

	case notice < e.policy.ShortNotice && len(in.Availability) == 0:
		req.Urgency = domain.UrgencyUrgentNoAlternatives

	case notice < e.policy.UrgentNotice:
		if in.ProposedDate != "" {
			return domain.Request{}, fmt.Errorf("%w: within %d days of the lesson offer availability windows instead of a new date",
				domain.ErrValidation, days(e.policy.UrgentNotice))
		}
		windows, err := e.validateAvailability(in.Availability, now, occ.Start)
		if err != nil {
			return domain.Request{}, err
		}
		req.Urgency = domain.UrgencyUrgent
		req.Details = &domain.RequestDetails{Availability: windows}

	default:
		if err := e.validateProposal(in, now); err != nil {
			return domain.Request{}, err
		}
		req.Details = &domain.RequestDetails{
			ProposedDate: in.ProposedDate,
			From:         in.From,
			To:           in.To,
		}
	}

	req.Status = e.requestLabel(req)
	return req, nil
}

func (e *Engine) validateAvailability(windows []domain.TimeWindow, now, lesson time.Time) ([]domain.TimeWindow, error) {
	if len(windows) == 0 {
		return nil, fmt.Errorf("%w: select at least one day with a time window", domain.ErrValidation)
	}

	allowed := e.cal.Workdays(now, lesson)
	for _, w := range windows {
		if !slices.Contains(allowed, w.Date) {
			return nil, fmt.Errorf("%w: %s is not an available day", domain.ErrValidation, w.Date)
		}
		if err := validateWindow(w.From, w.To); err != nil {
			return nil, err
		}
	}
	return slices.Clone(windows), nil
}

func (e *Engine) validateProposal(in domain.RequestChangeInput, now time.Time) error {
	if in.ProposedDate == "" {
		return fmt.Errorf("%w: proposed date is required", domain.ErrValidation)
	}
	day, err := e.cal.ParseDateKey(in.ProposedDate)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if !day.After(e.cal.StartOfDay(now)) {
		return fmt.Errorf("%w: proposed date must be in the future", domain.ErrValidation)
	}
	return validateWindow(in.From, in.To)
}

func validateWindow(from, to string) error {
	f, err := time.Parse(clockLayout, from)
	if err != nil {
		return fmt.Errorf("%w: invalid start time %q", domain.ErrValidation, from)
	}
	t, err := time.Parse(clockLayout, to)
	if err != nil {
		return fmt.Errorf("%w: invalid end time %q", domain.ErrValidation, to)
	}
	if !f.Before(t) {
		return fmt.Errorf("%w: time window %s-%s is empty", domain.ErrValidation, from, to)
	}
	return nil
}

type ResolveResult struct {
	Package    domain.Package
	Request    domain.Request
	NewBooking *domain.Booking
}

// ResolveRequest applies the admin decision on a pending request.
// Approved cancellations cancel the date (or drop a single booking).
// Approved reschedules cancel the date and add a single booking at
// NewStart with the same duration. Rejections only close the request.
func (e *Engine) ResolveRequest(pkg domain.Package, ref OccurrenceRef, res domain.Resolution, now time.Time) (ResolveResult, error) {
	idx := pkg.BookingIndex(ref.BookingID)
	if idx < 0 {
		return ResolveResult{Package: pkg}, domain.ErrBookingNotFound
	}

	key := ref.DateKey
	if key == "" && !pkg.Bookings[idx].IsRecurring() {
		key = e.cal.DateKey(pkg.Bookings[idx].DateTime)
	}
	req, ok := pkg.Bookings[idx].Requests[key]
	if !ok {
		return ResolveResult{Package: pkg}, fmt.Errorf("%w: %s on %s", domain.ErrRequestNotFound, ref.BookingID, key)
	}
	if req.Resolved {
		return ResolveResult{Package: pkg}, domain.ErrRequestNotPending
	}

	switch res.Outcome {
	case domain.OutcomeApproved, domain.OutcomeRejected:
	default:
		return ResolveResult{Package: pkg}, fmt.Errorf("%w: unknown outcome %q", domain.ErrValidation, res.Outcome)
	}
	if res.Outcome == domain.OutcomeApproved && req.Kind == domain.RequestKindReschedule && res.NewStart.IsZero() {
		return ResolveResult{Package: pkg}, fmt.Errorf("%w: new lesson date is required to approve a reschedule", domain.ErrValidation)
	}
	if res.Outcome == domain.OutcomeApproved && req.Kind == domain.RequestKindReschedule && !res.NewStart.After(now) {
		return ResolveResult{Package: pkg}, fmt.Errorf("%w: new lesson date must be in the future", domain.ErrValidation)
	}

	req = req.Clone()
	req.Resolved = true
	req.Outcome = res.Outcome
	req.ResolvedAt = now
	req.Status = resolvedLabel(req)

	out := pkg.Clone()
	result := ResolveResult{}
	original := &out.Bookings[idx]

	switch {
	case res.Outcome == domain.OutcomeRejected:
		req.Notification = &domain.Notification{
			Message: messageOr(res.Message, fmt.Sprintf("Your request for the lesson on %s was rejected.", e.displayKey(key))),
		}
		original.Requests[key] = req

	case req.Kind == domain.RequestKindCancellation:
		req.Notification = &domain.Notification{
			Message: messageOr(res.Message, fmt.Sprintf("The lesson on %s has been cancelled.", e.displayKey(key))),
		}
		if original.IsRecurring() {
			cancelDate(original, key)
			original.Requests[key] = req
		} else {
			out.Bookings = slices.Delete(out.Bookings, idx, idx+1)
		}

	default:
		moved := domain.Booking{
			ID:          e.newID(),
			Type:        domain.BookingTypeSingle,
			DateTime:    res.NewStart.Truncate(time.Second),
			HoursBooked: original.HoursBooked,
		}
		req.Notification = &domain.Notification{
			Message: messageOr(res.Message, fmt.Sprintf("The lesson on %s has been moved to %s.",
				e.displayKey(key), e.displayTime(moved.DateTime))),
			NewBookingID: moved.ID,
		}

		if original.IsRecurring() {
			cancelDate(original, key)
			original.Requests[key] = req
		} else {
			// the original single booking goes away; its closed request
			// travels with the replacement so the client still sees it
			moved.Requests = map[string]domain.Request{key: req}
			out.Bookings = slices.Delete(out.Bookings, idx, idx+1)
		}
		out.Bookings = append(out.Bookings, moved)
		result.NewBooking = &moved
	}

	if err := e.recompute(&out, now); err != nil {
		return ResolveResult{Package: pkg}, err
	}

	result.Package = out
	result.Request = req
	return result, nil
}

func messageOr(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}

// AvailableDays lists the date-keys a client may offer for an urgent
// reschedule of the referenced occurrence. It is empty outside the urgent
// notice window.
func (e *Engine) AvailableDays(pkg domain.Package, ref OccurrenceRef, now time.Time) ([]string, error) {
	occ, err := e.findOccurrence(pkg, ref)
	if err != nil {
		return nil, err
	}
	if occ.Start.Sub(now) >= e.policy.UrgentNotice {
		return nil, nil
	}
	return e.cal.Workdays(now, occ.Start), nil
}
