package domain

import (
	"slices"
	"time"
)

type RequestKind string

const (
	RequestKindReschedule   RequestKind = "reschedule"
	RequestKindCancellation RequestKind = "cancellation"
)

type RequestUrgency string

const (
	UrgencyNormal               RequestUrgency = "normal"
	UrgencyUrgent               RequestUrgency = "urgent"
	UrgencyUrgentNoAlternatives RequestUrgency = "urgent_no_alternatives"
)

type RequestOutcome string

const (
	OutcomeApproved RequestOutcome = "approved"
	OutcomeRejected RequestOutcome = "rejected"
)

// TimeWindow is a slot offered by the client: a date-key plus HH:MM bounds.
type TimeWindow struct {
	Date string `json:"date"`
	From string `json:"from"`
	To   string `json:"to"`
}

type RequestDetails struct {
	ProposedDate string       `json:"proposedDate,omitempty"`
	From         string       `json:"from,omitempty"`
	To           string       `json:"to,omitempty"`
	Availability []TimeWindow `json:"availability,omitempty"`
}

type Notification struct {
	Message      string `json:"message"`
	NewBookingID string `json:"newBookingId,omitempty"`
}

// Request is a client proposal attached to one occurrence. Status holds the
// rendered label; state logic only looks at Kind, Urgency, Resolved and Outcome.
type Request struct {
	Kind         RequestKind     `json:"kind"`
	Urgency      RequestUrgency  `json:"urgency"`
	Status       string          `json:"status"`
	Resolved     bool            `json:"resolved"`
	Outcome      RequestOutcome  `json:"outcome,omitempty"`
	Details      *RequestDetails `json:"details,omitempty"`
	Notification *Notification   `json:"notification,omitempty"`
	CreatedAt    time.Time       `json:"createdAt,omitzero"`
	ResolvedAt   time.Time       `json:"resolvedAt,omitzero"`
}

type RequestChangeInput struct {
	Kind         RequestKind
	ProposedDate string
	From         string
	To           string
	Availability []TimeWindow
}

// Resolution is the admin decision on a pending request. NewStart is
// required when approving a reschedule.
type Resolution struct {
	Outcome  RequestOutcome
	NewStart time.Time
	Message  string
}

func (r Request) Clone() Request {
	out := r
	if r.Details != nil {
		d := *r.Details
		d.Availability = slices.Clone(r.Details.Availability)
		out.Details = &d
	}
	if r.Notification != nil {
		n := *r.Notification
		out.Notification = &n
	}
	return out
}
