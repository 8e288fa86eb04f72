package dto

import (
	"time"

	"github.com/stpnv0/HoursLedger/internal/domain"
	"github.com/stpnv0/HoursLedger/internal/ledger"
)

type ClientResponse struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Email          string           `json:"email,omitempty"`
	TelegramChatID *int64           `json:"telegram_chat_id,omitempty"`
	Packages       []PackageSummary `json:"packages"`
	CreatedAt      string           `json:"created_at"`
	UpdatedAt      string           `json:"updated_at"`
}

type PackageSummary struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	TotalHours     float64 `json:"total_hours"`
	RemainingHours float64 `json:"remaining_hours"`
	Bookings       int     `json:"bookings"`
}

type BalanceResponse struct {
	TotalHours     float64 `json:"total_hours"`
	CompletedHours float64 `json:"completed_hours"`
	BookedHours    float64 `json:"booked_hours"`
	RemainingHours float64 `json:"remaining_hours"`
	BookableHours  float64 `json:"bookable_hours"`
	LowHours       bool    `json:"low_hours"`
}

type PackageViewResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Balance     BalanceResponse      `json:"balance"`
	Occurrences []OccurrenceResponse `json:"occurrences"`
}

type OccurrenceResponse struct {
	Key       string           `json:"key"`
	BookingID string           `json:"booking_id"`
	Type      string           `json:"type"`
	Date      string           `json:"date"`
	Start     string           `json:"start"`
	End       string           `json:"end"`
	Hours     float64          `json:"hours"`
	Status    string           `json:"status"`
	Label     string           `json:"label"`
	Request   *RequestResponse `json:"request,omitempty"`
}

type BookingResponse struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Start       string   `json:"start"`
	HoursBooked float64  `json:"hours_booked"`
	Weeks       int      `json:"weeks,omitempty"`
	Days        []string `json:"days,omitempty"`
}

type RequestResponse struct {
	Kind         string        `json:"kind"`
	Urgency      string        `json:"urgency"`
	Status       string        `json:"status"`
	Resolved     bool          `json:"resolved"`
	Outcome      string        `json:"outcome,omitempty"`
	ProposedDate string        `json:"proposed_date,omitempty"`
	From         string        `json:"from,omitempty"`
	To           string        `json:"to,omitempty"`
	Availability []TimeWindow  `json:"availability,omitempty"`
	Notification *Notification `json:"notification,omitempty"`
	CreatedAt    string        `json:"created_at,omitempty"`
}

type Notification struct {
	Message      string `json:"message"`
	NewBookingID string `json:"new_booking_id,omitempty"`
}

type ResolveResponse struct {
	Request        RequestResponse  `json:"request"`
	NewBooking     *BookingResponse `json:"new_booking,omitempty"`
	RemainingHours float64          `json:"remaining_hours"`
}

type PendingRequestResponse struct {
	ClientID    string          `json:"client_id"`
	ClientName  string          `json:"client_name"`
	PackageID   string          `json:"package_id"`
	PackageName string          `json:"package_name"`
	BookingID   string          `json:"booking_id"`
	Date        string          `json:"date"`
	LessonStart string          `json:"lesson_start"`
	Hours       float64         `json:"hours"`
	Request     RequestResponse `json:"request"`
}

type UpcomingLessonResponse struct {
	ClientID    string  `json:"client_id"`
	ClientName  string  `json:"client_name"`
	PackageID   string  `json:"package_id"`
	PackageName string  `json:"package_name"`
	BookingID   string  `json:"booking_id"`
	Date        string  `json:"date"`
	Start       string  `json:"start"`
	Hours       float64 `json:"hours"`
	Pending     bool    `json:"pending"`
}

type LowHoursResponse struct {
	ClientID       string  `json:"client_id"`
	ClientName     string  `json:"client_name"`
	PackageID      string  `json:"package_id"`
	PackageName    string  `json:"package_name"`
	RemainingHours float64 `json:"remaining_hours"`
	BookableHours  float64 `json:"bookable_hours"`
}

type OverviewResponse struct {
	GeneratedAt string                   `json:"generated_at"`
	Upcoming    []UpcomingLessonResponse `json:"upcoming"`
	LowHours    []LowHoursResponse       `json:"low_hours"`
}

type AvailableDaysResponse struct {
	Days []string `json:"days"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func ToClientResponse(c *domain.Client) ClientResponse {
	packages := make([]PackageSummary, 0, len(c.Packages))
	for _, p := range c.Packages {
		packages = append(packages, PackageSummary{
			ID:             p.ID,
			Name:           p.Name,
			TotalHours:     p.TotalHours,
			RemainingHours: p.RemainingHours,
			Bookings:       len(p.Bookings),
		})
	}

	return ClientResponse{
		ID:             c.ID,
		Name:           c.Name,
		Email:          c.Email,
		TelegramChatID: c.TelegramChatID,
		Packages:       packages,
		CreatedAt:      formatTime(c.CreatedAt),
		UpdatedAt:      formatTime(c.UpdatedAt),
	}
}

func ToPackageSummary(p *domain.Package) PackageSummary {
	return PackageSummary{
		ID:             p.ID,
		Name:           p.Name,
		TotalHours:     p.TotalHours,
		RemainingHours: p.RemainingHours,
		Bookings:       len(p.Bookings),
	}
}

func ToBalanceResponse(b ledger.Balance) BalanceResponse {
	return BalanceResponse{
		TotalHours:     b.TotalHours,
		CompletedHours: b.CompletedHours,
		BookedHours:    b.BookedHours,
		RemainingHours: b.RemainingHours,
		BookableHours:  b.BookableHours,
		LowHours:       b.LowHours,
	}
}

// ToPackageViewResponse renders the occurrences of a view; cancelled ones
// are dropped unless includeCancelled is set.
func ToPackageViewResponse(v *ledger.PackageView, includeCancelled bool) PackageViewResponse {
	occs := v.Occurrences
	if !includeCancelled {
		occs = v.Visible()
	}

	out := make([]OccurrenceResponse, 0, len(occs))
	for _, o := range occs {
		resp := OccurrenceResponse{
			Key:       o.Key,
			BookingID: o.BookingID,
			Type:      string(o.Type),
			Date:      o.DateKey,
			Start:     formatTime(o.Start),
			End:       formatTime(o.End),
			Hours:     o.Hours,
			Status:    string(o.Status),
			Label:     o.Label,
		}
		if o.Request != nil {
			r := ToRequestResponse(o.Request)
			resp.Request = &r
		}
		out = append(out, resp)
	}

	return PackageViewResponse{
		ID:          v.Package.ID,
		Name:        v.Package.Name,
		Balance:     ToBalanceResponse(v.Balance),
		Occurrences: out,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:          b.ID,
		Type:        string(b.Type),
		HoursBooked: b.HoursBooked,
	}
	if b.IsRecurring() {
		resp.Start = formatTime(b.StartDate)
		if b.Recurrence != nil {
			resp.Weeks = b.Recurrence.Weeks
			for _, d := range b.Recurrence.Days {
				resp.Days = append(resp.Days, string(d))
			}
		}
	} else {
		resp.Start = formatTime(b.DateTime)
	}
	return resp
}

func ToRequestResponse(r *domain.Request) RequestResponse {
	resp := RequestResponse{
		Kind:      string(r.Kind),
		Urgency:   string(r.Urgency),
		Status:    r.Status,
		Resolved:  r.Resolved,
		Outcome:   string(r.Outcome),
		CreatedAt: formatTime(r.CreatedAt),
	}
	if d := r.Details; d != nil {
		resp.ProposedDate = d.ProposedDate
		resp.From = d.From
		resp.To = d.To
		for _, w := range d.Availability {
			resp.Availability = append(resp.Availability, TimeWindow{Date: w.Date, From: w.From, To: w.To})
		}
	}
	if n := r.Notification; n != nil {
		resp.Notification = &Notification{Message: n.Message, NewBookingID: n.NewBookingID}
	}
	return resp
}

func ToResolveResponse(res *ledger.ResolveResult) ResolveResponse {
	resp := ResolveResponse{
		Request:        ToRequestResponse(&res.Request),
		RemainingHours: res.Package.RemainingHours,
	}
	if res.NewBooking != nil {
		b := ToBookingResponse(res.NewBooking)
		resp.NewBooking = &b
	}
	return resp
}

func ToPendingRequestResponse(p *domain.PendingRequest) PendingRequestResponse {
	return PendingRequestResponse{
		ClientID:    p.ClientID,
		ClientName:  p.ClientName,
		PackageID:   p.PackageID,
		PackageName: p.PackageName,
		BookingID:   p.BookingID,
		Date:        p.DateKey,
		LessonStart: formatTime(p.LessonStart),
		Hours:       p.Hours,
		Request:     ToRequestResponse(&p.Request),
	}
}

func ToOverviewResponse(o *domain.Overview) OverviewResponse {
	resp := OverviewResponse{
		GeneratedAt: formatTime(o.GeneratedAt),
		Upcoming:    make([]UpcomingLessonResponse, 0, len(o.Upcoming)),
		LowHours:    make([]LowHoursResponse, 0, len(o.LowHours)),
	}
	for _, l := range o.Upcoming {
		resp.Upcoming = append(resp.Upcoming, UpcomingLessonResponse{
			ClientID:    l.ClientID,
			ClientName:  l.ClientName,
			PackageID:   l.PackageID,
			PackageName: l.PackageName,
			BookingID:   l.BookingID,
			Date:        l.DateKey,
			Start:       formatTime(l.Start),
			Hours:       l.Hours,
			Pending:     l.Pending,
		})
	}
	for _, p := range o.LowHours {
		resp.LowHours = append(resp.LowHours, LowHoursResponse{
			ClientID:       p.ClientID,
			ClientName:     p.ClientName,
			PackageID:      p.PackageID,
			PackageName:    p.PackageName,
			RemainingHours: p.RemainingHours,
			BookableHours:  p.BookableHours,
		})
	}
	return resp
}
