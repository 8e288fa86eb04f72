package domain

type Package struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	TotalHours     float64   `json:"totalHours"`
	RemainingHours float64   `json:"remainingHours"`
	Bookings       []Booking `json:"bookings"`
}

type CreatePackageInput struct {
	Name       string
	TotalHours float64
}

// UpdatePackageInput carries the editable package fields; nil leaves a
// field untouched.
type UpdatePackageInput struct {
	Name       *string
	TotalHours *float64
}

// Clone deep-copies the package so mutations never alias the caller's
// bookings, date slices or request maps.
func (p Package) Clone() Package {
	out := p
	if p.Bookings != nil {
		out.Bookings = make([]Booking, len(p.Bookings))
		for i, b := range p.Bookings {
			out.Bookings[i] = b.Clone()
		}
	}
	return out
}

func (p *Package) BookingIndex(id string) int {
	for i := range p.Bookings {
		if p.Bookings[i].ID == id {
			return i
		}
	}
	return -1
}
