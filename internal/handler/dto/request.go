package dto

type CreateClientRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type UpdateClientRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type CreatePackageRequest struct {
	Name       string  `json:"name" binding:"required"`
	TotalHours float64 `json:"total_hours" binding:"required,gt=0"`
}

type UpdatePackageRequest struct {
	Name       *string  `json:"name"`
	TotalHours *float64 `json:"total_hours" binding:"omitempty,gt=0"`
}

type CreateBookingRequest struct {
	Type        string   `json:"type" binding:"required,oneof=single recurring"`
	Start       string   `json:"start" binding:"required"`
	HoursBooked float64  `json:"hours_booked" binding:"required,gt=0"`
	Weeks       int      `json:"weeks"`
	Days        []string `json:"days"`
}

type TimeWindow struct {
	Date string `json:"date" binding:"required"`
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}

type RequestChangeRequest struct {
	Kind         string       `json:"kind" binding:"omitempty,oneof=reschedule cancellation"`
	ProposedDate string       `json:"proposed_date"`
	From         string       `json:"from"`
	To           string       `json:"to"`
	Availability []TimeWindow `json:"availability" binding:"dive"`
}

type ResolveRequest struct {
	Outcome  string `json:"outcome" binding:"required,oneof=approved rejected"`
	NewStart string `json:"new_start"`
	Message  string `json:"message"`
}
