package handler

import (
	"net/http"
	"time"

	"github.com/stpnv0/HoursLedger/internal/domain"
	"github.com/stpnv0/HoursLedger/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateBooking(c *ginext.Context) {
	clientID, packageID, ok := packageParams(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := time.Parse(time.RFC3339, req.Start)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start format, expected RFC3339",
		})
		return
	}

	input := domain.CreateBookingInput{
		Type:        domain.BookingType(req.Type),
		Start:       start,
		HoursBooked: req.HoursBooked,
		Weeks:       req.Weeks,
	}
	for _, d := range req.Days {
		input.Days = append(input.Days, domain.Weekday(d))
	}

	booking, err := h.ledgerService.CreateBooking(c.Request.Context(), clientID, packageID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) DeleteOccurrence(c *ginext.Context) {
	clientID, packageID, ref, ok := occurrenceParams(c)
	if !ok {
		return
	}

	if err := h.ledgerService.DeleteOccurrence(c.Request.Context(), clientID, packageID, ref); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) AvailableDays(c *ginext.Context) {
	clientID, packageID, ref, ok := occurrenceParams(c)
	if !ok {
		return
	}

	days, err := h.ledgerService.AvailableDays(c.Request.Context(), clientID, packageID, ref)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if days == nil {
		days = []string{}
	}

	c.JSON(http.StatusOK, dto.AvailableDaysResponse{Days: days})
}

func (h *Handler) RequestChange(c *ginext.Context) {
	clientID, packageID, ref, ok := occurrenceParams(c)
	if !ok {
		return
	}

	var req dto.RequestChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.RequestChangeInput{
		Kind:         domain.RequestKind(req.Kind),
		ProposedDate: req.ProposedDate,
		From:         req.From,
		To:           req.To,
	}
	if input.Kind == "" {
		input.Kind = domain.RequestKindReschedule
	}
	for _, w := range req.Availability {
		input.Availability = append(input.Availability, domain.TimeWindow{Date: w.Date, From: w.From, To: w.To})
	}

	request, err := h.ledgerService.RequestChange(c.Request.Context(), clientID, packageID, ref, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRequestResponse(request))
}

func (h *Handler) ResolveRequest(c *ginext.Context) {
	clientID, packageID, ref, ok := occurrenceParams(c)
	if !ok {
		return
	}

	var req dto.ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res := domain.Resolution{
		Outcome: domain.RequestOutcome(req.Outcome),
		Message: req.Message,
	}
	if req.NewStart != "" {
		start, err := time.Parse(time.RFC3339, req.NewStart)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid new_start format, expected RFC3339",
			})
			return
		}
		res.NewStart = start
	}

	result, err := h.ledgerService.ResolveRequest(c.Request.Context(), clientID, packageID, ref, res)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToResolveResponse(result))
}
