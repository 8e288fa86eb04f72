package handler

import (
	"net/http"

	"github.com/stpnv0/HoursLedger/internal/domain"
	"github.com/stpnv0/HoursLedger/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateClient(c *ginext.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	client, err := h.clientService.Create(c.Request.Context(), domain.CreateClientInput{
		Name:           req.Name,
		Email:          req.Email,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

// ListClients returns every client, or the single client owning ?email=.
func (h *Handler) ListClients(c *ginext.Context) {
	if email := c.Query("email"); email != "" {
		client, err := h.clientService.GetByEmail(c.Request.Context(), email)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, []dto.ClientResponse{dto.ToClientResponse(client)})
		return
	}

	clients, err := h.clientService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ClientResponse, 0, len(clients))
	for _, cl := range clients {
		resp = append(resp, dto.ToClientResponse(cl))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetClient(c *ginext.Context) {
	id, ok := uuidParam(c, "id", "client")
	if !ok {
		return
	}

	client, err := h.clientService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

func (h *Handler) UpdateClient(c *ginext.Context) {
	id, ok := uuidParam(c, "id", "client")
	if !ok {
		return
	}

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	client, err := h.clientService.Update(c.Request.Context(), id, domain.UpdateClientInput{
		Name:           req.Name,
		Email:          req.Email,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

func (h *Handler) DeleteClient(c *ginext.Context) {
	id, ok := uuidParam(c, "id", "client")
	if !ok {
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ClientCalendar(c *ginext.Context) {
	id, ok := uuidParam(c, "id", "client")
	if !ok {
		return
	}

	feed, err := h.ledgerService.CalendarFeed(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/calendar; charset=utf-8", feed)
}
