package handler

import (
	"net/http"

	"github.com/stpnv0/HoursLedger/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) PendingRequests(c *ginext.Context) {
	pending, err := h.ledgerService.PendingRequests(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.PendingRequestResponse, 0, len(pending))
	for i := range pending {
		resp = append(resp, dto.ToPendingRequestResponse(&pending[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Overview(c *ginext.Context) {
	overview, err := h.ledgerService.Overview(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOverviewResponse(overview))
}

// RunSweep triggers a reconciliation pass outside the scheduler.
func (h *Handler) RunSweep(c *ginext.Context) {
	report, err := h.ledgerService.Sweep(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{
		"clients":   report.Clients,
		"packages":  report.Packages,
		"completed": report.Completed,
		"updated":   report.Updated,
		"failed":    report.Failed,
	})
}
