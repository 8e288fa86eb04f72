package handler

import (
	"net/http"

	"github.com/stpnv0/HoursLedger/internal/domain"
	"github.com/stpnv0/HoursLedger/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreatePackage(c *ginext.Context) {
	clientID, ok := uuidParam(c, "id", "client")
	if !ok {
		return
	}

	var req dto.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	pkg, err := h.ledgerService.CreatePackage(c.Request.Context(), clientID, domain.CreatePackageInput{
		Name:       req.Name,
		TotalHours: req.TotalHours,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPackageSummary(pkg))
}

func (h *Handler) GetPackage(c *ginext.Context) {
	clientID, packageID, ok := packageParams(c)
	if !ok {
		return
	}

	view, err := h.ledgerService.PackageView(c.Request.Context(), clientID, packageID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	all := c.Query("include_cancelled") == "true"
	c.JSON(http.StatusOK, dto.ToPackageViewResponse(view, all))
}

func (h *Handler) UpdatePackage(c *ginext.Context) {
	clientID, packageID, ok := packageParams(c)
	if !ok {
		return
	}

	var req dto.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	pkg, err := h.ledgerService.UpdatePackage(c.Request.Context(), clientID, packageID, domain.UpdatePackageInput{
		Name:       req.Name,
		TotalHours: req.TotalHours,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPackageSummary(pkg))
}

func (h *Handler) DeletePackage(c *ginext.Context) {
	clientID, packageID, ok := packageParams(c)
	if !ok {
		return
	}

	if err := h.ledgerService.DeletePackage(c.Request.Context(), clientID, packageID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
