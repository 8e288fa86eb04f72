package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/HoursLedger/internal/domain"
	"github.com/stpnv0/HoursLedger/internal/handler/dto"
	"github.com/stpnv0/HoursLedger/internal/ledger"
	"github.com/wb-go/wbf/ginext"
)

const dateKeyLayout = "2006-01-02"

type ClientSvc interface {
	Create(ctx context.Context, input domain.CreateClientInput) (*domain.Client, error)
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	GetByEmail(ctx context.Context, email string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, id string, input domain.UpdateClientInput) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
}

type LedgerSvc interface {
	CreatePackage(ctx context.Context, clientID string, input domain.CreatePackageInput) (*domain.Package, error)
	UpdatePackage(ctx context.Context, clientID, packageID string, input domain.UpdatePackageInput) (*domain.Package, error)
	DeletePackage(ctx context.Context, clientID, packageID string) error
	PackageView(ctx context.Context, clientID, packageID string) (*ledger.PackageView, error)
	CreateBooking(ctx context.Context, clientID, packageID string, input domain.CreateBookingInput) (*domain.Booking, error)
	DeleteOccurrence(ctx context.Context, clientID, packageID string, ref ledger.OccurrenceRef) error
	AvailableDays(ctx context.Context, clientID, packageID string, ref ledger.OccurrenceRef) ([]string, error)
	RequestChange(ctx context.Context, clientID, packageID string, ref ledger.OccurrenceRef, input domain.RequestChangeInput) (*domain.Request, error)
	ResolveRequest(ctx context.Context, clientID, packageID string, ref ledger.OccurrenceRef, res domain.Resolution) (*ledger.ResolveResult, error)
	PendingRequests(ctx context.Context) ([]domain.PendingRequest, error)
	Overview(ctx context.Context) (*domain.Overview, error)
	Sweep(ctx context.Context) (domain.SweepReport, error)
	CalendarFeed(ctx context.Context, clientID string) ([]byte, error)
}

type Handler struct {
	clientService ClientSvc
	ledgerService LedgerSvc
}

func NewHandler(clientService ClientSvc, ledgerService LedgerSvc) *Handler {
	return &Handler{
		clientService: clientService,
		ledgerService: ledgerService,
	}
}

// uuidParam reads a path parameter that must be a UUID. On failure the
// response is already written.
func uuidParam(c *ginext.Context, name, what string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + what + " id"})
		return "", false
	}
	return id, true
}

func packageParams(c *ginext.Context) (clientID, packageID string, ok bool) {
	if clientID, ok = uuidParam(c, "id", "client"); !ok {
		return "", "", false
	}
	if packageID, ok = uuidParam(c, "pkg", "package"); !ok {
		return "", "", false
	}
	return clientID, packageID, true
}

func occurrenceParams(c *ginext.Context) (clientID, packageID string, ref ledger.OccurrenceRef, ok bool) {
	if clientID, packageID, ok = packageParams(c); !ok {
		return "", "", ref, false
	}

	ref.BookingID = c.Param("booking")
	if ref.BookingID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return "", "", ref, false
	}

	ref.DateKey = c.Param("date")
	if _, err := time.Parse(dateKeyLayout, ref.DateKey); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date, expected YYYY-MM-DD"})
		return "", "", ref, false
	}

	return clientID, packageID, ref, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInsufficientHours),
		errors.Is(err, domain.ErrDuplicateRequest),
		errors.Is(err, domain.ErrRequestNotPending):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
