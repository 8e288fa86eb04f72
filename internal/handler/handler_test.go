package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/HoursLedger/internal/domain"
	"github.com/stpnv0/HoursLedger/internal/handler/dto"
	hmocks "github.com/stpnv0/HoursLedger/internal/handler/mocks"
	"github.com/stpnv0/HoursLedger/internal/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockClientSvc, *hmocks.MockLedgerSvc, http.Handler) {
	t.Helper()
	clientSvc := hmocks.NewMockClientSvc(t)
	ledgerSvc := hmocks.NewMockLedgerSvc(t)

	h := NewHandler(clientSvc, ledgerSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/clients", h.CreateClient)
		api.GET("/clients", h.ListClients)
		api.GET("/clients/:id", h.GetClient)
		api.PUT("/clients/:id", h.UpdateClient)
		api.DELETE("/clients/:id", h.DeleteClient)
		api.GET("/clients/:id/calendar.ics", h.ClientCalendar)

		api.POST("/clients/:id/packages", h.CreatePackage)
		api.GET("/clients/:id/packages/:pkg", h.GetPackage)
		api.PUT("/clients/:id/packages/:pkg", h.UpdatePackage)
		api.DELETE("/clients/:id/packages/:pkg", h.DeletePackage)

		occ := api.Group("/clients/:id/packages/:pkg/bookings")
		occ.POST("", h.CreateBooking)
		occ.DELETE("/:booking/occurrences/:date", h.DeleteOccurrence)
		occ.GET("/:booking/occurrences/:date/availability", h.AvailableDays)
		occ.POST("/:booking/occurrences/:date/request", h.RequestChange)
		occ.POST("/:booking/occurrences/:date/resolve", h.ResolveRequest)

		api.GET("/requests", h.PendingRequests)
		api.GET("/overview", h.Overview)
		api.POST("/sweep", h.RunSweep)
	}

	return clientSvc, ledgerSvc, r
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case []byte:
			buf.Write(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func occurrencePath(clientID, pkgID, bookingID, date, action string) string {
	p := fmt.Sprintf("/api/clients/%s/packages/%s/bookings/%s/occurrences/%s", clientID, pkgID, bookingID, date)
	if action != "" {
		p += "/" + action
	}
	return p
}

// --- Clients ---

func TestHandler_CreateClient_Success(t *testing.T) {
	clientSvc, _, r := setupRouter(t)

	chatID := int64(42)
	client := &domain.Client{
		ID:             uuid.New().String(),
		Name:           "Anna",
		Email:          "anna@example.com",
		TelegramChatID: &chatID,
		CreatedAt:      time.Now(),
	}

	clientSvc.EXPECT().
		Create(mock.Anything, domain.CreateClientInput{Name: "Anna", Email: "anna@example.com", TelegramChatID: &chatID}).
		Return(client, nil)

	w := doJSON(r, http.MethodPost, "/api/clients", dto.CreateClientRequest{
		Name: "Anna", Email: "anna@example.com", TelegramChatID: &chatID,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ClientResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Anna", resp.Name)
	assert.Empty(t, resp.Packages)
}

func TestHandler_CreateClient_BadRequest(t *testing.T) {
	_, _, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/clients", []byte(`{"email":"x@example.com"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateClient_EmailTaken(t *testing.T) {
	clientSvc, _, r := setupRouter(t)

	clientSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w := doJSON(r, http.MethodPost, "/api/clients", dto.CreateClientRequest{Name: "Anna", Email: "anna@example.com"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetClient_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/clients/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetClient_NotFound(t *testing.T) {
	clientSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	clientSvc.EXPECT().GetByID(mock.Anything, id).
		Return(nil, fmt.Errorf("get client: %w", domain.ErrClientNotFound))

	w := doJSON(r, http.MethodGet, "/api/clients/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetClient_SummarisesPackages(t *testing.T) {
	clientSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	clientSvc.EXPECT().GetByID(mock.Anything, id).Return(&domain.Client{
		ID:   id,
		Name: "Anna",
		Packages: []domain.Package{{
			ID: "p1", Name: "Maths", TotalHours: 20, RemainingHours: 18,
			Bookings: []domain.Booking{{ID: "b1"}, {ID: "b2"}},
		}},
	}, nil)

	w := doJSON(r, http.MethodGet, "/api/clients/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ClientResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Packages, 1)
	assert.Equal(t, 18.0, resp.Packages[0].RemainingHours)
	assert.Equal(t, 2, resp.Packages[0].Bookings)
}

func TestHandler_ListClients_ByEmail(t *testing.T) {
	clientSvc, _, r := setupRouter(t)

	clientSvc.EXPECT().GetByEmail(mock.Anything, "anna@example.com").
		Return(&domain.Client{ID: uuid.New().String(), Name: "Anna"}, nil)

	w := doJSON(r, http.MethodGet, "/api/clients?email=anna@example.com", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ClientResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Anna", resp[0].Name)
}

func TestHandler_ListClients_All(t *testing.T) {
	clientSvc, _, r := setupRouter(t)

	clientSvc.EXPECT().List(mock.Anything).Return([]*domain.Client{
		{ID: uuid.New().String(), Name: "Anna"},
		{ID: uuid.New().String(), Name: "Boris"},
	}, nil)

	w := doJSON(r, http.MethodGet, "/api/clients", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ClientResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_DeleteClient(t *testing.T) {
	clientSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	clientSvc.EXPECT().Delete(mock.Anything, id).Return(nil)

	w := doJSON(r, http.MethodDelete, "/api/clients/"+id, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_ClientCalendar(t *testing.T) {
	_, ledgerSvc, r := setupRouter(t)

	id := uuid.New().String()
	ledgerSvc.EXPECT().CalendarFeed(mock.Anything, id).Return([]byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"), nil)

	w := doJSON(r, http.MethodGet, "/api/clients/"+id+"/calendar.ics", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/calendar")
	assert.Contains(t, w.Body.String(), "BEGIN:VCALENDAR")
}

// --- Packages ---

func TestHandler_CreatePackage_RejectsZeroHours(t *testing.T) {
	_, _, r := setupRouter(t)

	id := uuid.New().String()
	w := doJSON(r, http.MethodPost, "/api/clients/"+id+"/packages", []byte(`{"name":"Maths","total_hours":0}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreatePackage_Success(t *testing.T) {
	_, ledgerSvc, r := setupRouter(t)

	clientID := uuid.New().String()
	pkgID := uuid.New().String()
	ledgerSvc.EXPECT().
		CreatePackage(mock.Anything, clientID, domain.CreatePackageInput{Name: "Maths", TotalHours: 20}).
		Return(&domain.Package{ID: pkgID, Name: "Maths", TotalHours: 20, RemainingHours: 20}, nil)

	w := doJSON(r, http.MethodPost, "/api/clients/"+clientID+"/packages", dto.CreatePackageRequest{Name: "Maths", TotalHours: 20})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.PackageSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, pkgID, resp.ID)
	assert.Equal(t, 20.0, resp.RemainingHours)
}

func TestHandler_GetPackage_HidesCancelled(t *testing.T) {
	_, ledgerSvc, r := setupRouter(t)

	clientID := uuid.New().String()
	pkgID := uuid.New().String()
	start := time.Date(2026, 10, 21, 9, 0, 0, 0, time.UTC)
	view := &ledger.PackageView{
		Package: domain.Package{ID: pkgID, Name: "Maths", TotalHours: 20, RemainingHours: 20},
		Occurrences: []ledger.Occurrence{
			{Key: "b1-2026-10-21", BookingID: "b1", DateKey: "2026-10-21", Start: start, Hours: 1, Status: ledger.StatusScheduled},
			{Key: "b1-2026-10-28", BookingID: "b1", DateKey: "2026-10-28", Start: start.AddDate(0, 0, 7), Hours: 1, Status: ledger.StatusCancelled},
		},
		Balance: ledger.Balance{TotalHours: 20, BookedHours: 1, RemainingHours: 20, BookableHours: 19},
	}
	ledgerSvc.EXPECT().PackageView(mock.Anything, clientID, pkgID).Return(view, nil).Times(2)

	path := "/api/clients/" + clientID + "/packages/" + pkgID

	w := doJSON(r, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.PackageViewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Occurrences, 1)
	assert.Equal(t, "b1-2026-10-21", resp.Occurrences[0].Key)
	assert.Equal(t, 19.0, resp.Balance.BookableHours)

	w = doJSON(r, http.MethodGet, path+"?include_cancelled=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Occurrences, 2)
}

func TestHandler_GetPackage_InvalidPackageID(t *testing.T) {
	_, _, r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/clients/"+uuid.New().String()+"/packages/nope", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_InvalidStart(t *testing.T) {
	_, _, r := setupRouter(t)

	path := "/api/clients/" + uuid.New().String() + "/packages/" + uuid.New().String() + "/bookings"
	w := doJSON(r, http.MethodPost, path, []byte(`{"type":"single","start":"tomorrow","hours_booked":1}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_InsufficientHours(t *testing.T) {
	_, ledgerSvc, r := setupRouter(t)

	clientID := uuid.New().String()
	pkgID := uuid.New().String()
	start := time.Date(2026, 10, 19, 17, 0, 0, 0, time.UTC)

	ledgerSvc.EXPECT().
		CreateBooking(mock.Anything, clientID, pkgID, domain.CreateBookingInput{
			Type:        domain.BookingTypeRecurring,
			Start:       start,
			HoursBooked: 2,
			Weeks:       5,
			Days:        []domain.Weekday{domain.Monday, domain.Wednesday, domain.Friday},
		}).
		Return(nil, fmt.Errorf("%w: need 30h, 10h bookable", domain.ErrInsufficientHours))

	w := doJSON(r, http.MethodPost, "/api/clients/"+clientID+"/packages/"+pkgID+"/bookings", dto.CreateBookingRequest{
		Type:        "recurring",
		Start:       start.Format(time.RFC3339),
		HoursBooked: 2,
		Weeks:       5,
		Days:        []string{"mon", "wed", "fri"},
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateBooking_Success(t *testing.T) {
	_, ledgerSvc, r := setupRouter(t)

	clientID := uuid.New().String()
	pkgID := uuid.New().String()
	start := time.Date(2026, 10, 19, 17, 0, 0, 0, time.UTC)

	ledgerSvc.EXPECT().CreateBooking(mock.Anything, clientID, pkgID, mock.Anything).
		Return(&domain.Booking{ID: "b1", Type: domain.BookingTypeSingle, DateTime: start, HoursBooked: 1.5}, nil)

	w := doJSON(r, http.MethodPost, "/api/clients/"+clientID+"/packages/"+pkgID+"/bookings", dto.CreateBookingRequest{
		Type: "single", Start: start.Format(time.RFC3339), HoursBooked: 1.5,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "b1", resp.ID)
	assert.Equal(t, start.Format(time.RFC3339), resp.Start)
}

func TestHandler_DeleteOccurrence_InvalidDate(t *testing.T) {
	_, _, r := setupRouter(t)

	path := occurrencePath(uuid.New().String(), uuid.New().String(), "b1", "21-10-2026", "")
	w := doJSON(r, http.MethodDelete, path, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteOccurrence_Success(t *testing.T) {
	_, ledgerSvc, r := setupRouter(t)

	clientID := uuid.New().String()
	pkgID := uuid.New().String()
	ref := ledger.OccurrenceRef{BookingID: "b1", DateKey: "2026-10-21"}
	ledgerSvc.EXPECT().DeleteOccurrence(mock.Anything, clientID, pkgID, ref).Return(nil)

	w := doJSON(r, http.MethodDelete, occurrencePath(clientID, pkgID, "b1", "2026-10-21", ""), nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_AvailableDays_EmptyIsArray(t *testing.T) {
	_, ledgerSvc, r := setupRouter(t)

	ledgerSvc.EXPECT().AvailableDays(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	w := doJSON(r, http.MethodGet, occurrencePath(uuid.New().String(), uuid.New().String(), "b1", "2026-10-21", "availability"), nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"days":[]}`, w.Body.String())
}

func TestHandler_RequestChange_DefaultsToReschedule(t *testing.T) {
	_, ledgerSvc, r := setupRouter(t)

	clientID := uuid.New().String()
	pkgID := uuid.New().String()
	ref := ledger.OccurrenceRef{BookingID: "b1", DateKey: "2026-10-21"}

	ledgerSvc.EXPECT().
		RequestChange(mock.Anything, clientID, pkgID, ref, mock.MatchedBy(func(in domain.RequestChangeInput) bool {
			return in.Kind == domain.RequestKindReschedule &&
				len(in.Availability) == 1 &&
				in.Availability[0] == domain.TimeWindow{Date: "2026-10-19", From: "10:00", To: "12:00"}
		})).
		Return(&domain.Request{
			Kind:     domain.RequestKindReschedule,
			Urgency:  domain.UrgencyUrgent,
			Status:   "Urgent reschedule request pending",
			Details:  &domain.RequestDetails{Availability: []domain.TimeWindow{{Date: "2026-10-19", From: "10:00", To: "12:00"}}},
			Resolved: false,
		}, nil)

	w := doJSON(r, http.MethodPost, occurrencePath(clientID, pkgID, "b1", "2026-10-21", "request"), dto.RequestChangeRequest{
		Availability: []dto.TimeWindow{{Date: "2026-10-19", From: "10:00", To: "12:00"}},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "urgent", resp.Urgency)
	assert.Len(t, resp.Availability, 1)
}

func TestHandler_RequestChange_Duplicate(t *testing.T) {
	_, ledgerSvc, r := setupRouter(t)

	ledgerSvc.EXPECT().RequestChange(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrDuplicateRequest)

	w := doJSON(r, http.MethodPost, occurrencePath(uuid.New().String(), uuid.New().String(), "b1", "2026-10-21", "request"),
		dto.RequestChangeRequest{Kind: "cancellation"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_RequestChange_UnknownKind(t *testing.T) {
	_, _, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, occurrencePath(uuid.New().String(), uuid.New().String(), "b1", "2026-10-21", "request"),
		[]byte(`{"kind":"swap"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ResolveRequest_Approved(t *testing.T) {
	_, ledgerSvc, r := setupRouter(t)

	clientID := uuid.New().String()
	pkgID := uuid.New().String()
	newStart := time.Date(2026, 10, 23, 15, 0, 0, 0, time.UTC)

	ledgerSvc.EXPECT().
		ResolveRequest(mock.Anything, clientID, pkgID,
			ledger.OccurrenceRef{BookingID: "b1", DateKey: "2026-10-21"},
			domain.Resolution{Outcome: domain.OutcomeApproved, NewStart: newStart}).
		Return(&ledger.ResolveResult{
			Package: domain.Package{ID: pkgID, RemainingHours: 19},
			Request: domain.Request{
				Kind:         domain.RequestKindReschedule,
				Resolved:     true,
				Outcome:      domain.OutcomeApproved,
				Notification: &domain.Notification{Message: "moved", NewBookingID: "b7"},
			},
			NewBooking: &domain.Booking{ID: "b7", Type: domain.BookingTypeSingle, DateTime: newStart, HoursBooked: 1},
		}, nil)

	w := doJSON(r, http.MethodPost, occurrencePath(clientID, pkgID, "b1", "2026-10-21", "resolve"), dto.ResolveRequest{
		Outcome:  "approved",
		NewStart: newStart.Format(time.RFC3339),
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ResolveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.NewBooking)
	assert.Equal(t, "b7", resp.NewBooking.ID)
	assert.Equal(t, "b7", resp.Request.Notification.NewBookingID)
	assert.Equal(t, 19.0, resp.RemainingHours)
}

func TestHandler_ResolveRequest_AlreadyResolved(t *testing.T) {
	_, ledgerSvc, r := setupRouter(t)

	ledgerSvc.EXPECT().ResolveRequest(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrRequestNotPending)

	w := doJSON(r, http.MethodPost, occurrencePath(uuid.New().String(), uuid.New().String(), "b1", "2026-10-21", "resolve"),
		dto.ResolveRequest{Outcome: "rejected"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Inbox ---

func TestHandler_PendingRequests(t *testing.T) {
	_, ledgerSvc, r := setupRouter(t)

	ledgerSvc.EXPECT().PendingRequests(mock.Anything).Return([]domain.PendingRequest{{
		ClientID:    "c1",
		ClientName:  "Anna",
		PackageID:   "p1",
		BookingID:   "b1",
		DateKey:     "2026-10-21",
		LessonStart: time.Date(2026, 10, 21, 9, 0, 0, 0, time.UTC),
		Hours:       1,
		Request:     domain.Request{Kind: domain.RequestKindCancellation, Urgency: domain.UrgencyUrgent},
	}}, nil)

	w := doJSON(r, http.MethodGet, "/api/requests", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []dto.PendingRequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "cancellation", resp[0].Request.Kind)
	assert.Equal(t, "2026-10-21", resp[0].Date)
}

func TestHandler_Overview(t *testing.T) {
	_, ledgerSvc, r := setupRouter(t)

	ledgerSvc.EXPECT().Overview(mock.Anything).Return(&domain.Overview{
		GeneratedAt: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC),
		LowHours:    []domain.LowHoursPackage{{ClientName: "Anna", PackageName: "Maths", RemainingHours: 1}},
	}, nil)

	w := doJSON(r, http.MethodGet, "/api/overview", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.OverviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Upcoming)
	require.Len(t, resp.LowHours, 1)
	assert.Equal(t, 1.0, resp.LowHours[0].RemainingHours)
}

func TestHandler_RunSweep_InternalError(t *testing.T) {
	_, ledgerSvc, r := setupRouter(t)

	ledgerSvc.EXPECT().Sweep(mock.Anything).Return(domain.SweepReport{}, errors.New("db down"))

	w := doJSON(r, http.MethodPost, "/api/sweep", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db down")
}
