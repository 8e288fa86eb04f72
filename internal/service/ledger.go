package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/HoursLedger/internal/calendar"
	"github.com/stpnv0/HoursLedger/internal/domain"
	"github.com/stpnv0/HoursLedger/internal/ledger"
	"github.com/stpnv0/HoursLedger/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// LedgerService loads a client document, runs one engine operation on a
// package snapshot and writes the whole packages array back.
type LedgerService struct {
	repo     ports.ClientRepo
	engine   *ledger.Engine
	notifier ports.LedgerNotifier
	clock    calendar.Clock
	logger   logger.Logger
}

func NewLedgerService(
	repo ports.ClientRepo,
	engine *ledger.Engine,
	notifier ports.LedgerNotifier,
	clock calendar.Clock,
	logger logger.Logger,
) *LedgerService {
	return &LedgerService{
		repo:     repo,
		engine:   engine,
		notifier: notifier,
		clock:    clock,
		logger:   logger,
	}
}

type packageOp func(pkg domain.Package, now time.Time) (domain.Package, error)

// mutate applies op to one package and persists the result. Nothing is
// written when op fails.
func (s *LedgerService) mutate(ctx context.Context, clientID, packageID string, op packageOp) (*domain.Client, domain.Package, error) {
	client, err := s.repo.GetByID(ctx, clientID)
	if err != nil {
		return nil, domain.Package{}, fmt.Errorf("get client: %w", err)
	}

	idx := client.PackageIndex(packageID)
	if idx < 0 {
		return nil, domain.Package{}, domain.ErrPackageNotFound
	}

	pkg, err := op(client.Packages[idx], s.clock.Now())
	if err != nil {
		return nil, domain.Package{}, err
	}

	client.Packages = client.WithPackage(pkg)
	if err = s.repo.UpdatePackages(ctx, client.ID, client.Packages); err != nil {
		return nil, domain.Package{}, fmt.Errorf("update packages: %w", err)
	}

	return client, pkg, nil
}

func (s *LedgerService) loadPackage(ctx context.Context, clientID, packageID string) (*domain.Client, domain.Package, error) {
	client, err := s.repo.GetByID(ctx, clientID)
	if err != nil {
		return nil, domain.Package{}, fmt.Errorf("get client: %w", err)
	}

	idx := client.PackageIndex(packageID)
	if idx < 0 {
		return nil, domain.Package{}, domain.ErrPackageNotFound
	}

	return client, client.Packages[idx], nil
}

// PackageView resolves a package at the current time.
func (s *LedgerService) PackageView(ctx context.Context, clientID, packageID string) (*ledger.PackageView, error) {
	_, pkg, err := s.loadPackage(ctx, clientID, packageID)
	if err != nil {
		return nil, err
	}

	view, err := s.engine.Resolve(pkg, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("resolve package: %w", err)
	}

	return &view, nil
}

func (s *LedgerService) CreateBooking(ctx context.Context, clientID, packageID string, input domain.CreateBookingInput) (*domain.Booking, error) {
	var booking domain.Booking
	_, _, err := s.mutate(ctx, clientID, packageID, func(pkg domain.Package, now time.Time) (domain.Package, error) {
		out, b, err := s.engine.CreateBooking(pkg, input, now)
		booking = b
		return out, err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		logger.String("client_id", clientID),
		logger.String("package_id", packageID),
		logger.String("booking_id", booking.ID),
		logger.String("type", string(booking.Type)),
	)

	return &booking, nil
}

func (s *LedgerService) DeleteOccurrence(ctx context.Context, clientID, packageID string, ref ledger.OccurrenceRef) error {
	_, _, err := s.mutate(ctx, clientID, packageID, func(pkg domain.Package, now time.Time) (domain.Package, error) {
		return s.engine.DeleteOccurrence(pkg, ref, now)
	})
	if err != nil {
		return err
	}

	s.logger.Info("occurrence deleted",
		logger.String("client_id", clientID),
		logger.String("package_id", packageID),
		logger.String("booking_id", ref.BookingID),
		logger.String("date", ref.DateKey),
	)

	return nil
}

// AvailableDays lists the days a client may offer for an urgent
// reschedule of the referenced lesson.
func (s *LedgerService) AvailableDays(ctx context.Context, clientID, packageID string, ref ledger.OccurrenceRef) ([]string, error) {
	_, pkg, err := s.loadPackage(ctx, clientID, packageID)
	if err != nil {
		return nil, err
	}
	return s.engine.AvailableDays(pkg, ref, s.clock.Now())
}

func (s *LedgerService) RequestChange(ctx context.Context, clientID, packageID string, ref ledger.OccurrenceRef, input domain.RequestChangeInput) (*domain.Request, error) {
	var pending domain.PendingRequest
	client, _, err := s.mutate(ctx, clientID, packageID, func(pkg domain.Package, now time.Time) (domain.Package, error) {
		pending = s.describe(pkg, ref)
		out, req, err := s.engine.RequestChange(pkg, ref, input, now)
		pending.Request = req
		return out, err
	})
	if err != nil {
		return nil, err
	}
	pending.ClientID, pending.ClientName = client.ID, client.Name

	s.logger.Info("change requested",
		logger.String("client_id", clientID),
		logger.String("booking_id", ref.BookingID),
		logger.String("date", pending.DateKey),
		logger.String("kind", string(pending.Request.Kind)),
		logger.String("urgency", string(pending.Request.Urgency)),
	)

	go s.notifier.NotifyRequestCreated(context.WithoutCancel(ctx), pending)

	return &pending.Request, nil
}

func (s *LedgerService) ResolveRequest(ctx context.Context, clientID, packageID string, ref ledger.OccurrenceRef, res domain.Resolution) (*ledger.ResolveResult, error) {
	var (
		result  ledger.ResolveResult
		pending domain.PendingRequest
	)
	client, _, err := s.mutate(ctx, clientID, packageID, func(pkg domain.Package, now time.Time) (domain.Package, error) {
		pending = s.describe(pkg, ref)
		r, err := s.engine.ResolveRequest(pkg, ref, res, now)
		result = r
		return r.Package, err
	})
	if err != nil {
		return nil, err
	}
	pending.ClientID, pending.ClientName = client.ID, client.Name
	pending.Request = result.Request

	s.logger.Info("request resolved",
		logger.String("client_id", clientID),
		logger.String("booking_id", ref.BookingID),
		logger.String("date", pending.DateKey),
		logger.String("outcome", string(result.Request.Outcome)),
	)

	go s.notifier.NotifyRequestResolved(context.WithoutCancel(ctx), client, pending)

	return &result, nil
}

// describe fills the lesson part of a PendingRequest from the package
// state before the mutation, since a resolution may remove the booking.
func (s *LedgerService) describe(pkg domain.Package, ref ledger.OccurrenceRef) domain.PendingRequest {
	out := domain.PendingRequest{
		PackageID:   pkg.ID,
		PackageName: pkg.Name,
		BookingID:   ref.BookingID,
		DateKey:     ref.DateKey,
	}

	idx := pkg.BookingIndex(ref.BookingID)
	if idx < 0 {
		return out
	}
	occs, err := s.engine.Expand(pkg.Bookings[idx])
	if err != nil {
		return out
	}

	for _, o := range occs {
		if o.DateKey == ref.DateKey || (ref.DateKey == "" && o.Type == domain.BookingTypeSingle) {
			out.DateKey = o.DateKey
			out.LessonStart = o.Start
			out.Hours = o.Hours
			break
		}
	}
	return out
}
