package service

import (
	"testing"
	"time"

	"github.com/stpnv0/HoursLedger/internal/calendar"
	"github.com/stpnv0/HoursLedger/internal/ledger"
	"github.com/stpnv0/HoursLedger/internal/service/ports/mocks"
	"github.com/wb-go/wbf/logger"
)

var testNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func fixedClock() calendar.Clock {
	return calendar.ClockFunc(func() time.Time { return testNow })
}

func newLedgerService(t *testing.T) (*LedgerService, *mocks.MockClientRepo, *mocks.MockLedgerNotifier) {
	t.Helper()
	repo := mocks.NewMockClientRepo(t)
	notifier := mocks.NewMockLedgerNotifier(t)
	engine := ledger.New(calendar.New(time.UTC), ledger.DefaultPolicy())

	svc := NewLedgerService(repo, engine, notifier, fixedClock(), newTestLogger(t))
	return svc, repo, notifier
}
