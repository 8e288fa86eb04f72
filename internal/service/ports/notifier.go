package ports

import (
	"context"

	"github.com/stpnv0/HoursLedger/internal/domain"
)

type LedgerNotifier interface {
	NotifyRequestCreated(ctx context.Context, req domain.PendingRequest)
	NotifyRequestResolved(ctx context.Context, client *domain.Client, req domain.PendingRequest)
	SendDigest(ctx context.Context, overview *domain.Overview)
}
