package reconciliation

import (
	"context"
	"errors"
	"time"

	"github.com/radhian/reservation-reconciliation/consts"
	"github.com/radhian/reservation-reconciliation/entity"
	"github.com/radhian/reservation-reconciliation/infra/db/dao"
	"github.com/radhian/reservation-reconciliation/infra/locker"
	"github.com/radhian/reservation-reconciliation/resolver"
)

var (
	ErrNoBillingConfig  = errors.New("property has no billing config")
	ErrPropertyNotFound = errors.New("property not found")
	ErrImportInProgress = errors.New("an import is already running for this account")
	ErrNotFound         = errors.New("import batch not found")
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks -source=builder.go ReconciliationUsecase
type ReconciliationUsecase interface {
	ImportReservations(ctx context.Context, req entity.BulkImportRequest) (*entity.BulkImportResult, error)
	IngestNotificationFragments(ctx context.Context, accountID string, req entity.IngestFragmentsRequest) (*entity.IngestFragmentsResult, error)
	ProcessNotifications(ctx context.Context, req entity.NotificationBatchRequest) (*entity.NotificationBatchResult, error)
	GetImportBatches(ctx context.Context, accountID string) ([]entity.ImportBatchView, error)
	GetImportBatch(ctx context.Context, accountID, batchID string) (*entity.ImportBatchView, error)
	ProcessNotificationJob(ctx context.Context, accountID string) error
	TryAcquireLock(ctx context.Context) (bool, string, error)
	UnlockProcess(ctx context.Context, accountID string)
}

type Options struct {
	AutoLinkThreshold int
	DefaultDateOrder  consts.DateOrder
	MaxImportRows     int
}

type reconciliationUsecase struct {
	dao      dao.DaoMethod
	locker   *locker.Locker
	resolver *resolver.Resolver
	opts     Options
	now      func() time.Time
}

func NewReconciliationUsecase(d dao.DaoMethod, l *locker.Locker, opts Options) ReconciliationUsecase {
	if opts.DefaultDateOrder == "" {
		opts.DefaultDateOrder = consts.MonthFirst
	}
	if opts.MaxImportRows <= 0 {
		opts.MaxImportRows = consts.DefaultMaxImportRows
	}
	if l == nil {
		l = locker.New()
	}
	return &reconciliationUsecase{
		dao:      d,
		locker:   l,
		resolver: resolver.New(&propertyStore{dao: d}, opts.AutoLinkThreshold),
		opts:     opts,
		now:      time.Now,
	}
}
