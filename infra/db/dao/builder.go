package dao

import (
	"errors"

	"github.com/radhian/reservation-reconciliation/infra/db/model"

	"github.com/jinzhu/gorm"
	"github.com/lib/pq"
)

var (
	ErrDuplicateReservation = errors.New("reservation already exists")
	ErrDuplicateFragment    = errors.New("notification fragment already ingested")
	ErrNotFound             = errors.New("record not found")
)

const uniqueViolation = "23505"

//go:generate mockgen -destination=mocks/mock_dao.go -package=mocks -source=builder.go DaoMethod
type DaoMethod interface {
	GetReservationByBookingID(accountID, platform, bookingID string) (*model.Reservation, error)
	CreateReservation(payload *model.Reservation) error
	UpdateReservation(reservation model.Reservation) error

	GetPropertiesByAccount(accountID string) ([]model.Property, error)
	GetBillingConfigsByAccount(accountID string) ([]model.BillingConfig, error)
	AddPropertyAlias(accountID string, propertyID int64, platform, alias string) error
	ProvisionProperty(accountID, name, platform string) (model.Property, model.BillingConfig, error)

	CreateImportBatch(payload *model.ImportBatch) error
	UpdateImportBatch(batch model.ImportBatch) error
	GetImportBatchesByAccount(accountID string) ([]model.ImportBatch, error)
	GetImportBatchByBatchID(accountID, batchID string) (model.ImportBatch, error)
	CreateImportBatchAsset(payload model.ImportBatchAsset) error
	GetImportBatchAssetsByBatchID(importBatchID int64) ([]model.ImportBatchAsset, error)

	CreateNotificationFragment(payload *model.NotificationFragment) error
	GetNotificationFragmentsByStatusList(accountID string, statusList []string) ([]model.NotificationFragment, error)
	UpdateNotificationFragment(fragment model.NotificationFragment) error
	GetAccountsWithPendingFragments() ([]string, error)
}

type dao struct {
	db *gorm.DB
}

func NewDaoMethod(db *gorm.DB) DaoMethod {
	return &dao{db: db}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
