package reconciliation

import (
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/radhian/reservation-reconciliation/consts"
	"github.com/radhian/reservation-reconciliation/infra/db/dao"
	"github.com/radhian/reservation-reconciliation/infra/db/dao/mocks"
	"github.com/radhian/reservation-reconciliation/infra/db/model"
	"github.com/radhian/reservation-reconciliation/infra/locker"
	"github.com/shopspring/decimal"
)

const testAccount = "acc-1"

var fixedNow = time.Date(2026, 3, 21, 9, 0, 0, 0, time.UTC)

// memStore backs the DAO mock with maps so a test can run whole batches and inspect
// what was written.
type memStore struct {
	nextID       int64
	reservations map[string]*model.Reservation
	properties   []model.Property
	billing      []model.BillingConfig
	batches      []*model.ImportBatch
	assets       []model.ImportBatchAsset
	fragments    []model.NotificationFragment
	failCreate   map[string]error
}

func newMemStore() *memStore {
	return &memStore{
		nextID:       100,
		reservations: make(map[string]*model.Reservation),
		failCreate:   make(map[string]error),
	}
}

func reservationKey(accountID, platform, bookingID string) string {
	return accountID + "|" + platform + "|" + bookingID
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) seedProperty(id int64, name string, commissionPct int64) {
	m.properties = append(m.properties, model.Property{
		ID:            id,
		AccountID:     testAccount,
		Name:          name,
		AirbnbAliases: []string{name},
	})
	m.billing = append(m.billing, model.BillingConfig{
		ID:                   id * 10,
		AccountID:            testAccount,
		PropertyID:           id,
		CommissionType:       consts.CommissionPercentage,
		CommissionValue:      decimal.NewFromInt(commissionPct),
		CleaningFeeRecipient: consts.CleaningToManager,
	})
}

func (m *memStore) reservation(bookingID string) *model.Reservation {
	return m.reservations[reservationKey(testAccount, consts.PlatformAirbnb, bookingID)]
}

func (m *memStore) fragment(externalID string) model.NotificationFragment {
	for _, f := range m.fragments {
		if f.ExternalID == externalID {
			return f
		}
	}
	return model.NotificationFragment{}
}

func (m *memStore) expect(d *mocks.MockDaoMethod) {
	d.EXPECT().GetReservationByBookingID(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(accountID, platform, bookingID string) (*model.Reservation, error) {
			r, ok := m.reservations[reservationKey(accountID, platform, bookingID)]
			if !ok {
				return nil, nil
			}
			cp := *r
			return &cp, nil
		}).AnyTimes()
	d.EXPECT().CreateReservation(gomock.Any()).DoAndReturn(
		func(r *model.Reservation) error {
			if err := m.failCreate[r.BookingID]; err != nil {
				return err
			}
			r.ID = m.id()
			cp := *r
			m.reservations[reservationKey(r.AccountID, r.Platform, r.BookingID)] = &cp
			return nil
		}).AnyTimes()
	d.EXPECT().UpdateReservation(gomock.Any()).DoAndReturn(
		func(r model.Reservation) error {
			m.reservations[reservationKey(r.AccountID, r.Platform, r.BookingID)] = &r
			return nil
		}).AnyTimes()

	d.EXPECT().GetPropertiesByAccount(gomock.Any()).DoAndReturn(
		func(string) ([]model.Property, error) {
			return append([]model.Property(nil), m.properties...), nil
		}).AnyTimes()
	d.EXPECT().GetBillingConfigsByAccount(gomock.Any()).DoAndReturn(
		func(string) ([]model.BillingConfig, error) {
			return append([]model.BillingConfig(nil), m.billing...), nil
		}).AnyTimes()
	d.EXPECT().AddPropertyAlias(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(accountID string, propertyID int64, platform, alias string) error {
			for i := range m.properties {
				if m.properties[i].ID == propertyID {
					m.properties[i].AddAlias(platform, alias)
				}
			}
			return nil
		}).AnyTimes()
	d.EXPECT().ProvisionProperty(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(accountID, name, platform string) (model.Property, model.BillingConfig, error) {
			p := model.Property{ID: m.id(), AccountID: accountID, Name: name}
			p.AddAlias(platform, name)
			b := model.BillingConfig{
				ID:                   m.id(),
				AccountID:            accountID,
				PropertyID:           p.ID,
				CommissionType:       consts.CommissionPercentage,
				CommissionValue:      decimal.Zero,
				CleaningFeeRecipient: consts.CleaningToManager,
			}
			m.properties = append(m.properties, p)
			m.billing = append(m.billing, b)
			return p, b, nil
		}).AnyTimes()

	d.EXPECT().CreateImportBatch(gomock.Any()).DoAndReturn(
		func(b *model.ImportBatch) error {
			b.ID = m.id()
			m.batches = append(m.batches, b)
			return nil
		}).AnyTimes()
	d.EXPECT().UpdateImportBatch(gomock.Any()).DoAndReturn(
		func(b model.ImportBatch) error {
			for i := range m.batches {
				if m.batches[i].ID == b.ID {
					*m.batches[i] = b
				}
			}
			return nil
		}).AnyTimes()
	d.EXPECT().GetImportBatchesByAccount(gomock.Any()).DoAndReturn(
		func(accountID string) ([]model.ImportBatch, error) {
			var out []model.ImportBatch
			for i := len(m.batches) - 1; i >= 0; i-- {
				if m.batches[i].AccountID == accountID {
					out = append(out, *m.batches[i])
				}
			}
			return out, nil
		}).AnyTimes()
	d.EXPECT().GetImportBatchByBatchID(gomock.Any(), gomock.Any()).DoAndReturn(
		func(accountID, batchID string) (model.ImportBatch, error) {
			for _, b := range m.batches {
				if b.AccountID == accountID && b.BatchID == batchID {
					return *b, nil
				}
			}
			return model.ImportBatch{}, fmt.Errorf("batch %s: %w", batchID, dao.ErrNotFound)
		}).AnyTimes()
	d.EXPECT().GetImportBatchAssetsByBatchID(gomock.Any()).DoAndReturn(
		func(id int64) ([]model.ImportBatchAsset, error) {
			var out []model.ImportBatchAsset
			for _, a := range m.assets {
				if a.ImportBatchID == id {
					out = append(out, a)
				}
			}
			return out, nil
		}).AnyTimes()
	d.EXPECT().CreateImportBatchAsset(gomock.Any()).DoAndReturn(
		func(a model.ImportBatchAsset) error {
			m.assets = append(m.assets, a)
			return nil
		}).AnyTimes()

	d.EXPECT().CreateNotificationFragment(gomock.Any()).DoAndReturn(
		func(f *model.NotificationFragment) error {
			for _, existing := range m.fragments {
				if existing.AccountID == f.AccountID && existing.ExternalID == f.ExternalID {
					return dao.ErrDuplicateFragment
				}
			}
			f.ID = m.id()
			m.fragments = append(m.fragments, *f)
			return nil
		}).AnyTimes()
	d.EXPECT().GetNotificationFragmentsByStatusList(gomock.Any(), gomock.Any()).DoAndReturn(
		func(accountID string, statusList []string) ([]model.NotificationFragment, error) {
			var out []model.NotificationFragment
			for _, f := range m.fragments {
				for _, s := range statusList {
					if f.AccountID == accountID && f.Status == s {
						out = append(out, f)
						break
					}
				}
			}
			return out, nil
		}).AnyTimes()
	d.EXPECT().GetAccountsWithPendingFragments().DoAndReturn(
		func() ([]string, error) {
			seen := make(map[string]bool)
			var out []string
			for _, f := range m.fragments {
				if f.Status == consts.FragmentStatusPending && !seen[f.AccountID] {
					seen[f.AccountID] = true
					out = append(out, f.AccountID)
				}
			}
			return out, nil
		}).AnyTimes()
	d.EXPECT().UpdateNotificationFragment(gomock.Any()).DoAndReturn(
		func(f model.NotificationFragment) error {
			for i := range m.fragments {
				if m.fragments[i].ID == f.ID {
					m.fragments[i] = f
				}
			}
			return nil
		}).AnyTimes()
}

func newTestUsecase(t *testing.T) (*reconciliationUsecase, *memStore) {
	ctrl := gomock.NewController(t)
	d := mocks.NewMockDaoMethod(ctrl)
	store := newMemStore()
	store.expect(d)

	uc := NewReconciliationUsecase(d, locker.New(), Options{}).(*reconciliationUsecase)
	uc.now = func() time.Time { return fixedNow }
	return uc, store
}
