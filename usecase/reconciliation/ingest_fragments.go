package reconciliation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/radhian/reservation-reconciliation/consts"
	"github.com/radhian/reservation-reconciliation/entity"
	"github.com/radhian/reservation-reconciliation/infra/db/dao"
	"github.com/radhian/reservation-reconciliation/infra/db/model"
	"github.com/shopspring/decimal"
)

const fragmentDateLayout = "2006-01-02"

// IngestNotificationFragments stores fragments as pending. A fragment whose external id
// was already ingested is counted as a duplicate and left untouched.
func (u *reconciliationUsecase) IngestNotificationFragments(ctx context.Context, accountID string, req entity.IngestFragmentsRequest) (*entity.IngestFragmentsResult, error) {
	res := &entity.IngestFragmentsResult{Received: len(req.Fragments)}
	for _, in := range req.Fragments {
		fragment, err := u.fragmentModel(accountID, in)
		if err != nil {
			return res, err
		}
		if err := u.dao.CreateNotificationFragment(&fragment); err != nil {
			if errors.Is(err, dao.ErrDuplicateFragment) {
				res.Duplicates++
				continue
			}
			return res, err
		}
		res.Stored++
	}
	log.Infof("[IngestFragments] account=%s received=%d stored=%d duplicates=%d", accountID, res.Received, res.Stored, res.Duplicates)
	return res, nil
}

func (u *reconciliationUsecase) fragmentModel(accountID string, in entity.NotificationFragmentInput) (model.NotificationFragment, error) {
	now := u.now().Unix()
	f := model.NotificationFragment{
		AccountID:      accountID,
		ExternalID:     strings.TrimSpace(in.ExternalID),
		Subject:        in.Subject,
		EventKind:      in.EventKind,
		Platform:       in.Platform,
		BookingID:      strings.TrimSpace(in.BookingID),
		PropertyName:   strings.TrimSpace(in.PropertyName),
		GuestName:      strings.TrimSpace(in.GuestName),
		Adults:         in.Adults,
		Children:       in.Children,
		Infants:        in.Infants,
		Nights:         in.Nights,
		RoomTotal:      nullMoney(in.RoomTotal),
		CleaningFee:    nullMoney(in.CleaningFee),
		HostServiceFee: nullMoney(in.HostServiceFee),
		HostEarnings:   nullMoney(in.HostEarnings),
		Currency:       strings.ToUpper(in.Currency),
		ReceivedAt:     in.ReceivedAt,
		Status:         consts.FragmentStatusPending,
		CreateTime:     now,
		UpdateTime:     now,
	}
	if f.ReceivedAt == 0 {
		f.ReceivedAt = now
	}

	var err error
	if f.CheckIn, err = optionalDate(in.CheckIn); err != nil {
		return f, fmt.Errorf("fragment %s: check-in: %w", in.ExternalID, err)
	}
	if f.CheckOut, err = optionalDate(in.CheckOut); err != nil {
		return f, fmt.Errorf("fragment %s: check-out: %w", in.ExternalID, err)
	}
	return f, nil
}

func optionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(fragmentDateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func nullMoney(v *float64) decimal.NullDecimal {
	if v == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(decimal.NewFromFloat(*v).Round(2))
}
