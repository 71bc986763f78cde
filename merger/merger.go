// Package merger folds the fragments describing one booking into a single draft.
package merger

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/radhian/reservation-reconciliation/consts"
	"github.com/radhian/reservation-reconciliation/entity"
)

var ErrMissingRequiredFields = errors.New("missing required fields")

// Merge combines every record sharing bookingID. Records are folded in the given order,
// so the first fragment to report a descriptive field owns it. Without both dates the
// draft is still returned, carrying status and money only, with ErrMissingRequiredFields.
func Merge(bookingID string, records []entity.PartialReservationRecord) (entity.MergedDraft, error) {
	var acc entity.PartialReservationRecord
	status, rtype := "", ""
	synthetic := len(records) > 0

	for _, r := range records {
		synthetic = synthetic && r.Synthetic
		firstString(&acc.Platform, r.Platform)
		firstString(&acc.GuestName, r.GuestName)
		firstString(&acc.GuestEmail, r.GuestEmail)
		firstString(&acc.ListingName, r.ListingName)
		firstString(&acc.Currency, r.Currency)
		firstInt(&acc.Adults, r.Adults)
		firstInt(&acc.Children, r.Children)
		firstInt(&acc.Infants, r.Infants)
		firstInt(&acc.Nights, r.Nights)
		firstTime(&acc.CheckIn, r.CheckIn)
		firstTime(&acc.CheckOut, r.CheckOut)

		for _, f := range MoneyFields {
			p := partialMoney(&acc, f)
			*p = MergeMoney(*p, *partialMoney(&r, f))
		}

		status = DominantStatus(status, statusOf(r))
		rtype = DominantType(rtype, typeOf(r))
	}

	draft := entity.MergedDraft{
		BookingID:      bookingID,
		Synthetic:      synthetic,
		Platform:       acc.Platform,
		GuestName:      acc.GuestName,
		GuestEmail:     acc.GuestEmail,
		Adults:         intOr(acc.Adults, 1),
		Children:       intOr(acc.Children, 0),
		Infants:        intOr(acc.Infants, 0),
		Nights:         intOr(acc.Nights, 0),
		RoomTotal:      acc.RoomTotal,
		CleaningFee:    acc.CleaningFee,
		HostServiceFee: acc.HostServiceFee,
		HostEarnings:   acc.HostEarnings,
		Currency:       acc.Currency,
		Status:         status,
		Type:           rtype,
		ListingName:    acc.ListingName,
	}
	if draft.GuestName == "" {
		draft.GuestName = consts.DefaultGuestName
	}
	if draft.Currency == "" {
		draft.Currency = consts.DefaultCurrency
	}
	if draft.Platform == "" {
		draft.Platform = consts.PlatformAirbnb
	}

	if acc.CheckIn == nil || acc.CheckOut == nil {
		return draft, fmt.Errorf("booking %s: %w (check-in/check-out)", bookingID, ErrMissingRequiredFields)
	}
	draft.CheckIn, draft.CheckOut = *acc.CheckIn, *acc.CheckOut
	if acc.Nights == nil {
		draft.Nights = nightsBetween(draft.CheckIn, draft.CheckOut)
	}
	return draft, nil
}

func statusOf(r entity.PartialReservationRecord) string {
	if r.EventKind == consts.EventBookingCancelled {
		return consts.StatusCancelled
	}
	switch r.StatusHint {
	case consts.StatusCancelled, consts.StatusCompleted:
		return r.StatusHint
	}
	return consts.StatusConfirmed
}

func typeOf(r entity.PartialReservationRecord) string {
	if r.EventKind == consts.EventReimbursement {
		return consts.ReservationTypeAdjustment
	}
	return consts.ReservationTypeBooking
}

func nightsBetween(in, out time.Time) int {
	n := int(math.Ceil(out.Sub(in).Hours() / 24))
	if n < 1 {
		return 1
	}
	return n
}

func firstString(acc *string, v string) {
	if *acc == "" {
		*acc = v
	}
}

func firstInt(acc **int, v *int) {
	if *acc == nil && v != nil {
		*acc = v
	}
}

func firstTime(acc **time.Time, v *time.Time) {
	if *acc == nil && v != nil {
		*acc = v
	}
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
