package merger

import (
	"github.com/radhian/reservation-reconciliation/consts"
	"github.com/radhian/reservation-reconciliation/entity"
	"github.com/shopspring/decimal"
)

// Rule is how a field combines an accumulated value with a newly observed one.
type Rule int

const (
	// FirstWins keeps the first non-empty value; later values only fill gaps.
	FirstWins Rule = iota
	// PreferNonZero lets a non-zero value replace an absent or zero one, never the reverse.
	PreferNonZero
	// EventDominant lets a single dominant event decide the field regardless of order.
	EventDominant
)

type Field string

const (
	FieldGuestName      Field = "guest_name"
	FieldGuestEmail     Field = "guest_email"
	FieldTravelers      Field = "travelers"
	FieldCheckIn        Field = "check_in"
	FieldCheckOut       Field = "check_out"
	FieldNights         Field = "nights"
	FieldListingName    Field = "listing_name"
	FieldCurrency       Field = "currency"
	FieldRoomTotal      Field = "room_total"
	FieldCleaningFee    Field = "cleaning_fee"
	FieldHostServiceFee Field = "host_service_fee"
	FieldHostEarnings   Field = "host_earnings"
	FieldStatus         Field = "status"
	FieldType           Field = "type"
)

// Policies is shared by the in-batch merger and the cross-time dedup guard.
var Policies = map[Field]Rule{
	FieldGuestName:      FirstWins,
	FieldGuestEmail:     FirstWins,
	FieldTravelers:      FirstWins,
	FieldCheckIn:        FirstWins,
	FieldCheckOut:       FirstWins,
	FieldNights:         FirstWins,
	FieldListingName:    FirstWins,
	FieldCurrency:       FirstWins,
	FieldRoomTotal:      PreferNonZero,
	FieldCleaningFee:    PreferNonZero,
	FieldHostServiceFee: PreferNonZero,
	FieldHostEarnings:   PreferNonZero,
	FieldStatus:         EventDominant,
	FieldType:           EventDominant,
}

// MoneyFields lists the PreferNonZero fields in a stable order.
var MoneyFields = []Field{FieldRoomTotal, FieldCleaningFee, FieldHostServiceFee, FieldHostEarnings}

// MergeMoney applies the PreferNonZero rule.
func MergeMoney(acc, next decimal.NullDecimal) decimal.NullDecimal {
	if !next.Valid {
		return acc
	}
	if !acc.Valid {
		return next
	}
	if acc.Decimal.IsZero() && !next.Decimal.IsZero() {
		return next
	}
	return acc
}

// DominantStatus applies the EventDominant rule to reservation status.
func DominantStatus(acc, next string) string {
	if acc == consts.StatusCancelled || next == consts.StatusCancelled {
		return consts.StatusCancelled
	}
	if acc == "" {
		return next
	}
	return acc
}

// DominantType applies the EventDominant rule to reservation type.
func DominantType(acc, next string) string {
	if acc == consts.ReservationTypeAdjustment || next == consts.ReservationTypeAdjustment {
		return consts.ReservationTypeAdjustment
	}
	if acc == "" {
		return next
	}
	return acc
}

func partialMoney(r *entity.PartialReservationRecord, f Field) *decimal.NullDecimal {
	switch f {
	case FieldRoomTotal:
		return &r.RoomTotal
	case FieldCleaningFee:
		return &r.CleaningFee
	case FieldHostServiceFee:
		return &r.HostServiceFee
	case FieldHostEarnings:
		return &r.HostEarnings
	}
	return nil
}

// DraftMoney returns the draft's value for a money field.
func DraftMoney(d entity.MergedDraft, f Field) decimal.NullDecimal {
	switch f {
	case FieldRoomTotal:
		return d.RoomTotal
	case FieldCleaningFee:
		return d.CleaningFee
	case FieldHostServiceFee:
		return d.HostServiceFee
	case FieldHostEarnings:
		return d.HostEarnings
	}
	return decimal.NullDecimal{}
}

// SnapshotMoney returns the persisted value for a money field.
func SnapshotMoney(s entity.ReservationSnapshot, f Field) decimal.Decimal {
	switch f {
	case FieldRoomTotal:
		return s.RoomTotal
	case FieldCleaningFee:
		return s.CleaningFee
	case FieldHostServiceFee:
		return s.HostServiceFee
	case FieldHostEarnings:
		return s.HostEarnings
	}
	return decimal.Zero
}
