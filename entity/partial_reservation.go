package entity

import (
	"strconv"
	"time"

	"github.com/radhian/reservation-reconciliation/consts"
	"github.com/shopspring/decimal"
)

// PartialReservationRecord is one fragment of booking knowledge extracted from a
// single CSV row or notification. Every field may be absent.
type PartialReservationRecord struct {
	BookingID  string
	Synthetic  bool
	Platform   string
	GuestName  string
	GuestEmail string
	Adults     *int
	Children   *int
	Infants    *int
	CheckIn    *time.Time
	CheckOut   *time.Time
	Nights     *int

	RoomTotal      decimal.NullDecimal
	CleaningFee    decimal.NullDecimal
	HostServiceFee decimal.NullDecimal
	HostEarnings   decimal.NullDecimal
	Currency       string

	StatusHint    string
	ListingName   string
	EventKind     consts.EventKind
	AmbiguousDate bool
}

// SourceItem pairs a parsed record with the reference of the input item it came from.
type SourceItem struct {
	Row    int
	ItemID string
	Record PartialReservationRecord
}

// Ref identifies the item in error reports.
func (s SourceItem) Ref() string {
	if s.ItemID != "" {
		return s.ItemID
	}
	return "row " + strconv.Itoa(s.Row)
}

// ItemError is one non-fatal failure reported in a batch summary.
type ItemError struct {
	Row    int         `json:"row,omitempty"`
	ItemID string      `json:"itemId,omitempty"`
	Error  string      `json:"error"`
	Data   interface{} `json:"data,omitempty"`
}
