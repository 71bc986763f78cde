package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MergedDraft is the coherent view of every fragment sharing one booking identifier.
type MergedDraft struct {
	BookingID  string
	Synthetic  bool
	Platform   string
	GuestName  string
	GuestEmail string
	Adults     int
	Children   int
	Infants    int
	CheckIn    time.Time
	CheckOut   time.Time
	Nights     int

	RoomTotal      decimal.NullDecimal
	CleaningFee    decimal.NullDecimal
	HostServiceFee decimal.NullDecimal
	HostEarnings   decimal.NullDecimal
	Currency       string

	Status      string
	Type        string
	ListingName string
}

// ReservationSnapshot is the slice of a persisted reservation the dedup guard compares against.
type ReservationSnapshot struct {
	ID             int64
	Status         string
	RoomTotal      decimal.Decimal
	CleaningFee    decimal.Decimal
	HostServiceFee decimal.Decimal
	HostEarnings   decimal.Decimal
}
