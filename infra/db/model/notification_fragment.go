package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// NotificationFragment is one pre-classified notification waiting to be reconciled.
type NotificationFragment struct {
	ID             int64               `gorm:"primaryKey;autoIncrement" json:"id"`
	AccountID      string              `gorm:"size:64;not null;unique_index:idx_account_external" json:"account_id"`
	ExternalID     string              `gorm:"size:255;not null;unique_index:idx_account_external" json:"external_id"`
	Subject        string              `gorm:"size:512" json:"subject"`
	EventKind      string              `gorm:"size:32;not null" json:"event_kind"`
	Platform       string              `gorm:"size:16" json:"platform"`
	BookingID      string              `gorm:"size:128" json:"booking_id"`
	PropertyName   string              `gorm:"size:255" json:"property_name"`
	GuestName      string              `gorm:"size:255" json:"guest_name"`
	Adults         *int                `json:"adults"`
	Children       *int                `json:"children"`
	Infants        *int                `json:"infants"`
	Nights         *int                `json:"nights"`
	CheckIn        *time.Time          `gorm:"type:date" json:"check_in"`
	CheckOut       *time.Time          `gorm:"type:date" json:"check_out"`
	RoomTotal      decimal.NullDecimal `gorm:"type:numeric(12,2)" json:"room_total"`
	CleaningFee    decimal.NullDecimal `gorm:"type:numeric(12,2)" json:"cleaning_fee"`
	HostServiceFee decimal.NullDecimal `gorm:"type:numeric(12,2)" json:"host_service_fee"`
	HostEarnings   decimal.NullDecimal `gorm:"type:numeric(12,2)" json:"host_earnings"`
	Currency       string              `gorm:"size:3" json:"currency"`
	ReceivedAt     int64               `gorm:"not null;index" json:"received_at"`
	Status         string              `gorm:"size:16;not null;index" json:"status"`
	ErrorMessage   string              `gorm:"type:text" json:"error_message"`
	ReservationID  *int64              `json:"reservation_id"`
	ImportBatchID  string              `gorm:"size:64" json:"import_batch_id"`
	CreateTime     int64               `gorm:"not null" json:"create_time"`
	UpdateTime     int64               `gorm:"not null" json:"update_time"`
}
