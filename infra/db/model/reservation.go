package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reservation is the canonical booking row, unique per account, platform and booking id.
type Reservation struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	AccountID       string          `gorm:"size:64;not null;unique_index:idx_account_platform_booking" json:"account_id"`
	Platform        string          `gorm:"size:16;not null;unique_index:idx_account_platform_booking" json:"platform"`
	BookingID       string          `gorm:"size:128;not null;unique_index:idx_account_platform_booking" json:"booking_id"`
	Synthetic       bool            `gorm:"not null" json:"synthetic"`
	PropertyID      int64           `gorm:"not null;index" json:"property_id"`
	BillingConfigID int64           `gorm:"not null" json:"billing_config_id"`
	GuestName       string          `gorm:"size:255;not null" json:"guest_name"`
	GuestEmail      string          `gorm:"size:255" json:"guest_email"`
	Adults          int             `gorm:"not null" json:"adults"`
	Children        int             `gorm:"not null" json:"children"`
	Infants         int             `gorm:"not null" json:"infants"`
	CheckIn         time.Time       `gorm:"type:date;not null" json:"check_in"`
	CheckOut        time.Time       `gorm:"type:date;not null" json:"check_out"`
	Nights          int             `gorm:"not null" json:"nights"`
	RoomTotal       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"room_total"`
	CleaningFee     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"cleaning_fee"`
	HostServiceFee  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"host_service_fee"`
	HostEarnings    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"host_earnings"`
	OwnerAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"owner_amount"`
	ManagerAmount   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"manager_amount"`
	CleaningAmount  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"cleaning_amount"`
	Currency        string          `gorm:"size:3;not null" json:"currency"`
	Status          string          `gorm:"size:16;not null" json:"status"`
	Type            string          `gorm:"size:16;not null" json:"type"`
	ImportSource    string          `gorm:"size:16;not null" json:"import_source"`
	ImportBatchID   string          `gorm:"size:64;not null" json:"import_batch_id"`
	ListingName     string          `gorm:"size:255" json:"listing_name"`
	CreateTime      int64           `gorm:"not null" json:"create_time"`
	CreateBy        string          `gorm:"size:100;not null" json:"create_by"`
	UpdateTime      int64           `gorm:"not null" json:"update_time"`
	UpdateBy        string          `gorm:"size:100;not null" json:"update_by"`
}
