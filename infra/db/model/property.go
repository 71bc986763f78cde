package model

import (
	"github.com/lib/pq"
	"github.com/radhian/reservation-reconciliation/consts"
	"github.com/shopspring/decimal"
)

// Property aliases are kept per platform and only ever appended to.
type Property struct {
	ID             int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	AccountID      string         `gorm:"size:64;not null;index" json:"account_id"`
	Name           string         `gorm:"size:255;not null" json:"name"`
	AirbnbAliases  pq.StringArray `gorm:"type:text[]" json:"airbnb_aliases"`
	BookingAliases pq.StringArray `gorm:"type:text[]" json:"booking_aliases"`
	OtherAliases   pq.StringArray `gorm:"type:text[]" json:"other_aliases"`
	CreateTime     int64          `gorm:"not null" json:"create_time"`
	CreateBy       string         `gorm:"size:100;not null" json:"create_by"`
	UpdateTime     int64          `gorm:"not null" json:"update_time"`
	UpdateBy       string         `gorm:"size:100;not null" json:"update_by"`
}

type BillingConfig struct {
	ID                   int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	AccountID            string          `gorm:"size:64;not null;index" json:"account_id"`
	PropertyID           int64           `gorm:"not null;unique_index" json:"property_id"`
	CommissionType       string          `gorm:"size:32;not null" json:"commission_type"`
	CommissionValue      decimal.Decimal `gorm:"type:numeric(12,4);not null" json:"commission_value"`
	CleaningFeeRecipient string          `gorm:"size:16;not null" json:"cleaning_fee_recipient"`
	CleaningFeeSplitPct  decimal.Decimal `gorm:"type:numeric(6,2);not null" json:"cleaning_fee_split_pct"`
	CreateTime           int64           `gorm:"not null" json:"create_time"`
	CreateBy             string          `gorm:"size:100;not null" json:"create_by"`
	UpdateTime           int64           `gorm:"not null" json:"update_time"`
	UpdateBy             string          `gorm:"size:100;not null" json:"update_by"`
}

// AliasColumn returns the column holding aliases for platform.
func AliasColumn(platform string) string {
	switch platform {
	case consts.PlatformBooking:
		return "booking_aliases"
	case consts.PlatformOther:
		return "other_aliases"
	}
	return "airbnb_aliases"
}

// AliasesByPlatform returns a copy of every alias keyed by platform.
func (p Property) AliasesByPlatform() map[string][]string {
	return map[string][]string{
		consts.PlatformAirbnb:  append([]string(nil), p.AirbnbAliases...),
		consts.PlatformBooking: append([]string(nil), p.BookingAliases...),
		consts.PlatformOther:   append([]string(nil), p.OtherAliases...),
	}
}

// AddAlias appends alias to the in-memory list for platform.
func (p *Property) AddAlias(platform, alias string) {
	switch platform {
	case consts.PlatformBooking:
		p.BookingAliases = append(p.BookingAliases, alias)
	case consts.PlatformOther:
		p.OtherAliases = append(p.OtherAliases, alias)
	default:
		p.AirbnbAliases = append(p.AirbnbAliases, alias)
	}
}
