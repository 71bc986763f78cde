// Package split computes the owner/manager distribution of a reservation's earnings.
package split

import (
	"github.com/radhian/reservation-reconciliation/consts"
	"github.com/shopspring/decimal"
)

const places = 2

var hundred = decimal.NewFromInt(100)

// Config is the commission side of a property's billing configuration.
type Config struct {
	CommissionType       string
	CommissionValue      decimal.Decimal
	CleaningFeeRecipient string
	CleaningFeeSplitPct  decimal.Decimal
}

type Result struct {
	OwnerAmount    decimal.Decimal `json:"ownerAmount"`
	ManagerAmount  decimal.Decimal `json:"managerAmount"`
	CleaningAmount decimal.Decimal `json:"cleaningAmount"`
}

// Calculate splits hostEarnings between owner and manager. Every value is rounded to
// cents as soon as it is produced so the result is reproducible, and
// OwnerAmount + ManagerAmount always equals the rounded hostEarnings.
//
// A cleaning fee larger than the earnings yields a negative commission base; it is
// passed through unclamped.
func Calculate(hostEarnings, cleaningFee decimal.Decimal, cfg Config) Result {
	hostEarnings = hostEarnings.Round(places)
	cleaningFee = cleaningFee.Round(places)

	accommodation := hostEarnings.Sub(cleaningFee).Round(places)

	commission := decimal.Zero
	switch cfg.CommissionType {
	case consts.CommissionPercentage:
		commission = accommodation.Mul(cfg.CommissionValue).Div(hundred).Round(places)
	case consts.CommissionFixedPerReservation:
		commission = cfg.CommissionValue.Round(places)
	case consts.CommissionFixedMonthly:
		// billed by the monthly liquidation run
	}

	managerCleaning := decimal.Zero
	switch cfg.CleaningFeeRecipient {
	case consts.CleaningToManager:
		managerCleaning = cleaningFee
	case consts.CleaningToOwner:
	case consts.CleaningSplit:
		managerCleaning = cleaningFee.Mul(cfg.CleaningFeeSplitPct).Div(hundred).Round(places)
	}

	manager := commission.Add(managerCleaning).Round(places)
	return Result{
		OwnerAmount:    hostEarnings.Sub(manager).Round(places),
		ManagerAmount:  manager,
		CleaningAmount: managerCleaning,
	}
}
