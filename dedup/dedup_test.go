package dedup

import (
	"testing"

	"github.com/radhian/reservation-reconciliation/consts"
	"github.com/radhian/reservation-reconciliation/entity"
	"github.com/radhian/reservation-reconciliation/merger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func money(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		draft      entity.MergedDraft
		existing   *entity.ReservationSnapshot
		wantAction Action
		wantStatus string
		wantMoney  map[merger.Field]string
	}{
		{
			name:       "no existing row creates",
			draft:      entity.MergedDraft{Status: consts.StatusConfirmed},
			existing:   nil,
			wantAction: ActionCreate,
		},
		{
			name: "unchanged booking is a noop",
			draft: entity.MergedDraft{
				Status:       consts.StatusConfirmed,
				HostEarnings: money("120"),
				CleaningFee:  money("30"),
			},
			existing: &entity.ReservationSnapshot{
				Status:       consts.StatusConfirmed,
				HostEarnings: decimal.NewFromInt(120),
				CleaningFee:  decimal.NewFromInt(30),
			},
			wantAction: ActionNoOp,
		},
		{
			name:  "cancellation changes status",
			draft: entity.MergedDraft{Status: consts.StatusCancelled},
			existing: &entity.ReservationSnapshot{
				Status:       consts.StatusConfirmed,
				HostEarnings: decimal.NewFromInt(120),
			},
			wantAction: ActionUpdate,
			wantStatus: consts.StatusCancelled,
		},
		{
			name:       "already cancelled stays a noop",
			draft:      entity.MergedDraft{Status: consts.StatusCancelled},
			existing:   &entity.ReservationSnapshot{Status: consts.StatusCancelled},
			wantAction: ActionNoOp,
		},
		{
			name:       "confirmation does not revive a cancelled row",
			draft:      entity.MergedDraft{Status: consts.StatusConfirmed, HostEarnings: money("0")},
			existing:   &entity.ReservationSnapshot{Status: consts.StatusCancelled},
			wantAction: ActionNoOp,
		},
		{
			name: "non-zero amount fills a zero gap",
			draft: entity.MergedDraft{
				Status:       consts.StatusConfirmed,
				HostEarnings: money("450"),
				CleaningFee:  money("50"),
			},
			existing: &entity.ReservationSnapshot{
				Status:      consts.StatusConfirmed,
				CleaningFee: decimal.NewFromInt(50),
			},
			wantAction: ActionUpdate,
			wantMoney:  map[merger.Field]string{merger.FieldHostEarnings: "450"},
		},
		{
			name: "known amounts are never overwritten",
			draft: entity.MergedDraft{
				Status:       consts.StatusConfirmed,
				HostEarnings: money("999"),
				RoomTotal:    money("0"),
			},
			existing: &entity.ReservationSnapshot{
				Status:       consts.StatusConfirmed,
				HostEarnings: decimal.NewFromInt(450),
				RoomTotal:    decimal.NewFromInt(500),
			},
			wantAction: ActionNoOp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.draft, tt.existing)
			assert.Equal(t, tt.wantAction, got.Action)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Len(t, got.Money, len(tt.wantMoney))
			for f, v := range tt.wantMoney {
				assert.True(t, decimal.RequireFromString(v).Equal(got.Money[f]), "field %s: got %s", f, got.Money[f])
			}
		})
	}
}
