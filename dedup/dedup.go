// Package dedup decides whether a merged draft creates, updates or leaves alone a
// persisted reservation.
package dedup

import (
	"github.com/radhian/reservation-reconciliation/entity"
	"github.com/radhian/reservation-reconciliation/merger"
	"github.com/shopspring/decimal"
)

type Action int

const (
	ActionCreate Action = iota
	ActionUpdate
	ActionNoOp
)

func (a Action) String() string {
	switch a {
	case ActionCreate:
		return "create"
	case ActionUpdate:
		return "update"
	}
	return "noop"
}

// Decision carries the fields an update must touch. Status is empty when unchanged.
type Decision struct {
	Action Action
	Status string
	Money  map[merger.Field]decimal.Decimal
}

func (d Decision) TouchesMoney() bool {
	return len(d.Money) > 0
}

// Classify compares the draft with the existing row, if any. Only gaps are filled and
// only a cancellation may change status, so re-importing unchanged data is a NoOp.
func Classify(draft entity.MergedDraft, existing *entity.ReservationSnapshot) Decision {
	if existing == nil {
		return Decision{Action: ActionCreate}
	}

	d := Decision{Action: ActionNoOp}

	if s := merger.DominantStatus(existing.Status, draft.Status); s != existing.Status {
		d.Status = s
	}

	for _, f := range merger.MoneyFields {
		current := merger.SnapshotMoney(*existing, f)
		merged := merger.MergeMoney(decimal.NewNullDecimal(current), merger.DraftMoney(draft, f))
		if !merged.Decimal.Equal(current) {
			if d.Money == nil {
				d.Money = make(map[merger.Field]decimal.Decimal)
			}
			d.Money[f] = merged.Decimal
		}
	}

	if d.Status != "" || d.TouchesMoney() {
		d.Action = ActionUpdate
	}
	return d
}
