package reconciliation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/labstack/gommon/log"
	"github.com/radhian/reservation-reconciliation/consts"
	"github.com/radhian/reservation-reconciliation/dedup"
	"github.com/radhian/reservation-reconciliation/entity"
	"github.com/radhian/reservation-reconciliation/infra/db/dao"
	"github.com/radhian/reservation-reconciliation/infra/db/model"
	"github.com/radhian/reservation-reconciliation/merger"
	"github.com/radhian/reservation-reconciliation/resolver"
	"github.com/radhian/reservation-reconciliation/split"
)

type groupState int

const (
	groupCreated groupState = iota
	groupUpdated
	groupUnchanged
	groupDuplicate
	groupNeedsReview
	groupFailed
)

type bookingGroup struct {
	bookingID string
	items     []entity.SourceItem
}

type groupResult struct {
	group         bookingGroup
	state         groupState
	cancelled     bool
	reservationID int64
	err           error
}

// batchRun is the state threaded through one batch: the catalog grows as the resolver
// learns, and each listing name is resolved at most once.
type batchRun struct {
	accountID    string
	batchID      string
	source       string
	catalog      resolver.Catalog
	resolveOpts  resolver.Options
	property     *resolver.PropertyEntry
	skipExisting bool
	cache        map[string]resolver.Resolution
	summary      *entity.ImportSummary
}

func newBatchRun(accountID, batchID, source string, catalog resolver.Catalog, opts resolver.Options) *batchRun {
	return &batchRun{
		accountID:   accountID,
		batchID:     batchID,
		source:      source,
		catalog:     catalog,
		resolveOpts: opts,
		cache:       make(map[string]resolver.Resolution),
		summary:     &entity.ImportSummary{BatchID: batchID, Source: source},
	}
}

// groupItems groups items by platform and booking id, keeping first-appearance order.
func groupItems(items []entity.SourceItem) []bookingGroup {
	index := make(map[string]int)
	var groups []bookingGroup
	for _, item := range items {
		key := item.Record.Platform + "|" + item.Record.BookingID
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, bookingGroup{bookingID: item.Record.BookingID})
		}
		groups[i].items = append(groups[i].items, item)
	}
	return groups
}

// reconcile runs every group through merge, resolve, classify and persist. A failing
// group is recorded and the batch carries on.
func (u *reconciliationUsecase) reconcile(ctx context.Context, run *batchRun, items []entity.SourceItem) []groupResult {
	groups := groupItems(items)
	results := make([]groupResult, 0, len(groups))
	for _, g := range groups {
		var res groupResult
		if err := ctx.Err(); err != nil {
			res = groupResult{group: g, state: groupFailed, err: err}
		} else {
			res = u.reconcileGroup(ctx, run, g)
		}
		run.record(res)
		results = append(results, res)
	}
	return results
}

func (u *reconciliationUsecase) reconcileGroup(ctx context.Context, run *batchRun, g bookingGroup) groupResult {
	records := make([]entity.PartialReservationRecord, len(g.items))
	for i, item := range g.items {
		records[i] = item.Record
	}
	draft, mergeErr := merger.Merge(g.bookingID, records)
	if mergeErr != nil && !errors.Is(mergeErr, merger.ErrMissingRequiredFields) {
		return run.failed(g, mergeErr)
	}

	// A group without dates can still cancel or fill gaps of a reservation that exists.
	if mergeErr != nil {
		existing, err := u.dao.GetReservationByBookingID(run.accountID, draft.Platform, draft.BookingID)
		if err != nil {
			return run.failed(g, err)
		}
		if existing == nil {
			return run.failed(g, mergeErr)
		}
		return u.persist(run, g, draft, resolver.PropertyEntry{}, existing)
	}

	property, resolved, err := u.resolveProperty(ctx, run, g, draft)
	if err != nil {
		return run.failed(g, err)
	}
	if !resolved {
		return groupResult{group: g, state: groupNeedsReview}
	}
	if property.BillingConfigID == 0 {
		return run.failed(g, fmt.Errorf("property %d: %w", property.PropertyID, ErrNoBillingConfig))
	}

	existing, err := u.dao.GetReservationByBookingID(run.accountID, draft.Platform, draft.BookingID)
	if err != nil {
		return run.failed(g, err)
	}
	return u.persist(run, g, draft, property, existing)
}

func (u *reconciliationUsecase) persist(run *batchRun, g bookingGroup, draft entity.MergedDraft, property resolver.PropertyEntry, existing *model.Reservation) groupResult {
	if existing != nil && run.skipExisting {
		return groupResult{group: g, state: groupDuplicate, reservationID: existing.ID}
	}

	decision := dedup.Classify(draft, snapshotOf(existing))
	switch decision.Action {
	case dedup.ActionCreate:
		reservation := u.newReservation(run, draft, property)
		if err := u.dao.CreateReservation(&reservation); err != nil {
			if errors.Is(err, dao.ErrDuplicateReservation) {
				log.Infof("[Reconcile] batch=%s booking=%s created concurrently, skipping", run.batchID, g.bookingID)
				return groupResult{group: g, state: groupDuplicate}
			}
			return run.failed(g, err)
		}
		return groupResult{
			group:         g,
			state:         groupCreated,
			cancelled:     reservation.Status == consts.StatusCancelled,
			reservationID: reservation.ID,
		}

	case dedup.ActionUpdate:
		billing := property.Billing
		if owner, ok := run.catalog.Find(existing.PropertyID); ok && owner.BillingConfigID != 0 {
			billing = owner.Billing
		}
		updated := applyDecision(*existing, decision, billing, u.now().Unix())
		if err := u.dao.UpdateReservation(updated); err != nil {
			return run.failed(g, err)
		}
		return groupResult{
			group:         g,
			state:         groupUpdated,
			cancelled:     decision.Status == consts.StatusCancelled,
			reservationID: existing.ID,
		}
	}

	return groupResult{group: g, state: groupUnchanged, reservationID: existing.ID}
}

// resolveProperty tries every distinct listing name of the group, the merged one first,
// each at most once per batch. The batch's target property, if any, only catches groups
// none of their names resolve.
func (u *reconciliationUsecase) resolveProperty(ctx context.Context, run *batchRun, g bookingGroup, draft entity.MergedDraft) (resolver.PropertyEntry, bool, error) {
	for _, name := range listingNames(g, draft) {
		res, err := u.resolveName(ctx, run, draft.Platform, name)
		if err != nil {
			return resolver.PropertyEntry{}, false, err
		}
		if !res.Resolved() {
			continue
		}
		if p, found := run.catalog.Find(res.PropertyID); found {
			return p, true, nil
		}
		return res.Property, true, nil
	}

	if run.property != nil {
		return *run.property, true, nil
	}
	return resolver.PropertyEntry{}, false, nil
}

func (u *reconciliationUsecase) resolveName(ctx context.Context, run *batchRun, platform, name string) (resolver.Resolution, error) {
	key := platform + "|" + name
	if res, ok := run.cache[key]; ok {
		return res, nil
	}
	res, catalog, err := u.resolver.Resolve(ctx, name, platform, run.catalog, run.resolveOpts)
	if err != nil {
		return resolver.Resolution{}, err
	}
	run.catalog = catalog
	run.cache[key] = res
	run.noteResolution(name, res)
	return res, nil
}

func listingNames(g bookingGroup, draft entity.MergedDraft) []string {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	}
	add(draft.ListingName)
	for _, item := range g.items {
		add(item.Record.ListingName)
	}
	return names
}

func (run *batchRun) noteResolution(name string, res resolver.Resolution) {
	switch {
	case res.Outcome == resolver.OutcomeCreated:
		run.summary.PropertiesCreated++
		run.summary.AliasesAdded = append(run.summary.AliasesAdded, name)
	case res.AliasAdded:
		run.summary.AliasesAdded = append(run.summary.AliasesAdded, name)
	}
}

func (run *batchRun) failed(g bookingGroup, err error) groupResult {
	log.Warnf("[Reconcile] batch=%s booking=%s failed: %v", run.batchID, g.bookingID, err)
	return groupResult{group: g, state: groupFailed, err: err}
}

func (run *batchRun) record(res groupResult) {
	s := run.summary
	n := len(res.group.items)
	switch res.state {
	case groupCreated:
		s.Imported++
		s.Processed += n
	case groupUpdated:
		s.Updated++
		s.Processed += n
	case groupUnchanged, groupDuplicate:
		s.Processed += n
		if run.source == consts.ImportSourceCSV {
			s.Skipped += n
		}
	case groupNeedsReview:
		s.NeedsReview += n
	case groupFailed:
		first := res.group.items[0]
		s.AddError(entity.ItemError{Row: first.Row, ItemID: first.ItemID, Error: res.err.Error()})
	}
	if res.cancelled {
		s.Cancelled++
	}
}

func (u *reconciliationUsecase) newReservation(run *batchRun, draft entity.MergedDraft, property resolver.PropertyEntry) model.Reservation {
	now := u.now().Unix()
	amounts := split.Calculate(draft.HostEarnings.Decimal, draft.CleaningFee.Decimal, property.Billing)
	return model.Reservation{
		AccountID:       run.accountID,
		Platform:        draft.Platform,
		BookingID:       draft.BookingID,
		Synthetic:       draft.Synthetic,
		PropertyID:      property.PropertyID,
		BillingConfigID: property.BillingConfigID,
		GuestName:       draft.GuestName,
		GuestEmail:      draft.GuestEmail,
		Adults:          draft.Adults,
		Children:        draft.Children,
		Infants:         draft.Infants,
		CheckIn:         draft.CheckIn,
		CheckOut:        draft.CheckOut,
		Nights:          draft.Nights,
		RoomTotal:       draft.RoomTotal.Decimal,
		CleaningFee:     draft.CleaningFee.Decimal,
		HostServiceFee:  draft.HostServiceFee.Decimal,
		HostEarnings:    draft.HostEarnings.Decimal,
		OwnerAmount:     amounts.OwnerAmount,
		ManagerAmount:   amounts.ManagerAmount,
		CleaningAmount:  amounts.CleaningAmount,
		Currency:        draft.Currency,
		Status:          draft.Status,
		Type:            draft.Type,
		ImportSource:    run.source,
		ImportBatchID:   run.batchID,
		ListingName:     draft.ListingName,
		CreateTime:      now,
		CreateBy:        consts.SystemUser,
		UpdateTime:      now,
		UpdateBy:        consts.SystemUser,
	}
}

// applyDecision fills the gaps dedup found and recomputes the split when money moved.
func applyDecision(r model.Reservation, d dedup.Decision, billing split.Config, now int64) model.Reservation {
	if d.Status != "" {
		r.Status = d.Status
	}
	for f, v := range d.Money {
		switch f {
		case merger.FieldRoomTotal:
			r.RoomTotal = v
		case merger.FieldCleaningFee:
			r.CleaningFee = v
		case merger.FieldHostServiceFee:
			r.HostServiceFee = v
		case merger.FieldHostEarnings:
			r.HostEarnings = v
		}
	}
	if d.TouchesMoney() {
		amounts := split.Calculate(r.HostEarnings, r.CleaningFee, billing)
		r.OwnerAmount = amounts.OwnerAmount
		r.ManagerAmount = amounts.ManagerAmount
		r.CleaningAmount = amounts.CleaningAmount
	}
	r.UpdateTime = now
	r.UpdateBy = consts.SystemUser
	return r
}

func snapshotOf(r *model.Reservation) *entity.ReservationSnapshot {
	if r == nil {
		return nil
	}
	return &entity.ReservationSnapshot{
		ID:             r.ID,
		Status:         r.Status,
		RoomTotal:      r.RoomTotal,
		CleaningFee:    r.CleaningFee,
		HostServiceFee: r.HostServiceFee,
		HostEarnings:   r.HostEarnings,
	}
}
