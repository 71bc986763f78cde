package reconciliation

import (
	"context"

	"github.com/labstack/gommon/log"
	"github.com/radhian/reservation-reconciliation/adapter"
	"github.com/radhian/reservation-reconciliation/consts"
	"github.com/radhian/reservation-reconciliation/entity"
	"github.com/radhian/reservation-reconciliation/infra/db/model"
	"github.com/radhian/reservation-reconciliation/resolver"
)

// ProcessNotifications reconciles every pending or parked fragment of the account.
func (u *reconciliationUsecase) ProcessNotifications(ctx context.Context, req entity.NotificationBatchRequest) (*entity.NotificationBatchResult, error) {
	if !u.locker.TryLock(req.AccountID) {
		return nil, ErrImportInProgress
	}
	defer u.locker.Unlock(req.AccountID)

	statuses := []string{consts.FragmentStatusPending, consts.FragmentStatusNeedsReview}
	return u.processNotifications(ctx, req, statuses, req.AccountID)
}

func (u *reconciliationUsecase) processNotifications(ctx context.Context, req entity.NotificationBatchRequest, statuses []string, operator string) (*entity.NotificationBatchResult, error) {
	fragments, err := u.dao.GetNotificationFragmentsByStatusList(req.AccountID, statuses)
	if err != nil {
		return nil, err
	}
	if len(fragments) == 0 {
		return (&entity.ImportSummary{}).ToNotificationResult(), nil
	}

	catalog, err := u.loadCatalog(req.AccountID)
	if err != nil {
		return nil, err
	}

	overrides := make(map[string]int64, len(req.ConfirmMatches))
	for _, m := range req.ConfirmMatches {
		overrides[m.PropertyName] = m.PropertyID
	}

	batch, err := u.startBatch(req.AccountID, consts.ImportSourceEmail, "", operator)
	if err != nil {
		return nil, err
	}

	run := newBatchRun(req.AccountID, batch.BatchID, consts.ImportSourceEmail, catalog, resolver.Options{
		ManualOverrides: overrides,
		AllowAutoLink:   !req.ProcessAutoMatchedOnly,
		AllowCreate:     req.AutoCreateProperties && !req.ProcessAutoMatchedOnly,
	})
	s := run.summary
	s.TotalItems = len(fragments)

	byExternalID := make(map[string]model.NotificationFragment, len(fragments))
	for _, f := range fragments {
		byExternalID[f.ExternalID] = f
	}

	parsed := adapter.NewNotificationAdapter().Parse(fragments)
	for _, skipped := range parsed.Skipped {
		s.Skipped++
		u.markFragment(byExternalID[skipped.ExternalID], batch.BatchID, consts.FragmentStatusSkipped, skipped.Reason, nil)
	}
	s.ListingsFound = listingsFound(parsed.Items)

	log.Infof("[NotificationBatch] account=%s batch=%s fragments=%d items=%d",
		req.AccountID, batch.BatchID, len(fragments), len(parsed.Items))

	for _, res := range u.reconcile(ctx, run, parsed.Items) {
		status, message := fragmentStatusOf(res)
		var reservationID *int64
		if res.reservationID != 0 {
			id := res.reservationID
			reservationID = &id
		}
		for _, item := range res.group.items {
			u.markFragment(byExternalID[item.ItemID], batch.BatchID, status, message, reservationID)
		}
	}

	u.finishBatch(batch, s, operator)
	return s.ToNotificationResult(), nil
}

func fragmentStatusOf(res groupResult) (string, string) {
	switch res.state {
	case groupNeedsReview:
		return consts.FragmentStatusNeedsReview, "property needs review"
	case groupFailed:
		return consts.FragmentStatusError, res.err.Error()
	}
	return consts.FragmentStatusProcessed, ""
}

func (u *reconciliationUsecase) markFragment(f model.NotificationFragment, batchID, status, message string, reservationID *int64) {
	if f.ID == 0 || (f.Status == status && f.ErrorMessage == message) {
		return
	}
	f.Status = status
	f.ErrorMessage = message
	f.ImportBatchID = batchID
	if reservationID != nil {
		f.ReservationID = reservationID
	}
	f.UpdateTime = u.now().Unix()
	if err := u.dao.UpdateNotificationFragment(f); err != nil {
		log.Errorf("[NotificationBatch] fragment=%s: %v", f.ExternalID, err)
	}
}
