package reconciliation

import (
	"context"
	"fmt"

	"github.com/labstack/gommon/log"
	"github.com/radhian/reservation-reconciliation/consts"
	"github.com/radhian/reservation-reconciliation/entity"
)

// ProcessNotificationJob reconciles the account's pending fragments with auto-link on
// and auto-provisioning off, so unknown listings wait for review. The caller holds the
// account lock.
func (u *reconciliationUsecase) ProcessNotificationJob(ctx context.Context, accountID string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("[NotificationJob] Panic recovered for account %s: %v", accountID, r)
			err = fmt.Errorf("notification job panicked: %v", r)
		}
	}()

	log.Infof("[NotificationJob] Starting job for account: %s", accountID)

	req := entity.NotificationBatchRequest{AccountID: accountID}
	res, err := u.processNotifications(ctx, req, []string{consts.FragmentStatusPending}, consts.SystemUser)
	if err != nil {
		log.Errorf("[NotificationJob] account %s failed: %v", accountID, err)
		return err
	}

	log.Infof("[NotificationJob] Job completed for account %s: batch=%s processed=%d created=%d updated=%d review=%d errors=%d",
		accountID, res.ImportBatchID, res.Processed, res.Created, res.Updated, res.NeedsReview, len(res.Errors))
	return nil
}
