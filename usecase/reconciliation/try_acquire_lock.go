package reconciliation

import (
	"context"

	"github.com/labstack/gommon/log"
)

// TryAcquireLock picks the first account with pending fragments that no worker holds.
func (u *reconciliationUsecase) TryAcquireLock(ctx context.Context) (bool, string, error) {
	accounts, err := u.dao.GetAccountsWithPendingFragments()
	if err != nil {
		return false, "", err
	}

	for _, accountID := range accounts {
		if !u.locker.TryLock(accountID) {
			continue
		}
		log.Infof("[LOCK_PROCESS] account_id:%s", accountID)
		return true, accountID, nil
	}

	return false, "", nil
}

func (u *reconciliationUsecase) UnlockProcess(ctx context.Context, accountID string) {
	u.locker.Unlock(accountID)
	log.Infof("[UNLOCK_PROCESS] account_id:%s", accountID)
}
