package dao

import (
	"fmt"

	"github.com/radhian/reservation-reconciliation/consts"
	"github.com/radhian/reservation-reconciliation/infra/db/model"
)

func (d *dao) CreateNotificationFragment(payload *model.NotificationFragment) error {
	if err := d.db.Create(payload).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("fragment %s: %w", payload.ExternalID, ErrDuplicateFragment)
		}
		return fmt.Errorf("failed to save notification fragment: %w", err)
	}
	return nil
}

// GetNotificationFragmentsByStatusList returns fragments oldest first, so the first
// fragment to mention a booking is folded first.
func (d *dao) GetNotificationFragmentsByStatusList(accountID string, statusList []string) ([]model.NotificationFragment, error) {
	var fragments []model.NotificationFragment
	if err := d.db.
		Where("account_id = ? AND status IN (?)", accountID, statusList).
		Order("received_at ASC, id ASC").
		Find(&fragments).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch fragments: %w", err)
	}
	return fragments, nil
}

func (d *dao) UpdateNotificationFragment(fragment model.NotificationFragment) error {
	if err := d.db.Save(&fragment).Error; err != nil {
		return fmt.Errorf("failed to update fragment %d: %w", fragment.ID, err)
	}
	return nil
}

func (d *dao) GetAccountsWithPendingFragments() ([]string, error) {
	var accounts []string
	if err := d.db.Model(&model.NotificationFragment{}).
		Where("status = ?", consts.FragmentStatusPending).
		Order("MIN(received_at) ASC").
		Group("account_id").
		Pluck("account_id", &accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}
