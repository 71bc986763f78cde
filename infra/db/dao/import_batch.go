package dao

import (
	"fmt"

	"github.com/jinzhu/gorm"
	"github.com/radhian/reservation-reconciliation/infra/db/model"
)

func (d *dao) CreateImportBatch(payload *model.ImportBatch) error {
	if err := d.db.Create(payload).Error; err != nil {
		return fmt.Errorf("failed to create import batch: %w", err)
	}
	return nil
}

func (d *dao) UpdateImportBatch(batch model.ImportBatch) error {
	if err := d.db.Save(&batch).Error; err != nil {
		return fmt.Errorf("failed to update import batch: %w", err)
	}
	return nil
}

func (d *dao) GetImportBatchesByAccount(accountID string) ([]model.ImportBatch, error) {
	var batches []model.ImportBatch
	if err := d.db.
		Where("account_id = ?", accountID).
		Order("create_time DESC").
		Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

func (d *dao) GetImportBatchByBatchID(accountID, batchID string) (model.ImportBatch, error) {
	var batch model.ImportBatch
	err := d.db.Where("account_id = ? AND batch_id = ?", accountID, batchID).First(&batch).Error
	if gorm.IsRecordNotFoundError(err) {
		return batch, fmt.Errorf("import batch %s: %w", batchID, ErrNotFound)
	}
	if err != nil {
		return batch, fmt.Errorf("failed to fetch import batch: %w", err)
	}
	return batch, nil
}
