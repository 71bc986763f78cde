package dao

import (
	"fmt"

	"github.com/radhian/reservation-reconciliation/infra/db/model"
)

func (d *dao) CreateImportBatchAsset(payload model.ImportBatchAsset) error {
	if err := d.db.Create(&payload).Error; err != nil {
		return fmt.Errorf("failed to save import asset: %v", err)
	}
	return nil
}

func (d *dao) GetImportBatchAssetsByBatchID(importBatchID int64) ([]model.ImportBatchAsset, error) {
	var assets []model.ImportBatchAsset
	if err := d.db.Where("import_batch_id = ?", importBatchID).Find(&assets).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch import assets: %w", err)
	}
	return assets, nil
}
