package reconciliation

import (
	"context"
	"errors"
	"fmt"

	"github.com/radhian/reservation-reconciliation/entity"
	"github.com/radhian/reservation-reconciliation/infra/db/dao"
)

// GetImportBatches lists the account's batches newest first, without per-item errors.
func (u *reconciliationUsecase) GetImportBatches(ctx context.Context, accountID string) ([]entity.ImportBatchView, error) {
	batches, err := u.dao.GetImportBatchesByAccount(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list import batches: %w", err)
	}

	views := make([]entity.ImportBatchView, 0, len(batches))
	for _, b := range batches {
		b.Errors = ""
		view, err := batchView(b, nil)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (u *reconciliationUsecase) GetImportBatch(ctx context.Context, accountID, batchID string) (*entity.ImportBatchView, error) {
	batch, err := u.dao.GetImportBatchByBatchID(accountID, batchID)
	if errors.Is(err, dao.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", batchID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	assets, err := u.dao.GetImportBatchAssetsByBatchID(batch.ID)
	if err != nil {
		return nil, err
	}

	view, err := batchView(batch, assets)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
