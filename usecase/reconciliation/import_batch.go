package reconciliation

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/labstack/gommon/log"
	"github.com/radhian/reservation-reconciliation/consts"
	"github.com/radhian/reservation-reconciliation/entity"
	"github.com/radhian/reservation-reconciliation/infra/db/model"
	"github.com/radhian/reservation-reconciliation/utils"
)

func (u *reconciliationUsecase) startBatch(accountID, source, platform, operator string) (*model.ImportBatch, error) {
	now := u.now()
	batch := &model.ImportBatch{
		BatchID:    utils.NewBatchID(now),
		AccountID:  accountID,
		Source:     source,
		Platform:   platform,
		Status:     consts.ImportStatusInProgress,
		Errors:     "[]",
		Listings:   "[]",
		CreateTime: now.Unix(),
		CreateBy:   operator,
		UpdateTime: now.Unix(),
		UpdateBy:   operator,
	}
	if err := u.dao.CreateImportBatch(batch); err != nil {
		return nil, err
	}
	return batch, nil
}

func (u *reconciliationUsecase) saveBatchAsset(batch *model.ImportBatch, dataType int64, fileName string, content []byte, operator string) {
	sum := sha256.Sum256(content)
	asset := model.ImportBatchAsset{
		ImportBatchID: batch.ID,
		DataType:      dataType,
		FileName:      fileName,
		FileSize:      int64(len(content)),
		Checksum:      hex.EncodeToString(sum[:]),
		CreateTime:    u.now().Unix(),
		CreateBy:      operator,
	}
	if err := u.dao.CreateImportBatchAsset(asset); err != nil {
		log.Errorf("[ImportBatch] batch=%s: %v", batch.BatchID, err)
	}
}

// finishBatch stores the summary on the audit row. A failed audit write is logged; the
// reservations it describes are already persisted.
func (u *reconciliationUsecase) finishBatch(batch *model.ImportBatch, s *entity.ImportSummary, operator string) {
	errs := s.Errors
	if errs == nil {
		errs = []entity.ItemError{}
	}
	errorsJSON, err := json.Marshal(errs)
	if err != nil {
		log.Errorf("[ImportBatch] batch=%s failed to marshal errors: %v", batch.BatchID, err)
		errorsJSON = []byte("[]")
	}
	listings := s.ListingsFound
	if listings == nil {
		listings = []string{}
	}
	listingsJSON, _ := json.Marshal(listings)

	batch.Platform = s.Platform
	batch.Status = consts.ImportStatusDone
	batch.TotalItems = int64(s.TotalItems)
	batch.Imported = int64(s.Imported)
	batch.Updated = int64(s.Updated)
	batch.Cancelled = int64(s.Cancelled)
	batch.Skipped = int64(s.Skipped)
	batch.NeedsReview = int64(s.NeedsReview)
	batch.ErrorCount = int64(len(s.Errors))
	batch.Errors = string(errorsJSON)
	batch.Listings = string(listingsJSON)
	batch.UpdateTime = u.now().Unix()
	batch.UpdateBy = operator

	if err := u.dao.UpdateImportBatch(*batch); err != nil {
		log.Errorf("[ImportBatch] batch=%s: %v", batch.BatchID, err)
		return
	}
	log.Infof("[ImportBatch] batch=%s source=%s imported=%d updated=%d skipped=%d review=%d errors=%d",
		batch.BatchID, batch.Source, batch.Imported, batch.Updated, batch.Skipped, batch.NeedsReview, batch.ErrorCount)
}

func batchView(b model.ImportBatch, assets []model.ImportBatchAsset) (entity.ImportBatchView, error) {
	view := entity.ImportBatchView{
		BatchID:     b.BatchID,
		Source:      b.Source,
		Platform:    b.Platform,
		Status:      batchStatusName(b.Status),
		TotalItems:  b.TotalItems,
		Imported:    b.Imported,
		Updated:     b.Updated,
		Cancelled:   b.Cancelled,
		Skipped:     b.Skipped,
		NeedsReview: b.NeedsReview,
		ErrorCount:  b.ErrorCount,
		CreatedAt:   b.CreateTime,
		CreatedBy:   b.CreateBy,
	}
	if b.Errors != "" {
		if err := json.Unmarshal([]byte(b.Errors), &view.Errors); err != nil {
			return view, fmt.Errorf("batch %s: failed to decode errors: %w", b.BatchID, err)
		}
	}
	if b.Listings != "" {
		if err := json.Unmarshal([]byte(b.Listings), &view.ListingsFound); err != nil {
			return view, fmt.Errorf("batch %s: failed to decode listings: %w", b.BatchID, err)
		}
	}
	for _, a := range assets {
		view.Files = append(view.Files, entity.ImportFileView{FileName: a.FileName, FileSize: a.FileSize, Checksum: a.Checksum})
	}
	return view, nil
}

func batchStatusName(status int) string {
	switch status {
	case consts.ImportStatusInProgress:
		return "IN_PROGRESS"
	case consts.ImportStatusDone:
		return "DONE"
	case consts.ImportStatusFailed:
		return "FAILED"
	}
	return "UNKNOWN"
}
