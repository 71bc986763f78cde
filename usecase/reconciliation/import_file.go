package reconciliation

import (
	"context"
	"fmt"
	"strings"

	"github.com/labstack/gommon/log"
	"github.com/radhian/reservation-reconciliation/adapter"
	"github.com/radhian/reservation-reconciliation/consts"
	"github.com/radhian/reservation-reconciliation/entity"
	"github.com/radhian/reservation-reconciliation/resolver"
)

// ImportReservations reconciles one platform export. File-level problems are returned
// before anything is written; row and booking level problems end up in the result.
func (u *reconciliationUsecase) ImportReservations(ctx context.Context, req entity.BulkImportRequest) (*entity.BulkImportResult, error) {
	if !u.locker.TryLock(req.AccountID) {
		return nil, ErrImportInProgress
	}
	defer u.locker.Unlock(req.AccountID)

	order := req.DateOrder
	if order == "" {
		order = u.opts.DefaultDateOrder
	}

	parsed, err := adapter.NewBulkFileAdapter(order, u.opts.MaxImportRows).Parse(req.Content)
	if err != nil {
		log.Warnf("[BulkImport] account=%s file=%s rejected: %v", req.AccountID, req.FileName, err)
		return nil, err
	}

	catalog, err := u.loadCatalog(req.AccountID)
	if err != nil {
		return nil, err
	}

	var forced *resolver.PropertyEntry
	if req.PropertyID > 0 {
		p, ok := catalog.Find(req.PropertyID)
		if !ok {
			return nil, fmt.Errorf("property %d: %w", req.PropertyID, ErrPropertyNotFound)
		}
		if p.BillingConfigID == 0 {
			return nil, fmt.Errorf("property %d: %w", req.PropertyID, ErrNoBillingConfig)
		}
		forced = &p
	} else if !req.AutoCreateProperties && !hasBillingConfig(catalog) {
		return nil, fmt.Errorf("account %s: %w", req.AccountID, ErrNoBillingConfig)
	}

	batch, err := u.startBatch(req.AccountID, consts.ImportSourceCSV, parsed.Platform, req.AccountID)
	if err != nil {
		return nil, err
	}
	u.saveBatchAsset(batch, consts.AssetTypeBulkFile, req.FileName, req.Content, req.AccountID)

	run := newBatchRun(req.AccountID, batch.BatchID, consts.ImportSourceCSV, catalog, resolver.Options{
		AllowAutoLink: true,
		AllowCreate:   req.AutoCreateProperties && forced == nil,
	})
	run.property = forced
	run.skipExisting = req.SkipDuplicates

	s := run.summary
	s.Platform = parsed.Platform
	s.TotalItems = parsed.TotalRows
	s.Skipped = parsed.Skipped
	s.Errors = append(s.Errors, parsed.Errors...)
	s.AmbiguousDateRows = parsed.AmbiguousRows
	s.ListingsFound = listingsFound(parsed.Items)

	log.Infof("[BulkImport] account=%s batch=%s platform=%s rows=%d items=%d",
		req.AccountID, batch.BatchID, parsed.Platform, parsed.TotalRows, len(parsed.Items))

	u.reconcile(ctx, run, parsed.Items)
	u.finishBatch(batch, s, req.AccountID)

	return s.ToBulkResult(), nil
}

// hasBillingConfig reports whether any property of the catalog can be billed.
func hasBillingConfig(catalog resolver.Catalog) bool {
	for _, p := range catalog.Properties {
		if p.BillingConfigID != 0 {
			return true
		}
	}
	return false
}

func listingsFound(items []entity.SourceItem) []string {
	seen := make(map[string]bool)
	var names []string
	for _, item := range items {
		name := strings.TrimSpace(item.Record.ListingName)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}
