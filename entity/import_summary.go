package entity

// ImportSummary is the source-independent outcome of one reconciliation batch.
type ImportSummary struct {
	BatchID           string
	Source            string
	Platform          string
	TotalItems        int
	Imported          int
	Updated           int
	Cancelled         int
	Skipped           int
	NeedsReview       int
	Processed         int
	PropertiesCreated int
	AliasesAdded      []string
	ListingsFound     []string
	AmbiguousDateRows []int
	Errors            []ItemError
}

func (s *ImportSummary) AddError(e ItemError) {
	s.Errors = append(s.Errors, e)
}

func (s *ImportSummary) ToBulkResult() *BulkImportResult {
	return &BulkImportResult{
		TotalRows:         s.TotalItems,
		Platform:          s.Platform,
		ImportedCount:     s.Imported,
		UpdatedCount:      s.Updated,
		SkippedCount:      s.Skipped,
		ErrorCount:        len(s.Errors),
		NeedsReviewCount:  s.NeedsReview,
		Errors:            nonNilErrors(s.Errors),
		ImportBatchID:     s.BatchID,
		ListingsFound:     nonNilStrings(s.ListingsFound),
		AmbiguousDateRows: s.AmbiguousDateRows,
	}
}

func (s *ImportSummary) ToNotificationResult() *NotificationBatchResult {
	return &NotificationBatchResult{
		Processed:         s.Processed,
		Created:           s.Imported,
		Updated:           s.Updated,
		Cancelled:         s.Cancelled,
		Skipped:           s.Skipped,
		NeedsReview:       s.NeedsReview,
		PropertiesCreated: s.PropertiesCreated,
		AliasesAdded:      nonNilStrings(s.AliasesAdded),
		Errors:            nonNilErrors(s.Errors),
		ImportBatchID:     s.BatchID,
	}
}

func nonNilErrors(errs []ItemError) []ItemError {
	if errs == nil {
		return []ItemError{}
	}
	return errs
}

func nonNilStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
