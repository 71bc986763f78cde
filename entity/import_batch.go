package entity

// ImportBatchView is an audit row as returned by the import history endpoints.
type ImportBatchView struct {
	BatchID       string           `json:"importBatchId"`
	Source        string           `json:"source"`
	Platform      string           `json:"platform,omitempty"`
	Status        string           `json:"status"`
	TotalItems    int64            `json:"totalItems"`
	Imported      int64            `json:"importedCount"`
	Updated       int64            `json:"updatedCount"`
	Cancelled     int64            `json:"cancelledCount"`
	Skipped       int64            `json:"skippedCount"`
	NeedsReview   int64            `json:"needsReviewCount"`
	ErrorCount    int64            `json:"errorCount"`
	Errors        []ItemError      `json:"errors,omitempty"`
	ListingsFound []string         `json:"listingsFound,omitempty"`
	Files         []ImportFileView `json:"files,omitempty"`
	CreatedAt     int64            `json:"createdAt"`
	CreatedBy     string           `json:"createdBy"`
}

type ImportFileView struct {
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
	Checksum string `json:"checksum"`
}
