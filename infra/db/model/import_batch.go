package model

// ImportBatch is the audit row written for every bulk import and notification batch.
type ImportBatch struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	BatchID     string `gorm:"size:64;not null;unique_index" json:"batch_id"`
	AccountID   string `gorm:"size:64;not null;index" json:"account_id"`
	Source      string `gorm:"size:16;not null" json:"source"`
	Platform    string `gorm:"size:16" json:"platform"`
	Status      int    `gorm:"not null" json:"status"`
	TotalItems  int64  `gorm:"not null" json:"total_items"`
	Imported    int64  `gorm:"not null" json:"imported"`
	Updated     int64  `gorm:"not null" json:"updated"`
	Cancelled   int64  `gorm:"not null" json:"cancelled"`
	Skipped     int64  `gorm:"not null" json:"skipped"`
	NeedsReview int64  `gorm:"not null" json:"needs_review"`
	ErrorCount  int64  `gorm:"not null" json:"error_count"`
	// Errors and Listings hold JSON arrays.
	Errors     string `gorm:"type:text;not null" json:"errors"`
	Listings   string `gorm:"type:text;not null" json:"listings"`
	CreateTime int64  `gorm:"not null" json:"create_time"`
	CreateBy   string `gorm:"size:100;not null" json:"create_by"`
	UpdateTime int64  `gorm:"not null" json:"update_time"`
	UpdateBy   string `gorm:"size:100;not null" json:"update_by"`
}
