package model

// ImportBatchAsset records the input an import batch was built from.
type ImportBatchAsset struct {
	ID            int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ImportBatchID int64  `gorm:"not null;index" json:"import_batch_id"`
	DataType      int64  `gorm:"not null" json:"data_type"`
	FileName      string `gorm:"size:255;not null" json:"file_name"`
	FileSize      int64  `gorm:"not null" json:"file_size"`
	Checksum      string `gorm:"size:64;not null" json:"checksum"`
	CreateTime    int64  `gorm:"not null" json:"create_time"`
	CreateBy      string `gorm:"size:100;not null" json:"create_by"`
}
