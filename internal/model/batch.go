package model

import "time"

// DTRBatch is one raw-text submission, content-addressed by hash.
// Rows are immutable once created; re-submitting identical text resolves to
// the existing batch instead of creating a new one.
type DTRBatch struct {
	BatchID     string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"batch_id"`
	BatchName   string    `gorm:"type:varchar(120);not null"                     json:"batch_name"`
	RawLog      string    `gorm:"type:text;not null"                             json:"-"`
	ContentHash string    `gorm:"type:char(64);not null;uniqueIndex:uq_dtr_batches_content_hash" json:"content_hash"`
	RecordCount int       `gorm:"not null;default:0"                             json:"record_count"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"updated_at"`
}

// TableName maps the model to dtr_batches.
func (DTRBatch) TableName() string { return "dtr_batches" }
