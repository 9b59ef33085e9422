package model

import "time"

// Employment status values assigned at first insert.
const (
	StatusPermanent = "permanent"
	StatusJobOrder  = "job-order"
)

// DTRRecord is a single punch: one employee, one date, one minute-precision
// time. The (employee_name, log_date, log_time) key is unique; conflicting
// inserts are no-ops, so overlapping batches can be ingested in any order.
type DTRRecord struct {
	RecordID     string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"record_id"`
	EmployeeName string    `gorm:"type:varchar(120);not null;uniqueIndex:uq_dtr_records_punch,priority:1" json:"employee_name"`
	LogDate      time.Time `gorm:"type:date;not null;uniqueIndex:uq_dtr_records_punch,priority:2"         json:"log_date"`
	LogTime      string    `gorm:"type:char(5);not null;uniqueIndex:uq_dtr_records_punch,priority:3"      json:"log_time"` // HH:MM, 24h
	// EmploymentStatus is a snapshot taken against the permanent roster at
	// first insert; later roster edits never reclassify existing rows.
	EmploymentStatus string    `gorm:"type:varchar(20);not null;default:'job-order'" json:"employment_status"`
	CreatedAt        time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"            json:"created_at"`
	UpdatedAt        time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"            json:"updated_at"`
}

// TableName maps the model to dtr_records.
func (DTRRecord) TableName() string { return "dtr_records" }
