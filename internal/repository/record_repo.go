package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AlexandreJustinRepia/dtr-denr/internal/model"
)

// EmployeeRow is one distinct employee with their recorded status.
type EmployeeRow struct {
	EmployeeName     string
	EmploymentStatus string
}

// MonthRef identifies one year-month an employee has punches in.
type MonthRef struct {
	Year  int
	Month int
}

// RecordRepository is the data-access interface for punch records.
type RecordRepository interface {
	// InsertIfAbsent atomically inserts a punch unless the
	// (employee_name, log_date, log_time) key already exists. It reports
	// true when a row was actually inserted. Conflicts are not errors:
	// the uniqueness constraint is the idempotency mechanism, not a
	// select-then-insert check.
	InsertIfAbsent(ctx context.Context, rec *model.DTRRecord) (bool, error)
	// ListByEmployeeMonth loads one employee's punches for one month in
	// a single query, ordered by date then time. status narrows by
	// employment status when non-empty.
	ListByEmployeeMonth(ctx context.Context, name string, year, month int, status string) ([]model.DTRRecord, error)
	// DistinctMonths lists every year-month the employee has punches in,
	// ascending.
	DistinctMonths(ctx context.Context, name string, status string) ([]MonthRef, error)
	// DistinctEmployees pages through distinct employee names in
	// alphabetical order, optionally narrowed by a name search term and
	// employment status.
	DistinctEmployees(ctx context.Context, search, status string, offset, limit int) ([]EmployeeRow, int64, error)
	// GetEmployeeStatus returns the recorded employment status of an
	// employee, or empty string when the employee has no punches.
	GetEmployeeStatus(ctx context.Context, name string) (string, error)
}

// recordRepo is the GORM implementation of RecordRepository.
type recordRepo struct {
	db *gorm.DB
}

// NewRecordRepo creates a RecordRepository.
func NewRecordRepo(db *gorm.DB) RecordRepository {
	return &recordRepo{db: db}
}

func (r *recordRepo) InsertIfAbsent(ctx context.Context, rec *model.DTRRecord) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "employee_name"},
				{Name: "log_date"},
				{Name: "log_time"},
			},
			DoNothing: true,
		}).
		Create(rec)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *recordRepo) ListByEmployeeMonth(ctx context.Context, name string, year, month int, status string) ([]model.DTRRecord, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	db := r.db.WithContext(ctx).
		Where("employee_name = ? AND log_date >= ? AND log_date < ?", name, start, end)
	if status != "" {
		db = db.Where("employment_status = ?", status)
	}

	var recs []model.DTRRecord
	err := db.
		Order("log_date ASC, log_time ASC").
		Find(&recs).Error
	return recs, err
}

func (r *recordRepo) DistinctMonths(ctx context.Context, name string, status string) ([]MonthRef, error) {
	db := r.db.WithContext(ctx).
		Model(&model.DTRRecord{}).
		Select("EXTRACT(YEAR FROM log_date)::int AS year, EXTRACT(MONTH FROM log_date)::int AS month").
		Where("employee_name = ?", name)
	if status != "" {
		db = db.Where("employment_status = ?", status)
	}

	var months []MonthRef
	err := db.
		Group("year, month").
		Order("year ASC, month ASC").
		Scan(&months).Error
	return months, err
}

func (r *recordRepo) DistinctEmployees(ctx context.Context, search, status string, offset, limit int) ([]EmployeeRow, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&model.DTRRecord{}).
		Select("employee_name, MIN(employment_status) AS employment_status").
		Group("employee_name")
	if search != "" {
		base = base.Where("employee_name ILIKE ?", "%"+search+"%")
	}
	if status != "" {
		base = base.Where("employment_status = ?", status)
	}

	var total int64
	if err := r.db.WithContext(ctx).
		Table("(?) AS sub", base).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []EmployeeRow
	err := base.
		Order("employee_name ASC").
		Offset(offset).Limit(limit).
		Scan(&rows).Error
	return rows, total, err
}

func (r *recordRepo) GetEmployeeStatus(ctx context.Context, name string) (string, error) {
	var rec model.DTRRecord
	err := r.db.WithContext(ctx).
		Where("employee_name = ?", name).
		Order("log_date ASC, log_time ASC").
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return rec.EmploymentStatus, nil
}
