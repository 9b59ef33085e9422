package repository

import "gorm.io/gorm"

// Repository aggregates all data-access interfaces.
type Repository struct {
	Batch  BatchRepository
	Record RecordRepository
}

// NewRepository builds the aggregate over one gorm connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Batch:  NewBatchRepo(db),
		Record: NewRecordRepo(db),
	}
}
