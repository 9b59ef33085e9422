package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AlexandreJustinRepia/dtr-denr/internal/model"
)

// BatchRepository is the data-access interface for raw log batches.
type BatchRepository interface {
	// CreateIfAbsent atomically inserts a batch unless its content_hash
	// already exists. It reports true when a row was actually inserted.
	// Like the punch insert, the uniqueness constraint itself is the
	// dedup mechanism; a conflict is not an error.
	CreateIfAbsent(ctx context.Context, batch *model.DTRBatch) (bool, error)
	GetByHash(ctx context.Context, contentHash string) (*model.DTRBatch, error)
	GetByID(ctx context.Context, id string) (*model.DTRBatch, error)
	List(ctx context.Context, offset, limit int) ([]model.DTRBatch, int64, error)
}

// batchRepo is the GORM implementation of BatchRepository.
type batchRepo struct {
	db *gorm.DB
}

// NewBatchRepo creates a BatchRepository.
func NewBatchRepo(db *gorm.DB) BatchRepository {
	return &batchRepo{db: db}
}

func (r *batchRepo) CreateIfAbsent(ctx context.Context, batch *model.DTRBatch) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "content_hash"}},
			DoNothing: true,
		}).
		Create(batch)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *batchRepo) GetByHash(ctx context.Context, contentHash string) (*model.DTRBatch, error) {
	var batch model.DTRBatch
	err := r.db.WithContext(ctx).
		Where("content_hash = ?", contentHash).
		First(&batch).Error
	if err != nil {
		return nil, err
	}
	return &batch, nil
}

func (r *batchRepo) GetByID(ctx context.Context, id string) (*model.DTRBatch, error) {
	var batch model.DTRBatch
	err := r.db.WithContext(ctx).
		Where("batch_id = ?", id).
		First(&batch).Error
	if err != nil {
		return nil, err
	}
	return &batch, nil
}

func (r *batchRepo) List(ctx context.Context, offset, limit int) ([]model.DTRBatch, int64, error) {
	var batches []model.DTRBatch
	var total int64

	db := r.db.WithContext(ctx).Model(&model.DTRBatch{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&batches).Error
	return batches, total, err
}
