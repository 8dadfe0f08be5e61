package repo

import (
	"context"

	"gorm.io/gorm"

	"fittrack/internal/domain"
	"fittrack/internal/query"
)

type CompletedExerciseRepo struct{ db *gorm.DB }

func NewCompletedExerciseRepo(db *gorm.DB) *CompletedExerciseRepo {
	return &CompletedExerciseRepo{db: db}
}

func (r *CompletedExerciseRepo) Create(ctx context.Context, ce *domain.CompletedExercise) error {
	return r.db.WithContext(ctx).Create(ce).Error
}

func (r *CompletedExerciseRepo) ListByOwner(ctx context.Context, userID uint64, p query.Params) ([]domain.CompletedExercise, int64, error) {
	tx := r.db.WithContext(ctx).Model(&domain.CompletedExercise{}).Where("user_id = ?", userID)
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var entries []domain.CompletedExercise
	if err := tx.Offset(p.Offset).Limit(p.Limit).Order("completed_at desc").Find(&entries).Error; err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (r *CompletedExerciseRepo) DeleteByOwner(ctx context.Context, id, userID uint64) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.CompletedExercise{})
	return res.RowsAffected > 0, res.Error
}
