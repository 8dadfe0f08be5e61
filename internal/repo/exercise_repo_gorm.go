package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fittrack/internal/domain"
	"fittrack/internal/query"
)

type ExerciseRepo struct{ db *gorm.DB }

func NewExerciseRepo(db *gorm.DB) *ExerciseRepo { return &ExerciseRepo{db: db} }

func (r *ExerciseRepo) Create(ctx context.Context, e *domain.Exercise) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *ExerciseRepo) FindByID(ctx context.Context, id uint64) (*domain.Exercise, error) {
	var e domain.Exercise
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *ExerciseRepo) List(ctx context.Context, p query.Params) ([]domain.Exercise, int64, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Exercise{})
	if p.Search != "" {
		tx = tx.Where("LOWER(name) LIKE LOWER(?)", "%"+p.Search+"%")
	}
	if p.ProgramID != nil {
		tx = tx.Where("program_id = ?", *p.ProgramID)
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var exercises []domain.Exercise
	if err := tx.Preload("Program").Offset(p.Offset).Limit(p.Limit).Order("id").Find(&exercises).Error; err != nil {
		return nil, 0, err
	}
	return exercises, total, nil
}

func (r *ExerciseRepo) Update(ctx context.Context, e *domain.Exercise) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *ExerciseRepo) SetProgram(ctx context.Context, id uint64, programID *uint64) error {
	return r.db.WithContext(ctx).
		Model(&domain.Exercise{}).
		Where("id = ?", id).
		Update("program_id", programID).Error
}

func (r *ExerciseRepo) Delete(ctx context.Context, id uint64) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Exercise{})
	return res.RowsAffected > 0, res.Error
}
