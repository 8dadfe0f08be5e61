package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fittrack/internal/domain"
	"fittrack/internal/query"
)

type ProgramRepo struct{ db *gorm.DB }

func NewProgramRepo(db *gorm.DB) *ProgramRepo { return &ProgramRepo{db: db} }

func (r *ProgramRepo) Create(ctx context.Context, p *domain.Program) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProgramRepo) FindByID(ctx context.Context, id uint64) (*domain.Program, error) {
	var p domain.Program
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProgramRepo) List(ctx context.Context, p query.Params) ([]domain.Program, int64, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Program{})
	if p.Search != "" {
		tx = tx.Where("LOWER(name) LIKE LOWER(?)", "%"+p.Search+"%")
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var programs []domain.Program
	if err := tx.Offset(p.Offset).Limit(p.Limit).Order("id").Find(&programs).Error; err != nil {
		return nil, 0, err
	}
	return programs, total, nil
}
