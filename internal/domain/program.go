package domain

import (
	"context"
	"time"

	"fittrack/internal/query"
)

// Program groups exercises. An exercise belongs to at most one program.
type Program struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Program) TableName() string { return "programs" }

type ProgramRepository interface {
	Create(ctx context.Context, p *Program) error
	FindByID(ctx context.Context, id uint64) (*Program, error)
	List(ctx context.Context, p query.Params) ([]Program, int64, error)
}
