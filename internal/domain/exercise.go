package domain

import (
	"context"
	"time"

	"fittrack/internal/query"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type Exercise struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:200;not null" json:"name"`
	Difficulty string    `gorm:"size:16;not null" json:"difficulty"`
	ProgramID  *uint64   `gorm:"index" json:"programID"`
	Program    *Program  `gorm:"foreignKey:ProgramID" json:"program,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (Exercise) TableName() string { return "exercises" }

type ExerciseRepository interface {
	Create(ctx context.Context, e *Exercise) error
	FindByID(ctx context.Context, id uint64) (*Exercise, error)
	List(ctx context.Context, p query.Params) ([]Exercise, int64, error)
	Update(ctx context.Context, e *Exercise) error
	// SetProgram moves the exercise into programID (nil detaches). A single
	// UPDATE, so reassignment is atomic at the storage layer.
	SetProgram(ctx context.Context, id uint64, programID *uint64) error
	Delete(ctx context.Context, id uint64) (bool, error)
}
