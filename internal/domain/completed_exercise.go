package domain

import (
	"context"
	"time"

	"fittrack/internal/query"
)

// CompletedExercise is owned exclusively by the user who logged it and is
// immutable once created, except for deletion by its owner.
type CompletedExercise struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	UserID      uint64    `gorm:"not null;index" json:"userID"`
	ExerciseID  uint64    `gorm:"not null;index" json:"exerciseID"`
	CompletedAt time.Time `gorm:"not null" json:"completedAt"`
	Duration    int       `gorm:"not null" json:"duration"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (CompletedExercise) TableName() string { return "completed_exercises" }

// CompletedExerciseRepository scopes every read and write by owner id, so a
// caller can never touch another user's rows even with a guessable id.
type CompletedExerciseRepository interface {
	Create(ctx context.Context, ce *CompletedExercise) error
	ListByOwner(ctx context.Context, userID uint64, p query.Params) ([]CompletedExercise, int64, error)
	DeleteByOwner(ctx context.Context, id, userID uint64) (bool, error)
}
