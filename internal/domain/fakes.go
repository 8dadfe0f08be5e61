package domain

import (
	"context"

	"fittrack/internal/query"
)

// Function-field fakes for handler and middleware tests. A call without a
// configured function panics, which keeps unexpected repository traffic
// visible in tests.

type FakeUserRepository struct {
	CreateFn      func(ctx context.Context, u *User) error
	FindByIDFn    func(ctx context.Context, id uint64) (*User, error)
	FindByEmailFn func(ctx context.Context, email string) (*User, error)
	ListFn        func(ctx context.Context, p query.Params) ([]User, int64, error)
	UpdateFn      func(ctx context.Context, u *User) error
	SoftDeleteFn  func(ctx context.Context, id uint64) (bool, error)
}

func (f *FakeUserRepository) Create(ctx context.Context, u *User) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, u)
	}
	panic("unexpected Create")
}

func (f *FakeUserRepository) FindByID(ctx context.Context, id uint64) (*User, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	panic("unexpected FindByID")
}

func (f *FakeUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	if f.FindByEmailFn != nil {
		return f.FindByEmailFn(ctx, email)
	}
	panic("unexpected FindByEmail")
}

func (f *FakeUserRepository) List(ctx context.Context, p query.Params) ([]User, int64, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx, p)
	}
	panic("unexpected List")
}

func (f *FakeUserRepository) Update(ctx context.Context, u *User) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, u)
	}
	panic("unexpected Update")
}

func (f *FakeUserRepository) SoftDelete(ctx context.Context, id uint64) (bool, error) {
	if f.SoftDeleteFn != nil {
		return f.SoftDeleteFn(ctx, id)
	}
	panic("unexpected SoftDelete")
}

type FakeProgramRepository struct {
	CreateFn   func(ctx context.Context, p *Program) error
	FindByIDFn func(ctx context.Context, id uint64) (*Program, error)
	ListFn     func(ctx context.Context, p query.Params) ([]Program, int64, error)
}

func (f *FakeProgramRepository) Create(ctx context.Context, p *Program) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, p)
	}
	panic("unexpected Create")
}

func (f *FakeProgramRepository) FindByID(ctx context.Context, id uint64) (*Program, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	panic("unexpected FindByID")
}

func (f *FakeProgramRepository) List(ctx context.Context, p query.Params) ([]Program, int64, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx, p)
	}
	panic("unexpected List")
}

type FakeExerciseRepository struct {
	CreateFn     func(ctx context.Context, e *Exercise) error
	FindByIDFn   func(ctx context.Context, id uint64) (*Exercise, error)
	ListFn       func(ctx context.Context, p query.Params) ([]Exercise, int64, error)
	UpdateFn     func(ctx context.Context, e *Exercise) error
	SetProgramFn func(ctx context.Context, id uint64, programID *uint64) error
	DeleteFn     func(ctx context.Context, id uint64) (bool, error)
}

func (f *FakeExerciseRepository) Create(ctx context.Context, e *Exercise) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, e)
	}
	panic("unexpected Create")
}

func (f *FakeExerciseRepository) FindByID(ctx context.Context, id uint64) (*Exercise, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	panic("unexpected FindByID")
}

func (f *FakeExerciseRepository) List(ctx context.Context, p query.Params) ([]Exercise, int64, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx, p)
	}
	panic("unexpected List")
}

func (f *FakeExerciseRepository) Update(ctx context.Context, e *Exercise) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, e)
	}
	panic("unexpected Update")
}

func (f *FakeExerciseRepository) SetProgram(ctx context.Context, id uint64, programID *uint64) error {
	if f.SetProgramFn != nil {
		return f.SetProgramFn(ctx, id, programID)
	}
	panic("unexpected SetProgram")
}

func (f *FakeExerciseRepository) Delete(ctx context.Context, id uint64) (bool, error) {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	panic("unexpected Delete")
}

type FakeCompletedExerciseRepository struct {
	CreateFn        func(ctx context.Context, ce *CompletedExercise) error
	ListByOwnerFn   func(ctx context.Context, userID uint64, p query.Params) ([]CompletedExercise, int64, error)
	DeleteByOwnerFn func(ctx context.Context, id, userID uint64) (bool, error)
}

func (f *FakeCompletedExerciseRepository) Create(ctx context.Context, ce *CompletedExercise) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, ce)
	}
	panic("unexpected Create")
}

func (f *FakeCompletedExerciseRepository) ListByOwner(ctx context.Context, userID uint64, p query.Params) ([]CompletedExercise, int64, error) {
	if f.ListByOwnerFn != nil {
		return f.ListByOwnerFn(ctx, userID, p)
	}
	panic("unexpected ListByOwner")
}

func (f *FakeCompletedExerciseRepository) DeleteByOwner(ctx context.Context, id, userID uint64) (bool, error) {
	if f.DeleteByOwnerFn != nil {
		return f.DeleteByOwnerFn(ctx, id, userID)
	}
	panic("unexpected DeleteByOwner")
}
