package domain

import (
	"context"
	"time"

	"gorm.io/gorm"

	"fittrack/internal/query"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User rows are never hard-deleted; gorm's DeletedAt keeps them out of
// normal queries. Password never reaches a response body.
type User struct {
	ID        uint64         `gorm:"primaryKey" json:"id"`
	Name      *string        `gorm:"size:100" json:"name"`
	Surname   *string        `gorm:"size:100" json:"surname"`
	NickName  *string        `gorm:"size:100;uniqueIndex" json:"nickName"`
	Age       *int           `json:"age"`
	Email     string         `gorm:"size:191;uniqueIndex;not null" json:"email"`
	Role      string         `gorm:"size:16;not null;default:user" json:"role"`
	Password  string         `gorm:"size:100;not null" json:"-"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint64) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, p query.Params) ([]User, int64, error)
	Update(ctx context.Context, u *User) error
	SoftDelete(ctx context.Context, id uint64) (bool, error)
}
