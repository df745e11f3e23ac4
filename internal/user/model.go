package user

import (
	"time"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:64;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;size:120;not null" json:"email"`
	PasswordHash string    `gorm:"size:128;not null" json:"-"`
	Role         Role      `gorm:"type:varchar(10);not null;default:'member'" json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
