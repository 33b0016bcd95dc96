package models

import (
	"time"
)

// Role ids used by the role gate in middleware.
const (
	RoleMember    = 1
	RoleModerator = 2
	RoleAdmin     = 3
)

type User struct {
	UserID    int        `gorm:"primaryKey;column:user_id" json:"user_id"`
	Username  string     `gorm:"column:username;unique" json:"username"`
	Email     string     `gorm:"column:email;unique" json:"email"`
	Password  string     `gorm:"column:password" json:"-"`
	RoleID    int        `gorm:"column:role_id" json:"role_id"`
	Bio       *string    `gorm:"column:bio" json:"bio,omitempty"`
	AvatarURL *string    `gorm:"column:avatar_url" json:"avatar_url,omitempty"`
	CreatedAt time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt *time.Time `gorm:"column:deleted_at" json:"deleted_at,omitempty"`

	// Relations
	Role Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

type Role struct {
	RoleID    int       `gorm:"primaryKey;column:role_id" json:"role_id"`
	Role      string    `gorm:"column:role" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides
func (User) TableName() string {
	return "users"
}

func (Role) TableName() string {
	return "roles"
}

func (u *User) IsModerator() bool {
	return u.RoleID == RoleModerator || u.RoleID == RoleAdmin
}

func (u *User) IsAdmin() bool {
	return u.RoleID == RoleAdmin
}
