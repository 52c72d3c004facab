package models

import (
	"time"
)

// User represents a registered user.
// Token holds the single active session token: a new login overwrites it,
// which invalidates the previous session immediately.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Token        *string   `gorm:"uniqueIndex;size:64" json:"-"`
	Nickname     *string   `gorm:"size:100" json:"nickname,omitempty"`
	AvatarURL    *string   `gorm:"size:500" json:"avatar_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	Meals []Meal     `gorm:"foreignKey:UserID" json:"meals,omitempty"`
	Stats *UserStats `gorm:"foreignKey:UserID" json:"stats,omitempty"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// DisplayName returns the nickname, falling back to the username when unset.
func (u *User) DisplayName() string {
	if u.Nickname != nil && *u.Nickname != "" {
		return *u.Nickname
	}
	return u.Username
}
