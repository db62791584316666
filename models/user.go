package models

import "time"

const (
	UserLevelRegular = "regular"
	UserLevelAdmin   = "admin"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"user_id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	UserLevel string    `gorm:"column:user_level;default:regular" json:"user_level"`
	CreatedAt time.Time `json:"created_at"`
}
