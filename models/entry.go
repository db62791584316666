package models

import "time"

// DiaryEntry is one day's diary row. EntryDate is kept as a plain
// YYYY-MM-DD string, matching the DATE column of the original schema.
type DiaryEntry struct {
	EntryID    uint      `gorm:"column:entry_id;primaryKey" json:"entry_id"`
	UserID     uint      `gorm:"column:user_id;index;not null" json:"user_id"`
	EntryDate  string    `gorm:"column:entry_date" json:"entry_date"`
	Mood       string    `gorm:"column:mood" json:"mood"`
	Weight     float64   `gorm:"column:weight" json:"weight"`
	SleepHours float64   `gorm:"column:sleep_hours" json:"sleep_hours"`
	Notes      string    `gorm:"column:notes" json:"notes"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

type EntryInput struct {
	UserID     *uint    `json:"user_id"`
	EntryDate  string   `json:"entry_date" binding:"required,datetime=2006-01-02"`
	Mood       *string  `json:"mood"`
	Weight     *float64 `json:"weight"`
	SleepHours *float64 `json:"sleep_hours"`
	Notes      *string  `json:"notes"`
}

type EntryUpdate struct {
	UserID     *uint    `json:"user_id"`
	EntryDate  *string  `json:"entry_date" binding:"omitempty,datetime=2006-01-02"`
	Mood       *string  `json:"mood"`
	Weight     *float64 `json:"weight"`
	SleepHours *float64 `json:"sleep_hours"`
	Notes      *string  `json:"notes"`
}
