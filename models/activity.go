package models

import "time"

// Activity is a single logged workout. Column names follow the original
// hyte schema so the JSON wire format keeps its snake_case ids.
type Activity struct {
	ActivityID   uint      `gorm:"column:activity_id;primaryKey" json:"activity_id"`
	UserID       uint      `gorm:"column:user_id;index;not null" json:"user_id"`
	ActivityType string    `gorm:"column:activity_type" json:"activity_type"`
	Intensity    int       `gorm:"column:intensity" json:"intensity"`
	Duration     string    `gorm:"column:duration" json:"duration"` // HH:MM:SS
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

// ActivityInput is the write payload for both POST and PUT. Every field
// is optional; UserID is bound only so handlers can reject it — ownership
// always comes from the token, never the body.
type ActivityInput struct {
	UserID       *uint   `json:"user_id"`
	ActivityType *string `json:"activity_type" binding:"omitempty,min=3,max=20"`
	Intensity    *int    `json:"intensity" binding:"omitempty,gte=0,lte=10"`
	Duration     *string `json:"duration" binding:"omitempty,hhmmss"`
}
