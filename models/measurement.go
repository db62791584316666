package models

import "time"

type Measurement struct {
	MeasurementID   uint       `gorm:"column:measurement_id;primaryKey" json:"measurement_id"`
	UserID          uint       `gorm:"column:user_id;index;not null" json:"user_id"`
	MeasurementType string     `gorm:"column:measurement_type" json:"measurement_type"`
	Value           float64    `gorm:"column:value" json:"value"`
	Unit            string     `gorm:"column:unit" json:"unit"`
	Notes           string     `gorm:"column:notes" json:"notes"`
	MeasurementTime *time.Time `gorm:"column:measurement_time" json:"measurement_time"`
	CreatedAt       time.Time  `gorm:"column:created_at" json:"created_at"`
}

// MeasurementInput is the POST payload. measurement_type length bounds
// differ between create (3-30) and update (3-255), hence two structs.
type MeasurementInput struct {
	UserID          *uint      `json:"user_id"`
	MeasurementType string     `json:"measurement_type" binding:"required,min=3,max=30"`
	Value           *float64   `json:"value" binding:"required"`
	Unit            *string    `json:"unit" binding:"omitempty,max=10"`
	Notes           *string    `json:"notes" binding:"omitempty,min=3,max=300"`
	MeasurementTime *time.Time `json:"measurement_time"`
}

type MeasurementUpdate struct {
	UserID          *uint    `json:"user_id"`
	MeasurementType *string  `json:"measurement_type" binding:"omitempty,min=3,max=255"`
	Value           *float64 `json:"value" binding:"required"`
	Unit            *string  `json:"unit" binding:"omitempty,max=10"`
	Notes           *string  `json:"notes" binding:"omitempty,min=3,max=300"`
}
