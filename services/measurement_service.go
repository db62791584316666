package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jerekarp/hyte-backend/config"
	"github.com/jerekarp/hyte-backend/models"
)

func ListAllMeasurements() ([]models.Measurement, *models.RequestError) {
	var measurements []models.Measurement
	if err := config.DB.Find(&measurements).Error; err != nil {
		return nil, models.ServerError("Database error")
	}
	return measurements, nil
}

func ListMeasurementsByUser(userID uint) ([]models.Measurement, *models.RequestError) {
	measurements := []models.Measurement{}
	if err := config.DB.Where("user_id = ?", userID).Find(&measurements).Error; err != nil {
		return nil, models.ServerError("Database error")
	}
	return measurements, nil
}

func FindMeasurementByID(id, userID uint) (*models.Measurement, *models.RequestError) {
	var measurement models.Measurement
	err := config.DB.Where("measurement_id = ? AND user_id = ?", id, userID).First(&measurement).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NotFound("Measurement not found")
	}
	if err != nil {
		return nil, models.ServerError(err.Error())
	}
	return &measurement, nil
}

func AddMeasurement(input models.MeasurementInput, userID uint) (uint, *models.RequestError) {
	measurement := models.Measurement{
		UserID:          userID,
		MeasurementType: input.MeasurementType,
		Value:           *input.Value,
		MeasurementTime: input.MeasurementTime,
	}
	if input.Unit != nil {
		measurement.Unit = *input.Unit
	}
	if input.Notes != nil {
		measurement.Notes = *input.Notes
	}
	if measurement.MeasurementTime == nil {
		now := time.Now()
		measurement.MeasurementTime = &now
	}

	if err := config.DB.Create(&measurement).Error; err != nil {
		return 0, models.ServerError(err.Error())
	}
	return measurement.MeasurementID, nil
}

// UpdateMeasurementByID writes the allow-listed columns (type, value,
// unit, notes) to the row matching (id, userID). measurement_time is
// deliberately not updatable.
func UpdateMeasurementByID(id, userID uint, input models.MeasurementUpdate) *models.RequestError {
	fields := map[string]any{}
	if input.MeasurementType != nil {
		fields["measurement_type"] = *input.MeasurementType
	}
	if input.Value != nil {
		fields["value"] = *input.Value
	}
	if input.Unit != nil {
		fields["unit"] = *input.Unit
	}
	if input.Notes != nil {
		fields["notes"] = *input.Notes
	}

	result := config.DB.Model(&models.Measurement{}).
		Where("measurement_id = ? AND user_id = ?", id, userID).
		Updates(fields)
	if result.Error != nil {
		return models.ServerError("db error")
	}
	if result.RowsAffected == 0 {
		return models.NotFound("Measurement not found")
	}
	return nil
}

func DeleteMeasurementByID(id, userID uint) *models.RequestError {
	result := config.DB.
		Where("measurement_id = ? AND user_id = ?", id, userID).
		Delete(&models.Measurement{})
	if result.Error != nil {
		return models.ServerError("db error")
	}
	if result.RowsAffected == 0 {
		return models.NotFound("Measurement not found")
	}
	return nil
}
