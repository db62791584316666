package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jerekarp/hyte-backend/config"
	"github.com/jerekarp/hyte-backend/models"
)

// ListAllActivities returns every row regardless of owner. Admin/debug use.
func ListAllActivities() ([]models.Activity, *models.RequestError) {
	var activities []models.Activity
	if err := config.DB.Find(&activities).Error; err != nil {
		return nil, models.ServerError("Database error")
	}
	return activities, nil
}

func ListActivitiesByUser(userID uint) ([]models.Activity, *models.RequestError) {
	activities := []models.Activity{}
	if err := config.DB.Where("user_id = ?", userID).Find(&activities).Error; err != nil {
		return nil, models.ServerError("Database error")
	}
	return activities, nil
}

// FindActivityByID matches on both id and owner, so another user's row is
// a miss even when the id exists.
func FindActivityByID(id, userID uint) (*models.Activity, *models.RequestError) {
	var activity models.Activity
	err := config.DB.Where("activity_id = ? AND user_id = ?", id, userID).First(&activity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NotFound("Activity not found")
	}
	if err != nil {
		return nil, models.ServerError(err.Error())
	}
	return &activity, nil
}

// AddActivity inserts a new row with user_id forced to the caller.
func AddActivity(input models.ActivityInput, userID uint) (uint, *models.RequestError) {
	activity := models.Activity{UserID: userID}
	if input.ActivityType != nil {
		activity.ActivityType = *input.ActivityType
	}
	if input.Intensity != nil {
		activity.Intensity = *input.Intensity
	}
	if input.Duration != nil {
		activity.Duration = *input.Duration
	}

	if err := config.DB.Create(&activity).Error; err != nil {
		return 0, models.ServerError(err.Error())
	}
	return activity.ActivityID, nil
}

// UpdateActivityByID writes only the allow-listed columns to the row
// matching (id, userID). An admin caller may update any user's row.
func UpdateActivityByID(id, userID uint, admin bool, input models.ActivityInput) *models.RequestError {
	fields := map[string]any{}
	if input.ActivityType != nil {
		fields["activity_type"] = *input.ActivityType
	}
	if input.Intensity != nil {
		fields["intensity"] = *input.Intensity
	}
	if input.Duration != nil {
		fields["duration"] = *input.Duration
	}

	tx := config.DB.Model(&models.Activity{}).Where("activity_id = ?", id)
	if !admin {
		tx = tx.Where("user_id = ?", userID)
	}

	if len(fields) == 0 {
		// Nothing to write; still report 404 for a row the caller cannot see.
		var count int64
		if err := tx.Count(&count).Error; err != nil {
			return models.ServerError("db error")
		}
		if count == 0 {
			return models.NotFound("Activity not found")
		}
		return nil
	}

	result := tx.Updates(fields)
	if result.Error != nil {
		return models.ServerError("db error")
	}
	if result.RowsAffected == 0 {
		return models.NotFound("Activity not found")
	}
	return nil
}

func DeleteActivityByID(id, userID uint, admin bool) *models.RequestError {
	tx := config.DB.Where("activity_id = ?", id)
	if !admin {
		tx = tx.Where("user_id = ?", userID)
	}

	result := tx.Delete(&models.Activity{})
	if result.Error != nil {
		return models.ServerError("db error")
	}
	if result.RowsAffected == 0 {
		return models.NotFound("Activity not found")
	}
	return nil
}
