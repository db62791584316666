package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jerekarp/hyte-backend/config"
	"github.com/jerekarp/hyte-backend/models"
)

func ListAllEntries() ([]models.DiaryEntry, *models.RequestError) {
	var entries []models.DiaryEntry
	if err := config.DB.Find(&entries).Error; err != nil {
		return nil, models.ServerError("Database error")
	}
	return entries, nil
}

func ListEntriesByUser(userID uint) ([]models.DiaryEntry, *models.RequestError) {
	entries := []models.DiaryEntry{}
	if err := config.DB.Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		return nil, models.ServerError("Database error")
	}
	return entries, nil
}

func FindEntryByID(id, userID uint) (*models.DiaryEntry, *models.RequestError) {
	var entry models.DiaryEntry
	err := config.DB.Where("entry_id = ? AND user_id = ?", id, userID).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NotFound("Entry not found")
	}
	if err != nil {
		return nil, models.ServerError(err.Error())
	}
	return &entry, nil
}

func AddEntry(input models.EntryInput, userID uint) (uint, *models.RequestError) {
	entry := models.DiaryEntry{
		UserID:    userID,
		EntryDate: input.EntryDate,
	}
	if input.Mood != nil {
		entry.Mood = *input.Mood
	}
	if input.Weight != nil {
		entry.Weight = *input.Weight
	}
	if input.SleepHours != nil {
		entry.SleepHours = *input.SleepHours
	}
	if input.Notes != nil {
		entry.Notes = *input.Notes
	}

	if err := config.DB.Create(&entry).Error; err != nil {
		return 0, models.ServerError(err.Error())
	}
	return entry.EntryID, nil
}

// UpdateEntryByID filters on (id, userID) like every other mutation here.
// Earlier revisions of this API updated entries by id alone; that hole is
// closed for good.
func UpdateEntryByID(id, userID uint, input models.EntryUpdate) *models.RequestError {
	fields := map[string]any{}
	if input.EntryDate != nil {
		fields["entry_date"] = *input.EntryDate
	}
	if input.Mood != nil {
		fields["mood"] = *input.Mood
	}
	if input.Weight != nil {
		fields["weight"] = *input.Weight
	}
	if input.SleepHours != nil {
		fields["sleep_hours"] = *input.SleepHours
	}
	if input.Notes != nil {
		fields["notes"] = *input.Notes
	}

	if len(fields) == 0 {
		_, reqErr := FindEntryByID(id, userID)
		return reqErr
	}

	result := config.DB.Model(&models.DiaryEntry{}).
		Where("entry_id = ? AND user_id = ?", id, userID).
		Updates(fields)
	if result.Error != nil {
		return models.ServerError("Database error")
	}
	if result.RowsAffected == 0 {
		return models.NotFound("Entry not found")
	}
	return nil
}

func DeleteEntryByID(id, userID uint) *models.RequestError {
	result := config.DB.
		Where("entry_id = ? AND user_id = ?", id, userID).
		Delete(&models.DiaryEntry{})
	if result.Error != nil {
		return models.ServerError("Database error")
	}
	if result.RowsAffected == 0 {
		return models.NotFound("Entry not found")
	}
	return nil
}
