package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jerekarp/hyte-backend/models"
	"github.com/jerekarp/hyte-backend/services"
)

func GetEntries(c *gin.Context) {
	userID, _ := identity(c)

	entries, reqErr := services.ListEntriesByUser(userID)
	if reqErr != nil {
		c.JSON(reqErr.Status, gin.H{"error": reqErr.Message})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func GetEntryByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, _ := identity(c)

	entry, reqErr := services.FindEntryByID(id, userID)
	if reqErr != nil {
		c.JSON(reqErr.Status, gin.H{"error": reqErr.Message})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func PostEntry(c *gin.Context) {
	var input models.EntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// A date alone is not an entry.
	if input.Mood == nil && input.Weight == nil && input.SleepHours == nil && input.Notes == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one of mood, weight, sleep_hours or notes is required"})
		return
	}

	userID, _ := identity(c)
	id, reqErr := services.AddEntry(input, userID)
	if reqErr != nil {
		c.JSON(reqErr.Status, gin.H{"error": reqErr.Message})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "New entry added.", "entry_id": id})
}

func PutEntry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input models.EntryUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.UserID != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is not allowed"})
		return
	}

	userID, _ := identity(c)
	if reqErr := services.UpdateEntryByID(id, userID, input); reqErr != nil {
		c.JSON(reqErr.Status, gin.H{"error": reqErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Entry updated", "entry_id": id})
}

func DeleteEntry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	userID, _ := identity(c)
	if reqErr := services.DeleteEntryByID(id, userID); reqErr != nil {
		c.JSON(reqErr.Status, gin.H{"error": reqErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Entry deleted", "entry_id": id})
}
