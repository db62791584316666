package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jerekarp/hyte-backend/models"
	"github.com/jerekarp/hyte-backend/services"
)

// GetActivities lists the caller's own activities.
func GetActivities(c *gin.Context) {
	userID, _ := identity(c)

	activities, reqErr := services.ListActivitiesByUser(userID)
	if reqErr != nil {
		c.JSON(reqErr.Status, gin.H{"error": reqErr.Message})
		return
	}
	c.JSON(http.StatusOK, activities)
}

func GetActivityByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, _ := identity(c)

	activity, reqErr := services.FindActivityByID(id, userID)
	if reqErr != nil {
		c.JSON(reqErr.Status, gin.H{"error": reqErr.Message})
		return
	}
	c.JSON(http.StatusOK, activity)
}

func PostActivity(c *gin.Context) {
	var input models.ActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID, _ := identity(c)

	id, reqErr := services.AddActivity(input, userID)
	if reqErr != nil {
		c.JSON(reqErr.Status, gin.H{"error": reqErr.Message})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "New activity added.", "activity_id": id})
}

// PutActivity updates the allow-listed fields of one activity. An admin
// token may update any user's row; everyone else only their own.
func PutActivity(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input models.ActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.UserID != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is not allowed"})
		return
	}

	userID, admin := identity(c)
	if reqErr := services.UpdateActivityByID(id, userID, admin, input); reqErr != nil {
		c.JSON(reqErr.Status, gin.H{"error": reqErr.Message})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Activity data updated", "activity_id": id})
}

func DeleteActivity(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	userID, admin := identity(c)
	if reqErr := services.DeleteActivityByID(id, userID, admin); reqErr != nil {
		c.JSON(reqErr.Status, gin.H{"error": reqErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Activity deleted", "activity_id": id})
}
