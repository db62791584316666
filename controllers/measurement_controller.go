package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jerekarp/hyte-backend/models"
	"github.com/jerekarp/hyte-backend/services"
)

func GetMeasurements(c *gin.Context) {
	userID, _ := identity(c)

	measurements, reqErr := services.ListMeasurementsByUser(userID)
	if reqErr != nil {
		c.JSON(reqErr.Status, gin.H{"error": reqErr.Message})
		return
	}
	c.JSON(http.StatusOK, measurements)
}

func GetMeasurementByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, _ := identity(c)

	measurement, reqErr := services.FindMeasurementByID(id, userID)
	if reqErr != nil {
		c.JSON(reqErr.Status, gin.H{"error": reqErr.Message})
		return
	}
	c.JSON(http.StatusOK, measurement)
}

func PostMeasurement(c *gin.Context) {
	var input models.MeasurementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID, _ := identity(c)

	id, reqErr := services.AddMeasurement(input, userID)
	if reqErr != nil {
		c.JSON(reqErr.Status, gin.H{"error": reqErr.Message})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "New measurement added.", "measurement_id": id})
}

func PutMeasurement(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input models.MeasurementUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.UserID != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is not allowed"})
		return
	}

	userID, _ := identity(c)
	if reqErr := services.UpdateMeasurementByID(id, userID, input); reqErr != nil {
		c.JSON(reqErr.Status, gin.H{"error": reqErr.Message})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Measurement data updated", "measurement_id": id})
}

func DeleteMeasurement(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	userID, _ := identity(c)
	if reqErr := services.DeleteMeasurementByID(id, userID); reqErr != nil {
		c.JSON(reqErr.Status, gin.H{"error": reqErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Measurement deleted", "measurement_id": id})
}
