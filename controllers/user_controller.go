package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jerekarp/hyte-backend/services"
)

// GetProfile returns the token holder's own user row.
func GetProfile(c *gin.Context) {
	userID, _ := identity(c)

	user, reqErr := services.FindUserByID(userID)
	if reqErr != nil {
		c.JSON(reqErr.Status, gin.H{"error": reqErr.Message})
		return
	}
	c.JSON(http.StatusOK, user)
}
