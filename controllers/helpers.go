package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jerekarp/hyte-backend/models"
)

// pathID parses the :id path parameter. On failure it writes the 400
// itself and reports false, so handlers just return.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return 0, false
	}
	return uint(id), true
}

func identity(c *gin.Context) (uint, bool) {
	userID := c.MustGet("userID").(uint)
	return userID, c.GetString("userLevel") == models.UserLevelAdmin
}
