package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseID reads an unsigned integer path parameter. On failure it writes the
// 400 response itself and reports false.
func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + param})
		return 0, false
	}
	return uint(id), true
}

func errorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func messageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}
