package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Shankerteja/Sheshield-backend/apperrors"
)

// respondError maps a service error to its HTTP status. Uncategorized
// errors become a generic 500; their details stay in the server log.
func respondError(c *gin.Context, err error) {
	status := apperrors.Status(err)
	if status == http.StatusInternalServerError {
		c.JSON(status, gin.H{"message": "Server error"})
		return
	}
	c.JSON(status, gin.H{"message": err.Error()})
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
