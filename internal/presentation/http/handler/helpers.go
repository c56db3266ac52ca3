package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// actor returns the authenticated user id as a string, or nil for anonymous callers
func actor(c *gin.Context) *string {
	userID := GetUserID(c)
	if userID == nil {
		return nil
	}
	s := userID.String()
	return &s
}

// queryInt reads an integer query parameter, returning def when absent or invalid
func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return v
}
