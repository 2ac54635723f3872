package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/KKK-90/POSTRKR-App/internal/api/middleware"
)

// CurrentUser returns the signed-in username, "" for anonymous requests.
func CurrentUser(c *gin.Context) string {
	return c.GetString(middleware.UsernameKey)
}
