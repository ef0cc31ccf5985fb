package middleware

import (
	"bookmart/models"
	"bookmart/utils"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware rejects visitors without an identity. A JWT whose exp has
// passed logs the session out first.
func AuthMiddleware(now func() time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := State(c).Session

		if utils.TokenExpired(session.Token(), now()) {
			session.Logout()
		}

		if !session.IsAuthenticated() {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success:  false,
				Message:  "Please sign in to continue",
				Redirect: "/login",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminMiddleware must run after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !State(c).Session.IsAdmin() {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Success:  false,
				Message:  "Access denied. Admin role required",
				Redirect: "/",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
