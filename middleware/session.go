package middleware

import (
	"bookmart/models"
	"bookmart/store"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const stateKey = "session_state"

// SessionMiddleware resolves the browser session from its cookie, issuing
// a new id when the cookie is missing or malformed, and stores the
// session State on the gin context.
func SessionMiddleware(registry *store.Registry, cookieName string, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cookieName)
		if err == nil {
			_, err = uuid.Parse(sessionID)
		}
		if err != nil {
			sessionID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookieName, sessionID, 0, "/", "", secure, true)
		}

		state, err := registry.Get(c.Request.Context(), sessionID)
		if err != nil {
			log.Printf("Failed to restore session %s: %v", sessionID, err)
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
				Success: false,
				Message: "Session storage unavailable",
				Error:   err.Error(),
			})
			c.Abort()
			return
		}

		c.Set(stateKey, state)
		c.Next()
	}
}

// State returns the session State set by SessionMiddleware.
func State(c *gin.Context) *store.State {
	return c.MustGet(stateKey).(*store.State)
}
