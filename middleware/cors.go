package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const devOrigin = "http://localhost:5173"

// CORSMiddleware allows the dev server plus any comma separated origins in
// originURL. Credentials are allowed so the session cookie travels.
func CORSMiddleware(originURL string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     AllowedOrigins(originURL),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

func AllowedOrigins(originURL string) []string {
	origins := []string{devOrigin}
	for _, origin := range strings.Split(originURL, ",") {
		origin = strings.TrimRight(strings.TrimSpace(origin), "/")
		if origin != "" && origin != devOrigin {
			origins = append(origins, origin)
		}
	}
	return origins
}
