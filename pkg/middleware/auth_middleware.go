package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/adapter/api/dto"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/session"
)

// AuthMiddleware guards routes behind a valid admin session. The bearer
// token is checked against the session store. The expiry is checked but not
// slid here; only the verify endpoint extends a session.
func AuthMiddleware(sessions session.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "missing token", ""))
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "invalid token", ""))
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		sess, err := sessions.FindActiveByToken(c, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "invalid session", ""))
			return
		}
		if sess.IsExpired(time.Now()) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "session expired", ""))
			return
		}

		c.Set("session_id", sess.ID)
		c.Next()
	}
}
