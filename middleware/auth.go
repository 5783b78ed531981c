package middleware

import (
	"net/http"
	"strings"

	"doctorportal/auth"
	"doctorportal/utils"

	"github.com/gin-gonic/gin"
)

// claimEmailKey is the context key under which Authenticated stores the
// verified email claim.
const claimEmailKey = "claimEmail"

// Authenticated requires a valid Bearer token. A missing header is
// Unauthorized; a header that is present but does not verify is Forbidden.
// On success the verified email claim is exposed to the handler.
func Authenticated(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "unauthorized access"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		email, err := tokens.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, utils.ErrorResponse{Message: "forbidden access"})
			return
		}

		c.Set(claimEmailKey, email)
		c.Next()
	}
}

// ClaimEmail returns the email claim stored by Authenticated.
func ClaimEmail(c *gin.Context) (string, bool) {
	v, ok := c.Get(claimEmailKey)
	if !ok {
		return "", false
	}
	email, ok := v.(string)
	return email, ok && email != ""
}
