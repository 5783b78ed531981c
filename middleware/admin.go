package middleware

import (
	"net/http"

	userRepo "doctorportal/database/repository/user"
	"doctorportal/utils"

	"github.com/gin-gonic/gin"
)

// AdminOnly requires that Authenticated has already run and that the
// requester's stored account has the admin role. A requester with no
// stored account fails closed with Forbidden.
func AdminOnly(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := ClaimEmail(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "unauthorized access"})
			return
		}

		requester, err := users.GetByEmail(email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, utils.ErrorResponse{Message: "internal server error"})
			return
		}
		if requester == nil || !requester.Role.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, utils.ErrorResponse{Message: "forbidden access"})
			return
		}

		c.Next()
	}
}
