package middleware

import (
	"errors"   // Error unwrapping
	"net/http" // HTTP status codes

	"contact_book/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// TokenHeader is the custom header carrying the opaque session token verbatim
const TokenHeader = "X-API-TOKEN"

// userKey is the gin context key holding the authenticated user
const userKey = "user"

// AuthMiddleware resolves the session token to a User and attaches it to
// the request context. A missing, empty or unknown token aborts with 401;
// tokens stay valid until overwritten by a new login or cleared by logout.
func AuthMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader) // Get token header
		// Check if the token header is present
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "Unauthorized"})
			return
		}
		var user domain.User // Fetch the user owning this token
		if err := db.Where("token = ?", token).First(&user).Error; err != nil {
			// Unknown token reads the same as a missing one
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "Unauthorized"})
				return
			}
			// A store failure is not an auth decision; hand it to the
			// error middleware to render as 500
			c.Abort()
			_ = c.Error(err)
			return
		}
		c.Set(userKey, &user) // Store the resolved user in context
		c.Next()              // Proceed to the next handler
	}
}

// CurrentUser returns the user attached by AuthMiddleware. Only valid on
// routes behind the middleware.
func CurrentUser(c *gin.Context) *domain.User {
	return c.MustGet(userKey).(*domain.User)
}
