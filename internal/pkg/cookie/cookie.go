package cookie

import (
	"github.com/gin-gonic/gin"
)

// AccessTokenCookieName is set by the back-office login and accepted alongside the
// Authorization header.
const AccessTokenCookieName = "access_token"

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}
