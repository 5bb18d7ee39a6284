// Package identity resolves the opaque caller identifier the surrounding
// deployment hands us. There is no session or login layer here: the id is
// taken as-is, and its absence is a legal state (anonymous submission).
package identity

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	HeaderName = "X-User-ID"
	CookieName = "gp_uid"
)

// UserID extracts the caller's identifier, or "" when anonymous. The
// header wins over the cookie so API clients can override a stale browser
// cookie.
func UserID(c *gin.Context) string {
	if v := strings.TrimSpace(c.GetHeader(HeaderName)); v != "" {
		return v
	}
	if v, err := c.Cookie(CookieName); err == nil {
		return strings.TrimSpace(v)
	}
	return ""
}
