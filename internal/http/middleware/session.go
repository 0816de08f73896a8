package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"podverse-web/internal/auth"
	"podverse-web/internal/domain"
)

const (
	sessionIDKey  = "session_id"
	sessionNewKey = "session_new"
	userInfoKey   = "user_info"

	// AuthCookie carries the signed user token set at login.
	AuthCookie = "Authorization"
)

// Session assigns every browser a session id cookie and resolves the
// logged-in user from the Authorization cookie or header. A bad token is
// logged and the visitor is treated as anonymous.
func Session(cookieName string, sessions auth.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(cookieName)
		if err != nil || strings.TrimSpace(sid) == "" {
			sid = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookieName, sid, 0, "/", "", false, true)
			c.Set(sessionNewKey, true)
		}
		c.Set(sessionIDKey, sid)

		if tok := userToken(c); tok != "" {
			user, err := sessions.UserInfo(tok)
			if err != nil {
				log.Printf("[SESSION] request_id=%s invalid user token: %v", GetRequestID(c), err)
			} else if user != nil {
				c.Set(userInfoKey, user)
			}
		}
		c.Next()
	}
}

func userToken(c *gin.Context) string {
	if h := strings.TrimSpace(c.GetHeader("Authorization")); h != "" {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if v, err := c.Cookie(AuthCookie); err == nil {
		return strings.TrimSpace(strings.TrimPrefix(v, "Bearer "))
	}
	return ""
}

func GetSessionID(c *gin.Context) string {
	if c == nil {
		return ""
	}
	return c.GetString(sessionIDKey)
}

// IsNewSession reports whether the session cookie was minted by this request.
// Such a session is not kept until the browser sends the cookie back.
func IsNewSession(c *gin.Context) bool {
	return c != nil && c.GetBool(sessionNewKey)
}

// GetUserInfo returns nil for anonymous visitors.
func GetUserInfo(c *gin.Context) *domain.UserInfo {
	if c == nil {
		return nil
	}
	if v, ok := c.Get(userInfoKey); ok {
		if u, ok := v.(*domain.UserInfo); ok {
			return u
		}
	}
	return nil
}
