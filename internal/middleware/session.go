package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/elite-admin/internal/auth"
)

const (
	ContextEmployeeID = "employeeID"
	ContextSession    = "session"
)

// LoginPath is where unauthenticated requests are sent.
const LoginPath = "/login"

var publicPrefixes = []string{
	"/api/auth/",
	"/static/",
}

var publicPaths = map[string]bool{
	LoginPath:      true,
	"/favicon.ico": true,
	"/health":      true,
}

type SessionChecker interface {
	Check(ctx context.Context, raw string) (*auth.Claims, error)
}

func isPublic(path string) bool {
	if publicPaths[path] {
		return true
	}
	for _, p := range publicPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// SessionToken reads the session cookie, falling back to a Bearer header.
func SessionToken(c *gin.Context, cookieName string) string {
	if v, err := c.Cookie(cookieName); err == nil && v != "" {
		return v
	}

	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// SessionGate lets public paths through and redirects every other request
// without a valid session to the login page.
func SessionGate(checker SessionChecker, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isPublic(c.Request.URL.Path) {
			c.Next()
			return
		}

		raw := SessionToken(c, cookieName)
		if raw == "" {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		claims, err := checker.Check(c.Request.Context(), raw)
		if err != nil {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		id, _ := claims.EmployeeID()
		c.Set(ContextEmployeeID, id)
		c.Set(ContextSession, claims)

		c.Next()
	}
}

// EmployeeID returns the signed-in employee, or 0 outside the gate.
func EmployeeID(c *gin.Context) uint {
	id, _ := c.Get(ContextEmployeeID)
	v, _ := id.(uint)
	return v
}

func Session(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(ContextSession)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
