package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/BruksfildServices01/elite-admin/internal/auth"
	"github.com/BruksfildServices01/elite-admin/internal/httperr"
	"github.com/BruksfildServices01/elite-admin/internal/middleware"
)

type CookieSettings struct {
	Name   string
	Secure bool
}

type AuthHandler struct {
	auth   *auth.Authenticator
	cookie CookieSettings
	pages  *AppWebHandler
}

func NewAuthHandler(a *auth.Authenticator, cookie CookieSettings, pages *AppWebHandler) *AuthHandler {
	return &AuthHandler{auth: a, cookie: cookie, pages: pages}
}

// --------- Requests ---------

type LoginRequest struct {
	User     string `json:"user" form:"user"`
	Password string `json:"password" form:"password"`
}

// --------- Handlers ---------

// Login accepts JSON from API clients and a form post from the login page.
func (h *AuthHandler) Login(c *gin.Context) {
	isForm := c.ContentType() == binding.MIMEPOSTForm

	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		writeError(c, httperr.InvalidBodyError{Err: err})
		return
	}

	token, claims, err := h.auth.Login(c.Request.Context(), req.User, req.Password)
	if err != nil {
		if !auth.IsRejection(err) {
			writeError(c, err)
			return
		}

		status, code := http.StatusUnauthorized, "invalid_credentials"
		if errors.Is(err, auth.ErrMissingCredentials) {
			status, code = http.StatusBadRequest, "missing_credentials"
		}

		if isForm && h.pages != nil {
			h.pages.renderLogin(c, status, err.Error())
			return
		}
		httperr.Write(c, status, code, err.Error())
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, token, int(h.auth.TTL().Seconds()), "/", "", h.cookie.Secure, true)

	if isForm {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":   claims.Subject,
			"name": claims.Name,
			"user": claims.User,
			"role": claims.Role,
		},
		"expiresAt": claims.ExpiresAt.Time,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if raw := middleware.SessionToken(c, h.cookie.Name); raw != "" {
		if err := h.auth.Logout(c.Request.Context(), raw); err != nil {
			writeError(c, err)
			return
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)

	if c.ContentType() == binding.MIMEPOSTForm {
		c.Redirect(http.StatusSeeOther, middleware.LoginPath)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Session is public so it checks the token itself.
func (h *AuthHandler) Session(c *gin.Context) {
	raw := middleware.SessionToken(c, h.cookie.Name)
	if raw == "" {
		httperr.Unauthorized(c, "no_session", "no session")
		return
	}

	claims, err := h.auth.Check(c.Request.Context(), raw)
	if err != nil {
		httperr.Unauthorized(c, "invalid_session", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        claims.Subject,
		"name":      claims.Name,
		"user":      claims.User,
		"role":      claims.Role,
		"expiresAt": claims.ExpiresAt.Time,
	})
}
