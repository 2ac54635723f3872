package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KKK-90/POSTRKR-App/config"
	"github.com/KKK-90/POSTRKR-App/internal/api/middleware"
	"github.com/KKK-90/POSTRKR-App/internal/dto"
	"github.com/KKK-90/POSTRKR-App/internal/service"
	apperrors "github.com/KKK-90/POSTRKR-App/pkg/errors"
	"github.com/KKK-90/POSTRKR-App/pkg/response"
)

// AuthHandler login and logout endpoints.
type AuthHandler struct {
	authSvc service.AuthService
	cookie  *config.CookieConfig
}

// NewAuthHandler creates an AuthHandler. A nil cookie config uses
// insecure Lax cookies, which suits tests and plain-http development.
func NewAuthHandler(authSvc service.AuthService, cookie *config.CookieConfig) *AuthHandler {
	if cookie == nil {
		cookie = &config.CookieConfig{SameSite: "Lax"}
	}
	return &AuthHandler{authSvc: authSvc, cookie: cookie}
}

// Login checks the allow-list and sets the session cookie.
// POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	sess, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": err.Error()})
			return
		}
		response.InternalError(c, err)
		return
	}

	h.setSessionCookie(c, sess.Token, sess.MaxAge)
	response.OK(c, dto.LoginResponse{OK: true, Username: sess.Username})
}

// Logout revokes the current session and clears the cookie.
// POST /api/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authSvc.Logout(c.Request.Context(), middleware.SessionToken(c)); err != nil {
		_ = c.Error(err)
	}

	h.setSessionCookie(c, "", -1)
	response.Ack(c)
}

// Session reports the signed-in user.
// GET /api/session
func (h *AuthHandler) Session(c *gin.Context) {
	username := CurrentUser(c)
	if username == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Not signed in"})
		return
	}

	response.OK(c, dto.LoginResponse{OK: true, Username: username})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(sameSiteMode(h.cookie.SameSite))
	c.SetCookie(middleware.SessionCookie, value, maxAge, "/", h.cookie.Domain, h.cookie.Secure, true)
}

func sameSiteMode(s string) http.SameSite {
	switch s {
	case "Strict", "strict":
		return http.SameSiteStrictMode
	case "None", "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
