package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"dairy_admin/internal/config"
	"dairy_admin/internal/session"
)

// AuthHandler signs the configured admin in and out. Tokens are opaque
// and per-process; the remote API sees them as the bearer credential.
type AuthHandler struct {
	cfg      *config.Config
	session  *session.Session
	passHash []byte
}

func NewAuthHandler(cfg *config.Config, sess *session.Session) *AuthHandler {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		hash = nil
	}
	return &AuthHandler{cfg: cfg, session: sess, passHash: hash}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.Email != h.cfg.AdminEmail ||
		bcrypt.CompareHashAndPassword(h.passHash, []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	admin := session.Admin{Name: h.cfg.AdminName, Email: h.cfg.AdminEmail, Role: "admin"}
	token := uuid.NewString()
	h.session.Login(c.Request.Context(), admin, token)
	c.JSON(http.StatusOK, gin.H{"token": token, "admin": admin})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.session.Logout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	admin := h.session.Admin()
	if admin == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not signed in"})
		return
	}
	c.JSON(http.StatusOK, admin)
}

// RequireAuth rejects requests whose bearer token does not match the
// current session.
func (h *AuthHandler) RequireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" || token == header || token != h.session.Token() {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.Next()
}
