package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/MinataFumi123/college-tour-website/config"
	"github.com/MinataFumi123/college-tour-website/middleware"
	"github.com/MinataFumi123/college-tour-website/models"
	"github.com/MinataFumi123/college-tour-website/store"
	"github.com/MinataFumi123/college-tour-website/utils"
)

const bcryptCost = 10

type AuthHandler struct {
	cfg   *config.Config
	users store.UserStore
	log   *logrus.Logger
}

func NewAuthHandler(cfg *config.Config, users store.UserStore, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{cfg: cfg, users: users, log: log}
}

// Test is a liveness probe for the auth router.
func (h *AuthHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Auth route is working"})
}

// Register creates a user and returns a signed token for the new identity.
// Both lookups run before any write; a duplicate leaves no new record.
func (h *AuthHandler) Register(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
		return
	}
	if input.Username == "" || input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username, email and password are required"})
		return
	}

	ctx := c.Request.Context()

	if _, err := h.users.FindByEmail(ctx, input.Email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"message": "User with this email already exists"})
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		serverError(c, h.cfg, h.log, err, "Server error")
		return
	}

	if _, err := h.users.FindByUsername(ctx, input.Username); err == nil {
		c.JSON(http.StatusConflict, gin.H{"message": "Username is already taken"})
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		serverError(c, h.cfg, h.log, err, "Server error")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		serverError(c, h.cfg, h.log, err, "Server error")
		return
	}

	user := &models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: string(hashed),
	}
	if err := h.users.Create(ctx, user); err != nil {
		// The unique index closes the race the two lookups leave open.
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"message": "User with this email already exists"})
			return
		}
		serverError(c, h.cfg, h.log, err, "Server error")
		return
	}

	token, err := utils.GenerateToken(user.ID.Hex(), h.cfg.JWTSecret, h.cfg.TokenValidity)
	if err != nil {
		serverError(c, h.cfg, h.log, err, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Login resolves the identity by email, then by username. Unknown identity
// and wrong password answer with the same message so neither case leaks.
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
		return
	}

	ctx := c.Request.Context()

	var user *models.User
	if input.Email != "" {
		found, err := h.users.FindByEmail(ctx, input.Email)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			serverError(c, h.cfg, h.log, err, "Server error")
			return
		}
		user = found
	}
	if user == nil && input.Username != "" {
		found, err := h.users.FindByUsername(ctx, input.Username)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			serverError(c, h.cfg, h.log, err, "Server error")
			return
		}
		user = found
	}

	if user == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(user.ID.Hex(), h.cfg.JWTSecret, h.cfg.TokenValidity)
	if err != nil {
		serverError(c, h.cfg, h.log, err, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user.Public(),
	})
}

// ListUsers returns the public fields of every user. Admin-gated.
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		serverError(c, h.cfg, h.log, err, "Could not fetch users")
		return
	}

	out := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	c.JSON(http.StatusOK, out)
}

// CheckAuth reports whether the presented token is valid, and for whom.
func (h *AuthHandler) CheckAuth(c *gin.Context) {
	token := middleware.BearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false, "message": "No token provided"})
		return
	}

	claims, err := utils.VerifyToken(token, h.cfg.JWTSecret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false, "message": "Invalid or expired token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user":          claims.User,
		"expires":       claims.ExpiresAt.Time,
	})
}
