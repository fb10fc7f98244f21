package service

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pquerna/otp/totp"
	"go.uber.org/zap"
)

const sessionTTL = 12 * time.Hour

// AuthService guards the scheduling API with TOTP login and opaque session
// cookies. Disabled entirely when no secret is configured.
type AuthService struct {
	logger     *zap.Logger
	totpSecret string

	mu       sync.Mutex
	sessions map[string]time.Time
}

func NewAuthService(logger *zap.Logger, totpSecret string) *AuthService {
	return &AuthService{
		logger:     logger,
		totpSecret: totpSecret,
		sessions:   make(map[string]time.Time),
	}
}

// Login validates a TOTP code and returns a new session id.
func (a *AuthService) Login(code string) (string, bool) {
	if !totp.Validate(code, a.totpSecret) {
		a.logger.Warn("TOTP validation failed")
		return "", false
	}

	id := uuid.NewString()
	a.mu.Lock()
	a.sessions[id] = time.Now().Add(sessionTTL)
	a.mu.Unlock()

	a.logger.Info("TOTP login successful")
	return id, true
}

func (a *AuthService) isValidSession(id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	expiry, ok := a.sessions[id]
	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		delete(a.sessions, id)
		return false
	}
	return true
}

// Middleware rejects API requests without a valid session cookie. Health and
// login stay open.
func (a *AuthService) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/health" || path == "/api/v1/auth/login" {
			c.Next()
			return
		}

		token, err := c.Cookie("auth_token")
		if err != nil || !a.isValidSession(token) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
