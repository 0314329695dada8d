package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"

	"vinyl-record-house/internal/domain/cart"
	"vinyl-record-house/internal/pkg/config"
	"vinyl-record-house/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
)

const (
	ctxCartSessionKey = "cart_session"
	sessionKeyBytes   = 16
)

// CartSession makes sure every anonymous request carries a cart session key.
// It must run after OptionalAuth; authenticated callers shop with their user cart.
func CartSession(cfg config.CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetUserID(c); ok {
			c.Next()
			return
		}
		key := cookie.GetCartSession(c)
		if key == "" {
			var err error
			key, err = newSessionKey()
			if err != nil {
				slog.Error("failed to generate cart session key", "error", err.Error())
				c.Next()
				return
			}
			cookie.SetCartSession(c, cfg, key)
		}
		c.Set(ctxCartSessionKey, key)
		c.Next()
	}
}

// GetCartOwner resolves whose cart the request operates on.
func GetCartOwner(c *gin.Context) (cart.Owner, error) {
	if userID, ok := GetUserID(c); ok {
		return cart.UserOwner(userID)
	}
	return cart.SessionOwner(c.GetString(ctxCartSessionKey))
}

func newSessionKey() (string, error) {
	b := make([]byte, sessionKeyBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
