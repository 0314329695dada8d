//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	stdhttptest "net/http/httptest"

	"vinyl-record-house/internal/domain/order"
	"vinyl-record-house/internal/domain/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var shippingPolicy = order.ShippingPolicy{FlatFee: 5000, FreeThreshold: 50000}

// fakeAuth stands in for RequireAuth: any bearer header authenticates as userID.
func fakeAuth(userID uuid.UUID, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", userID)
		c.Set("user_role", role)
		c.Next()
	}
}

func jsonDecode(rec *stdhttptest.ResponseRecorder, v any) error {
	return json.Unmarshal(rec.Body.Bytes(), v)
}
