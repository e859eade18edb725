// internal/interfaces/http/handlers/owner.go
package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

const sessionCookieName = "session_id"

// resolveOwnerID returns the state-owner key for the request. Signed-in
// users own their state under a stable user key; guests are tracked by a
// session cookie. Cart, wishlist and checkout state all hang off this key.
func resolveOwnerID(c *gin.Context, cfg *config.Config) string {
	if userID, ok := middleware.GetUserIDFromContext(c); ok {
		return fmt.Sprintf("user:%d", userID)
	}
	return "session:" + getOrCreateSessionID(c, cfg)
}

// sessionOwnerID returns the guest-session owner key regardless of
// authentication, used when merging a guest cart into a user account.
func sessionOwnerID(c *gin.Context, cfg *config.Config) string {
	return "session:" + getOrCreateSessionID(c, cfg)
}

// getOrCreateSessionID gets the session ID from cookie or creates a new one
func getOrCreateSessionID(c *gin.Context, cfg *config.Config) string {
	sessionID, err := c.Cookie(sessionCookieName)
	if err != nil || sessionID == "" {
		sessionID = uuid.New().String()
		c.SetCookie(sessionCookieName, sessionID, int(cfg.Checkout.SessionTTL.Seconds()), "/", "", false, true)
	}
	return sessionID
}
