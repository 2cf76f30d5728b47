package handlers

import (
	"net/http"
	"strings"

	"poke_explorer/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID = "userId"
	ctxUser   = "user"
)

func (h *Handler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody(errNoToken, ""))
		return
	}

	// "Bearer" with nothing after it yields an empty token, which fails to parse.
	var token string
	if parts := strings.Fields(header); len(parts) > 1 {
		token = parts[1]
	}

	userID, err := h.services.ParseToken(token)
	if err != nil {
		h.log.Infow("auth_token_rejected", "err", err)
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody(errInvalidToken, ""))
		return
	}

	user, err := h.services.ResolveUser(c.Request.Context(), userID)
	if err != nil {
		h.log.Errorw("auth_resolve_user_failed", "err", err, "user_id", userID)
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody(errInvalidToken, ""))
		return
	}
	if user == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody(errUserNotFound, ""))
		return
	}

	// store in Gin context
	c.Set(ctxUserID, userID)
	c.Set(ctxUser, *user)
	c.Next()
}

// currentUser returns the identity attached by authMiddleware.
func currentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(ctxUser)
	if !ok {
		return models.User{}, false
	}
	u, ok := v.(models.User)
	return u, ok
}
