package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"impact-log/internal/models"
	"impact-log/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const currentAccountKey = "CurrentAccount"

type TokenVerifier interface {
	Verify(token string) (uuid.UUID, models.Role, error)
}

type AccountFinder interface {
	AccountByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
}

// RequireAuth resolves the bearer token to an Account. Missing, malformed or
// expired tokens and tokens for deleted accounts all get 401. Store failures
// are not the caller's fault and go through AbortWithError.
func RequireAuth(tokens TokenVerifier, accounts AccountFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			unauthenticated(c, "Not authenticated")
			return
		}

		id, _, err := tokens.Verify(raw)
		if err != nil {
			slog.Debug("token rejected", "source", "auth", "error", err.Error())
			unauthenticated(c, "Invalid authentication token")
			return
		}

		acc, err := accounts.AccountByID(c.Request.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			slog.Warn("token subject not found", "source", "auth", "user_id", id.String())
			unauthenticated(c, "Invalid authentication token")
			return
		}
		if err != nil {
			AbortWithError(c, "resolve token subject", err)
			return
		}

		c.Set(currentAccountKey, acc)
		c.Next()
	}
}

// RequireRole must run after RequireAuth. The role comes from the stored
// account, not from the token claim.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	roleSet := map[models.Role]struct{}{}
	for _, r := range roles {
		roleSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		acc, ok := CurrentAccount(c)
		if !ok {
			unauthenticated(c, "Not authenticated")
			return
		}

		if _, ok := roleSet[acc.Role]; !ok {
			slog.Warn("access denied", "source", "auth", "user_id", acc.ID.String(), "role", string(acc.Role), "path", c.FullPath())
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "Admin only"})
			return
		}
		c.Next()
	}
}

func CurrentAccount(c *gin.Context) (*models.Account, bool) {
	v, ok := c.Get(currentAccountKey)
	if !ok {
		return nil, false
	}
	acc, ok := v.(*models.Account)
	return acc, ok && acc != nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthenticated(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": detail})
}
