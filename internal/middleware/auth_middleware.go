package middleware

import (
	"context"
	"errors"
	"strings"

	autherrors "go-attendance/internal/auth/errors"
	"go-attendance/internal/auth/token"
	"go-attendance/internal/shared/apperror"
	"go-attendance/internal/shared/contextutil"
	"go-attendance/internal/shared/response"
	"go-attendance/internal/user"
	usererrors "go-attendance/internal/user/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "role"
	ContextUser   = "user"
)

type TokenParser interface {
	Parse(raw string) (*token.Claims, error)
}

type UserFinder interface {
	FindByID(ctx context.Context, id string) (*user.User, error)
}

func bearerToken(c *gin.Context) string {
	if tok, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); found {
		return strings.TrimSpace(tok)
	}
	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie
	}
	return ""
}

func reject(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	contextutil.GetLogger(c.Request.Context(), zap.L()).Warn("request rejected",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
	c.Abort()
}

// AuthMiddleware decodes the token, loads the live account and requires the
// token's role snapshot to equal the account's current role.
func AuthMiddleware(tokens TokenParser, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			reject(c, autherrors.ErrTokenMissing)
			return
		}

		claims, err := tokens.Parse(raw)
		if err != nil {
			reject(c, err)
			return
		}

		ctx := c.Request.Context()
		account, err := users.FindByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, usererrors.ErrUserNotFound) {
				reject(c, autherrors.ErrUserNotFound)
				return
			}
			reject(c, err)
			return
		}

		if claims.Role != account.Role {
			reject(c, autherrors.ErrRoleMismatch)
			return
		}

		uid := account.ID.String()
		c.Set(ContextUserID, uid)
		c.Set(ContextRole, account.Role)
		c.Set(ContextUser, account)

		ctx = contextutil.WithUserID(ctx, uid)
		ctx = contextutil.WithRole(ctx, account.Role)
		ctx = contextutil.WithLogger(ctx, contextutil.GetLogger(ctx, zap.L()).With(zap.String("user_id", uid)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// CurrentUser returns the account loaded by AuthMiddleware.
func CurrentUser(c *gin.Context) (*user.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil, false
	}
	u, ok := v.(*user.User)
	return u, ok
}
