package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "github.com/interviewai-team/interviewai-backend/errors"
	"github.com/interviewai-team/interviewai-backend/internal/adapter/dto/common"
	"github.com/interviewai-team/interviewai-backend/pkg/jwt"
)

// Context keys set by EchoAuth for downstream handlers.
const (
	UserIDContextKey    = "user_id"
	UserEmailContextKey = "user_email"
)

// EchoAuth returns an Echo middleware that authenticates requests with a
// bearer token. The token is read from the Authorization header, falling
// back to the access_token cookie for browser clients. On success the
// authenticated user ID and email are stored in the request context.
func EchoAuth(jwtManager *jwt.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return respondError(c, apperrors.ErrUnauthenticated())
			}

			claims, err := jwtManager.ValidateAccessToken(token)
			if err != nil {
				if jwt.IsExpired(err) {
					return respondError(c, apperrors.ErrTokenExpired())
				}
				return respondError(c, apperrors.ErrInvalidToken())
			}

			c.Set(UserIDContextKey, claims.UserID)
			c.Set(UserEmailContextKey, claims.Email)

			return next(c)
		}
	}
}

// extractToken pulls the bearer token from the Authorization header or the
// access_token cookie
func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}

	cookie, err := c.Cookie("access_token")
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	return ""
}

// GetUserID retrieves the authenticated user ID set by EchoAuth.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(UserIDContextKey).(uuid.UUID)
	return userID, ok
}

// GetUserEmail retrieves the authenticated user email set by EchoAuth.
func GetUserEmail(c echo.Context) (string, bool) {
	email, ok := c.Get(UserEmailContextKey).(string)
	return email, ok
}

func respondError(c echo.Context, appErr apperrors.AppError) error {
	return c.JSON(http.StatusUnauthorized, common.NewErrorResponse(appErr.Code.String(), appErr.Message))
}
