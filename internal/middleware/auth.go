package middleware

import (
	"net/http"
	"strings"

	"salesboard/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// RequireBearer rejects requests without an Authorization bearer token.
// The token value itself is opaque here; it is passed through, not
// interpreted.
func RequireBearer() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, errCode := extractBearer(c)
			if errCode != "" {
				return sendAuthError(c, errCode)
			}

			c.Set("bearer_token", token)
			return next(c)
		}
	}
}

// RequireSignedBearer additionally verifies the bearer token as an
// HS256-signed JWT. Used by the demo upstream API, which issues its own
// tokens from /getAuthorize.
func RequireSignedBearer(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, errCode := extractBearer(c)
			if errCode != "" {
				return sendAuthError(c, errCode)
			}

			parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return secret, nil
			})
			if err != nil || !parsed.Valid {
				if err != nil && strings.Contains(err.Error(), "expired") {
					return sendAuthError(c, errors.AuthExpiredToken)
				}
				return sendAuthError(c, errors.AuthInvalidTokenFormat)
			}

			c.Set("bearer_token", token)
			return next(c)
		}
	}
}

func extractBearer(c echo.Context) (string, errors.ErrorCode) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.AuthMissingToken
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.AuthInvalidTokenFormat
	}

	return parts[1], ""
}

func sendAuthError(c echo.Context, code errors.ErrorCode) error {
	traceID := GetTraceID(c)
	response := errors.NewErrorResponse(code, traceID)
	return c.JSON(http.StatusUnauthorized, response)
}
