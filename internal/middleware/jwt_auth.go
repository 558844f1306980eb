package middleware

import (
	"net/http"
	"strings"

	"github.com/avoronin/postline/backend/internal/models"
	"github.com/avoronin/postline/backend/pkg/config"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

// ContextUserKey is the echo context key holding the authenticated claims.
const ContextUserKey = "user"

// JWTAuthMiddleware checks for a valid JWT and extracts user claims.
// Requests without a token are rejected with 401.
func JWTAuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing Authorization header")
			}

			claims, err := parseBearerToken(authHeader)
			if err != nil {
				return err
			}

			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// OptionalJWTAuthMiddleware extracts claims when a token is present but lets
// anonymous requests through. Public read endpoints use it to personalize
// responses (e.g. the `following` flag on profiles).
func OptionalJWTAuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			claims, err := parseBearerToken(authHeader)
			if err != nil {
				return err
			}

			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// parseBearerToken validates an "Authorization: Bearer <token>" header and
// returns the embedded claims.
func parseBearerToken(authHeader string) (*models.JwtCustomClaims, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization header format")
	}
	tokenString := parts[1]

	jwtSecret := config.JWTSecret()

	claims := &models.JwtCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})

	if err != nil {
		if err == jwt.ErrSignatureInvalid {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token signature")
		}
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	if !token.Valid {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return claims, nil
}
