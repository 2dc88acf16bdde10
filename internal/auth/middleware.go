package auth

import (
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "wishcart/internal/errors"
)

// ClaimsContextKey is the echo context key holding the verified *Claims.
const ClaimsContextKey = "claims"

// Middleware rejects requests without a valid bearer token and stores the
// verified claims in the echo context.
func Middleware(jwtService *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  ClaimsContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return apperrors.ErrInvalidToken
		},
	})
}

// UserIDFromContext returns the authenticated user id set by Middleware.
func UserIDFromContext(c echo.Context) (uuid.UUID, error) {
	claims, ok := c.Get(ClaimsContextKey).(*Claims)
	if !ok || claims == nil {
		return uuid.Nil, apperrors.ErrInvalidToken
	}
	return claims.UserUUID()
}
