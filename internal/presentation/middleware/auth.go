package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"pixvault/internal/domain/dto"
	authRepository "pixvault/internal/domain/repository/auth"
	"pixvault/internal/presentation"
)

// BearerAuth checks the Authorization header against the verifier before
// any gallery logic runs. The verified identity is stored on the context.
func BearerAuth(verifier authRepository.Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(presentation.AuthKey)
			if header == "" {
				return c.JSON(http.StatusUnauthorized,
					dto.ErrorResponse{Error: "missing Authorization header"})
			}
			if !strings.HasPrefix(header, presentation.BearerPrefix) {
				return c.JSON(http.StatusUnauthorized,
					dto.ErrorResponse{Error: "missing Bearer scheme"})
			}

			token := strings.TrimPrefix(header, presentation.BearerPrefix)
			identity, err := verifier.Verify(c.Request().Context(), token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized,
					dto.ErrorResponse{Error: "invalid or expired token"})
			}

			c.Set(presentation.IdentityKey, identity)

			return next(c)
		}
	}
}
