package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"leadassign/internal/auth"
)

// AdminIDContextKey is where Authorize stores the verified admin id.
// The upload handler passes it downstream as the uploader identity.
const AdminIDContextKey = "adminID"

func Authorize(validator *auth.JwtValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHdr := c.Request().Header.Get("Authorization")
			hdrSplit := strings.Split(authHdr, " ")
			if len(hdrSplit) != 2 {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid Authorization header format")
			}

			claims, err := validator.Verify(hdrSplit[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			c.Set(AdminIDContextKey, claims.Subject)
			return next(c)
		}
	}
}
