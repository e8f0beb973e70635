package httpserver

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/mock_ecom/internal/service"
)

type Verifier interface {
	Verify(token string) (service.Identity, error)
}

// bearerToken returns the second field of the Authorization header.
func bearerToken(c echo.Context) string {
	parts := strings.Fields(c.Request().Header.Get(echo.HeaderAuthorization))
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

func requireIdentity(c echo.Context, v Verifier) (service.Identity, error) {
	return v.Verify(bearerToken(c))
}
