package http

import (
	"strings"

	"github.com/dmitrijs2005/cptracker/internal/common"
	"github.com/dmitrijs2005/cptracker/internal/server/auth"
	"github.com/labstack/echo/v4"
)

const identityContextKey = "identity"

// requireToken extracts and verifies the bearer token. A missing token and a
// bad one are reported differently, but invalid and expired tokens are
// deliberately indistinguishable to the client.
func (s *HTTPServer) requireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return s.writeError(c, common.ErrMissingToken)
		}

		identity, err := auth.VerifyToken(token, s.jwtSecret)
		if err != nil {
			return s.writeError(c, err)
		}

		c.Set(identityContextKey, identity)
		return next(c)
	}
}

// identity returns the verified identity stashed by requireToken.
func identity(c echo.Context) *auth.Identity {
	id, _ := c.Get(identityContextKey).(*auth.Identity)
	return id
}
