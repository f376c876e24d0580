package http

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/cptracker/internal/common"
	"github.com/labstack/echo/v4"
)

type messageResponse struct {
	Message string `json:"message"`
}

// writeError maps a service error to an HTTP status and a JSON body carrying
// the client-facing message. Unclassified errors are logged and reported as a
// generic 500 so internals never leak.
func (s *HTTPServer) writeError(c echo.Context, err error) error {
	var status int
	message := err.Error()

	switch {
	case errors.Is(err, common.ErrorValidation):
		status = http.StatusBadRequest
	case errors.Is(err, common.ErrorUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, common.ErrMissingToken):
		status = http.StatusUnauthorized
		message = "No token provided"
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		status = http.StatusForbidden
		message = "Invalid token"
	case errors.Is(err, common.ErrorNotFound):
		status = http.StatusNotFound
	case errors.Is(err, common.ErrorConflict):
		status = http.StatusConflict
	default:
		s.logger.Error(c.Request().Context(), err.Error())
		status = http.StatusInternalServerError
		message = "Internal server error"
	}

	return c.JSON(status, messageResponse{Message: message})
}
