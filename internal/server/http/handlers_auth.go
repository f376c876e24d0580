package http

import (
	"net/http"

	"github.com/dmitrijs2005/cptracker/internal/common"
	"github.com/dmitrijs2005/cptracker/internal/server/models"
	"github.com/labstack/echo/v4"
)

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	EmailOrUsername string `json:"emailOrUsername"`
	Password        string `json:"password"`
}

// userResponse is the public view of a user returned alongside a token.
type userResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	ID       string `json:"id"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{Username: u.Username, Email: u.Email, ID: u.ID}
}

type signupResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    userResponse `json:"user"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

// Signup registers a new user and returns a token for auto-login.
func (s *HTTPServer) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return s.writeError(c, common.Wrap(common.ErrorValidation, "Invalid request body"))
	}

	s.logger.Info(c.Request().Context(), "Registration request", "username", req.Username)

	result, err := s.users.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, signupResponse{
		Message: "User registered successfully",
		Token:   result.Token,
		User:    toUserResponse(result.User),
	})
}

// Login authenticates by email or username and returns a fresh token.
func (s *HTTPServer) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return s.writeError(c, common.Wrap(common.ErrorValidation, "Invalid request body"))
	}

	result, err := s.users.Login(c.Request().Context(), req.EmailOrUsername, req.Password)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token: result.Token,
		User:  toUserResponse(result.User),
	})
}

// Logout exists for client symmetry. Tokens are stateless, so there is no
// server-side session to destroy.
func (s *HTTPServer) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "Logged out"})
}
