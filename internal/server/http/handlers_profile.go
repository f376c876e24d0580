package http

import (
	"net/http"

	"github.com/dmitrijs2005/cptracker/internal/common"
	"github.com/dmitrijs2005/cptracker/internal/server/services"
	"github.com/labstack/echo/v4"
)

type profileResponse struct {
	Name       string `json:"name"`
	Username   string `json:"username"`
	Codeforces string `json:"codeforces"`
	Codechef   string `json:"codechef"`
	Leetcode   string `json:"leetcode"`
	Email      string `json:"email"`
}

// profileUpdateRequest uses pointers so an absent field and a field set to the
// empty string are distinguishable.
type profileUpdateRequest struct {
	Name        *string `json:"name"`
	Username    *string `json:"username"`
	Password    *string `json:"password"`
	OldPassword *string `json:"oldPassword"`
	Codeforces  *string `json:"codeforces"`
	Codechef    *string `json:"codechef"`
	Leetcode    *string `json:"leetcode"`
}

// GetProfile returns the authenticated user's profile.
func (s *HTTPServer) GetProfile(c echo.Context) error {
	user, err := s.users.GetProfile(c.Request().Context(), identity(c).UserID)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, profileResponse{
		Name:       user.Name,
		Username:   user.Username,
		Codeforces: user.Codeforces,
		Codechef:   user.Codechef,
		Leetcode:   user.Leetcode,
		Email:      user.Email,
	})
}

// UpdateProfile applies a partial patch to the authenticated user's profile.
func (s *HTTPServer) UpdateProfile(c echo.Context) error {
	var req profileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return s.writeError(c, common.Wrap(common.ErrorValidation, "Invalid request body"))
	}

	patch := &services.ProfilePatch{
		Name:        req.Name,
		Username:    req.Username,
		Password:    req.Password,
		OldPassword: req.OldPassword,
		Codeforces:  req.Codeforces,
		Codechef:    req.Codechef,
		Leetcode:    req.Leetcode,
	}

	if _, err := s.users.UpdateProfile(c.Request().Context(), identity(c).UserID, patch); err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Profile updated successfully"})
}
