package http

import (
	"net/http"

	"github.com/dmitrijs2005/cptracker/internal/common"
	"github.com/dmitrijs2005/cptracker/internal/server/models"
	"github.com/dmitrijs2005/cptracker/internal/server/services"
	"github.com/labstack/echo/v4"
)

type goalCreateRequest struct {
	Title       string `json:"title"`
	TargetCount int    `json:"target_count"`
	TargetDate  string `json:"target_date"`
}

type goalUpdateRequest struct {
	Title       *string `json:"title"`
	TargetCount *int    `json:"target_count"`
	TargetDate  *string `json:"target_date"`
}

type goalResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	TargetCount  int    `json:"target_count"`
	TargetDate   string `json:"target_date"`
	CurrentCount int    `json:"current_count"`
	User         string `json:"user"`
}

type goalDeleteResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

func toGoalResponse(g *models.Goal) goalResponse {
	return goalResponse{
		ID:           g.ID,
		Title:        g.Title,
		TargetCount:  g.TargetCount,
		TargetDate:   g.TargetDate,
		CurrentCount: g.CurrentCount,
		User:         g.UserID,
	}
}

func toGoalResponses(goals []*models.Goal) []goalResponse {
	out := make([]goalResponse, 0, len(goals))
	for _, g := range goals {
		out = append(out, toGoalResponse(g))
	}
	return out
}

// ListGoals returns the authenticated user's goals.
func (s *HTTPServer) ListGoals(c echo.Context) error {
	goals, err := s.goals.List(c.Request().Context(), identity(c).UserID)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toGoalResponses(goals))
}

// CreateGoal records a new goal for the authenticated user.
func (s *HTTPServer) CreateGoal(c echo.Context) error {
	var req goalCreateRequest
	if err := c.Bind(&req); err != nil {
		return s.writeError(c, common.Wrap(common.ErrorValidation, "Invalid request body"))
	}

	goal, err := s.goals.Create(c.Request().Context(), identity(c).UserID, req.Title, req.TargetCount, req.TargetDate)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, toGoalResponse(goal))
}

// UpdateGoal applies a partial patch to one of the authenticated user's goals.
func (s *HTTPServer) UpdateGoal(c echo.Context) error {
	var req goalUpdateRequest
	if err := c.Bind(&req); err != nil {
		return s.writeError(c, common.Wrap(common.ErrorValidation, "Invalid request body"))
	}

	patch := &services.GoalPatch{
		Title:       req.Title,
		TargetCount: req.TargetCount,
		TargetDate:  req.TargetDate,
	}

	goal, err := s.goals.Update(c.Request().Context(), identity(c).UserID, c.Param("id"), patch)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toGoalResponse(goal))
}

// IncrementGoal bumps a goal's progress counter by one.
func (s *HTTPServer) IncrementGoal(c echo.Context) error {
	goal, err := s.goals.Increment(c.Request().Context(), identity(c).UserID, c.Param("id"))
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toGoalResponse(goal))
}

// DeleteGoal removes one of the authenticated user's goals.
func (s *HTTPServer) DeleteGoal(c echo.Context) error {
	id := c.Param("id")
	if err := s.goals.Delete(c.Request().Context(), identity(c).UserID, id); err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, goalDeleteResponse{Message: "Goal deleted", ID: id})
}
