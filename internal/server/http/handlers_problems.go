package http

import (
	"net/http"

	"github.com/dmitrijs2005/cptracker/internal/common"
	"github.com/dmitrijs2005/cptracker/internal/server/models"
	"github.com/dmitrijs2005/cptracker/internal/server/services"
	"github.com/labstack/echo/v4"
)

type problemCreateRequest struct {
	Title      string `json:"title"`
	Platform   string `json:"platform"`
	Difficulty string `json:"difficulty"`
	Status     string `json:"status"`
	Link       string `json:"link"`
	Tags       string `json:"tags"`
	Notes      string `json:"notes"`
}

type problemResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Platform   string `json:"platform"`
	Difficulty string `json:"difficulty"`
	Status     string `json:"status"`
	Link       string `json:"link"`
	Tags       string `json:"tags"`
	Notes      string `json:"notes"`
}

func toProblemResponse(p *models.Problem) problemResponse {
	return problemResponse{
		ID:         p.ID,
		Title:      p.Title,
		Platform:   p.Platform,
		Difficulty: p.Difficulty,
		Status:     p.Status,
		Link:       p.Link,
		Tags:       p.Tags,
		Notes:      p.Notes,
	}
}

// ListProblems returns the shared problem list.
func (s *HTTPServer) ListProblems(c echo.Context) error {
	problems, err := s.problems.List(c.Request().Context())
	if err != nil {
		return s.writeError(c, err)
	}

	out := make([]problemResponse, 0, len(problems))
	for _, p := range problems {
		out = append(out, toProblemResponse(p))
	}
	return c.JSON(http.StatusOK, out)
}

// CreateProblem records a new problem.
func (s *HTTPServer) CreateProblem(c echo.Context) error {
	var req problemCreateRequest
	if err := c.Bind(&req); err != nil {
		return s.writeError(c, common.Wrap(common.ErrorValidation, "Invalid request body"))
	}

	problem, err := s.problems.Create(c.Request().Context(), &services.ProblemInput{
		Title:      req.Title,
		Platform:   req.Platform,
		Difficulty: req.Difficulty,
		Status:     req.Status,
		Link:       req.Link,
		Tags:       req.Tags,
		Notes:      req.Notes,
	})
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, toProblemResponse(problem))
}
