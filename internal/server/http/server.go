// Package http exposes the REST surface of the tracker: authentication,
// profile, goal, and problem endpoints over JSON.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/cptracker/internal/logging"
	"github.com/dmitrijs2005/cptracker/internal/server/services"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type HTTPServer struct {
	address   string
	logger    logging.Logger
	users     *services.UserService
	goals     *services.GoalService
	problems  *services.ProblemService
	jwtSecret []byte
}

func NewHTTPServer(a string, l logging.Logger, us *services.UserService, gs *services.GoalService, ps *services.ProblemService, secretKey string) *HTTPServer {
	return &HTTPServer{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		goals:     gs,
		problems:  ps,
		jwtSecret: []byte(secretKey),
	}
}

// registerRoutes wires all endpoints. Auth endpoints are public; profile and
// goal endpoints require a verified bearer token.
func (s *HTTPServer) registerRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/ping", s.Ping)

	api.POST("/auth/signup", s.Signup)
	api.POST("/auth/login", s.Login)
	api.POST("/auth/logout", s.Logout)

	api.GET("/problems", s.ListProblems)
	api.POST("/problems", s.CreateProblem)

	protected := api.Group("", s.requireToken)
	protected.GET("/profile", s.GetProfile)
	protected.PUT("/profile", s.UpdateProfile)
	protected.GET("/goals", s.ListGoals)
	protected.POST("/goals", s.CreateGoal)
	protected.PUT("/goals/:id", s.UpdateGoal)
	protected.PUT("/goals/:id/increment", s.IncrementGoal)
	protected.DELETE("/goals/:id", s.DeleteGoal)
}

func (s *HTTPServer) newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	s.registerRoutes(e)
	return e
}

// Run starts the HTTP server and shuts it down gracefully when ctx is
// cancelled.
func (s *HTTPServer) Run(ctx context.Context) error {

	e := s.newEcho()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(shutdownCtx, err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := e.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Ping reports liveness.
func (s *HTTPServer) Ping(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "OK"})
}
