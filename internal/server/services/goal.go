package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/dmitrijs2005/cptracker/internal/common"
	"github.com/dmitrijs2005/cptracker/internal/server/models"
	"github.com/dmitrijs2005/cptracker/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// GoalPatch is a partial goal update; nil fields are left untouched.
type GoalPatch struct {
	Title       *string
	TargetCount *int
	TargetDate  *string
}

// GoalService manages per-user goals. Every operation is scoped to the
// authenticated user's id, taken from the verified token.
type GoalService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewGoalService(db *sql.DB, m repomanager.RepositoryManager) *GoalService {
	return &GoalService{db: db, repomanager: m}
}

// List returns the user's goals, oldest first.
func (s *GoalService) List(ctx context.Context, userID string) ([]*models.Goal, error) {
	repo := s.repomanager.Goals(s.db)

	goals, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return goals, nil
}

// Create validates and persists a new goal with a zero progress counter.
func (s *GoalService) Create(ctx context.Context, userID, title string, targetCount int, targetDate string) (*models.Goal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, common.Wrap(common.ErrorValidation, "Goal title is required.")
	}
	if targetCount < 1 {
		return nil, common.Wrap(common.ErrorValidation, "Target count must be a positive number.")
	}
	if strings.TrimSpace(targetDate) == "" {
		return nil, common.Wrap(common.ErrorValidation, "Target date is required.")
	}

	goal := &models.Goal{
		ID:           uuid.NewString(),
		UserID:       userID,
		Title:        title,
		TargetCount:  targetCount,
		TargetDate:   targetDate,
		CurrentCount: 0,
	}

	repo := s.repomanager.Goals(s.db)

	g, err := repo.Create(ctx, goal)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return g, nil
}

// Update applies a partial patch to one of the user's goals.
func (s *GoalService) Update(ctx context.Context, userID, goalID string, patch *GoalPatch) (*models.Goal, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, common.Wrap(common.ErrorValidation, "Goal title is required.")
	}
	if patch.TargetCount != nil && *patch.TargetCount < 1 {
		return nil, common.Wrap(common.ErrorValidation, "Target count must be a positive number.")
	}
	if patch.TargetDate != nil && strings.TrimSpace(*patch.TargetDate) == "" {
		return nil, common.Wrap(common.ErrorValidation, "Target date is required.")
	}

	repo := s.repomanager.Goals(s.db)

	goal, err := repo.GetByID(ctx, goalID, userID)
	if err != nil {
		return nil, s.mapGoalError(err)
	}

	if patch.Title != nil {
		goal.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.TargetCount != nil {
		goal.TargetCount = *patch.TargetCount
	}
	if patch.TargetDate != nil {
		goal.TargetDate = *patch.TargetDate
	}

	updated, err := repo.Update(ctx, goal)
	if err != nil {
		return nil, s.mapGoalError(err)
	}
	return updated, nil
}

// Increment bumps the goal's progress counter by one.
func (s *GoalService) Increment(ctx context.Context, userID, goalID string) (*models.Goal, error) {
	repo := s.repomanager.Goals(s.db)

	goal, err := repo.Increment(ctx, goalID, userID)
	if err != nil {
		return nil, s.mapGoalError(err)
	}
	return goal, nil
}

// Delete removes one of the user's goals.
func (s *GoalService) Delete(ctx context.Context, userID, goalID string) error {
	repo := s.repomanager.Goals(s.db)

	if err := repo.Delete(ctx, goalID, userID); err != nil {
		return s.mapGoalError(err)
	}
	return nil
}

func (s *GoalService) mapGoalError(err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return common.Wrap(common.ErrorNotFound, "Goal not found")
	}
	return common.ErrorInternal
}
