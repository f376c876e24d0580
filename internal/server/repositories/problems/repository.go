// Package problems persists the shared solved-problem list.
package problems

import (
	"context"

	"github.com/dmitrijs2005/cptracker/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, problem *models.Problem) (*models.Problem, error)
	List(ctx context.Context) ([]*models.Problem, error)
}
