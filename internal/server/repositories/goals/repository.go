// Package goals persists per-user goals. Every query is scoped by the owning
// user id, so one user can never read or mutate another user's goals.
package goals

import (
	"context"

	"github.com/dmitrijs2005/cptracker/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, goal *models.Goal) (*models.Goal, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Goal, error)
	GetByID(ctx context.Context, id, userID string) (*models.Goal, error)
	Update(ctx context.Context, goal *models.Goal) (*models.Goal, error)
	Increment(ctx context.Context, id, userID string) (*models.Goal, error)
	Delete(ctx context.Context, id, userID string) error
}
