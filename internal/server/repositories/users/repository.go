// Package users persists user records. Uniqueness of username and email is
// enforced by database constraints, which makes concurrent registrations with
// colliding identities safe without extra locking.
package users

import (
	"context"

	"github.com/dmitrijs2005/cptracker/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
}
