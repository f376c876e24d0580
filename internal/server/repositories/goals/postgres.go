package goals

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/cptracker/internal/common"
	"github.com/dmitrijs2005/cptracker/internal/dbx"
	"github.com/dmitrijs2005/cptracker/internal/server/models"
)

const goalColumns = `id, user_id, title, target_count, target_date, current_count`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, goal *models.Goal) (*models.Goal, error) {

	query :=
		`INSERT INTO goals (id, user_id, title, target_count, target_date, current_count)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		goal.ID, goal.UserID, goal.Title, goal.TargetCount, goal.TargetDate, goal.CurrentCount).Scan(&goal.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return goal, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Goal, error) {

	query := `SELECT ` + goalColumns + ` FROM goals WHERE user_id = $1 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	goals := make([]*models.Goal, 0)
	for rows.Next() {
		goal := &models.Goal{}
		if err := rows.Scan(&goal.ID, &goal.UserID, &goal.Title,
			&goal.TargetCount, &goal.TargetDate, &goal.CurrentCount); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		goals = append(goals, goal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return goals, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id, userID string) (*models.Goal, error) {

	query := `SELECT ` + goalColumns + ` FROM goals WHERE id = $1 AND user_id = $2`

	goal := &models.Goal{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&goal.ID, &goal.UserID, &goal.Title,
		&goal.TargetCount, &goal.TargetDate, &goal.CurrentCount)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return goal, nil
}

func (r *PostgresRepository) Update(ctx context.Context, goal *models.Goal) (*models.Goal, error) {

	query :=
		`UPDATE goals
		 SET title = $3, target_count = $4, target_date = $5, updated_at = now()
		 WHERE id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query,
		goal.ID, goal.UserID, goal.Title, goal.TargetCount, goal.TargetDate)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if rows == 0 {
		return nil, common.ErrorNotFound
	}

	return goal, nil
}

// Increment bumps current_count atomically and returns the new value, so two
// concurrent increments can never lose an update.
func (r *PostgresRepository) Increment(ctx context.Context, id, userID string) (*models.Goal, error) {

	query :=
		`UPDATE goals
		 SET current_count = current_count + 1, updated_at = now()
		 WHERE id = $1 AND user_id = $2
		 RETURNING ` + goalColumns

	goal := &models.Goal{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&goal.ID, &goal.UserID, &goal.Title,
		&goal.TargetCount, &goal.TargetDate, &goal.CurrentCount)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return goal, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID string) error {

	query := `DELETE FROM goals WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if rows == 0 {
		return common.ErrorNotFound
	}

	return nil
}
