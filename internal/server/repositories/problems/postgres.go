package problems

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/cptracker/internal/dbx"
	"github.com/dmitrijs2005/cptracker/internal/server/models"
)

const problemColumns = `id, title, platform, difficulty, status, link, tags, notes`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, problem *models.Problem) (*models.Problem, error) {

	query :=
		`INSERT INTO problems (id, title, platform, difficulty, status, link, tags, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		problem.ID, problem.Title, problem.Platform, problem.Difficulty,
		problem.Status, problem.Link, problem.Tags, problem.Notes).Scan(&problem.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return problem, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Problem, error) {

	query := `SELECT ` + problemColumns + ` FROM problems ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	problems := make([]*models.Problem, 0)
	for rows.Next() {
		problem := &models.Problem{}
		if err := rows.Scan(&problem.ID, &problem.Title, &problem.Platform,
			&problem.Difficulty, &problem.Status, &problem.Link,
			&problem.Tags, &problem.Notes); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		problems = append(problems, problem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return problems, nil
}
