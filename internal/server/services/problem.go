package services

import (
	"context"
	"database/sql"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/cptracker/internal/common"
	"github.com/dmitrijs2005/cptracker/internal/server/models"
	"github.com/dmitrijs2005/cptracker/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

var linkRegexp = regexp.MustCompile(`^https?://`)

// ProblemInput carries the fields accepted when recording a problem.
type ProblemInput struct {
	Title      string
	Platform   string
	Difficulty string
	Status     string
	Link       string
	Tags       string
	Notes      string
}

// ProblemService manages the shared solved-problem list.
type ProblemService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewProblemService(db *sql.DB, m repomanager.RepositoryManager) *ProblemService {
	return &ProblemService{db: db, repomanager: m}
}

// List returns all recorded problems, oldest first.
func (s *ProblemService) List(ctx context.Context) ([]*models.Problem, error) {
	repo := s.repomanager.Problems(s.db)

	problems, err := repo.List(ctx)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return problems, nil
}

// Create validates and persists a new problem record.
func (s *ProblemService) Create(ctx context.Context, input *ProblemInput) (*models.Problem, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, common.Wrap(common.ErrorValidation, "Problem title is required.")
	}
	if strings.TrimSpace(input.Platform) == "" {
		return nil, common.Wrap(common.ErrorValidation, "Platform is required.")
	}
	if input.Link != "" && !linkRegexp.MatchString(input.Link) {
		return nil, common.Wrap(common.ErrorValidation, "If provided, link must be a valid URL.")
	}

	problem := &models.Problem{
		ID:         uuid.NewString(),
		Title:      input.Title,
		Platform:   input.Platform,
		Difficulty: input.Difficulty,
		Status:     input.Status,
		Link:       input.Link,
		Tags:       input.Tags,
		Notes:      input.Notes,
	}

	repo := s.repomanager.Problems(s.db)

	p, err := repo.Create(ctx, problem)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return p, nil
}
