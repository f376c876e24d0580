package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/cptracker/internal/dbx"
	"github.com/dmitrijs2005/cptracker/internal/server/config"
	"github.com/dmitrijs2005/cptracker/internal/server/models"
	goalsrepo "github.com/dmitrijs2005/cptracker/internal/server/repositories/goals"
	problemsrepo "github.com/dmitrijs2005/cptracker/internal/server/repositories/problems"
	usersrepo "github.com/dmitrijs2005/cptracker/internal/server/repositories/users"
)

// --- helpers ---

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func newUserService(t *testing.T, db *sql.DB, rm *fakeRepoManager) *UserService {
	t.Helper()
	cfg := &config.Config{
		SecretKey:             "k",
		TokenValidityDuration: time.Hour,
	}
	return NewUserService(db, rm, cfg)
}

// --- fakes ---

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	byIDOut *models.User
	byIDErr error

	byUsernameOut *models.User
	byUsernameErr error

	byEmailOut *models.User
	byEmailErr error

	updateOut *models.User
	updateErr error

	lastCreated *models.User
	lastUpdated *models.User
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.lastCreated = u
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return u, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.byUsernameErr != nil {
		return nil, f.byUsernameErr
	}
	return f.byUsernameOut, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmailOut, nil
}

func (f *fakeUsersRepo) Update(ctx context.Context, u *models.User) (*models.User, error) {
	f.lastUpdated = u
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateOut != nil {
		return f.updateOut, nil
	}
	return u, nil
}

type fakeGoalsRepo struct {
	createOut *models.Goal
	createErr error

	listOut []*models.Goal
	listErr error

	getOut *models.Goal
	getErr error

	updateOut *models.Goal
	updateErr error

	incrementOut *models.Goal
	incrementErr error

	deleteErr error

	lastCreated *models.Goal
	lastUpdated *models.Goal
}

func (f *fakeGoalsRepo) Create(ctx context.Context, g *models.Goal) (*models.Goal, error) {
	f.lastCreated = g
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return g, nil
}

func (f *fakeGoalsRepo) ListByUser(ctx context.Context, userID string) ([]*models.Goal, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeGoalsRepo) GetByID(ctx context.Context, id, userID string) (*models.Goal, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeGoalsRepo) Update(ctx context.Context, g *models.Goal) (*models.Goal, error) {
	f.lastUpdated = g
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateOut != nil {
		return f.updateOut, nil
	}
	return g, nil
}

func (f *fakeGoalsRepo) Increment(ctx context.Context, id, userID string) (*models.Goal, error) {
	if f.incrementErr != nil {
		return nil, f.incrementErr
	}
	return f.incrementOut, nil
}

func (f *fakeGoalsRepo) Delete(ctx context.Context, id, userID string) error {
	return f.deleteErr
}

type fakeProblemsRepo struct {
	createOut *models.Problem
	createErr error

	listOut []*models.Problem
	listErr error

	lastCreated *models.Problem
}

func (f *fakeProblemsRepo) Create(ctx context.Context, p *models.Problem) (*models.Problem, error) {
	f.lastCreated = p
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return p, nil
}

func (f *fakeProblemsRepo) List(ctx context.Context) ([]*models.Problem, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	g *fakeGoalsRepo
	p *fakeProblemsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.u }
func (m *fakeRepoManager) Goals(db dbx.DBTX) goalsrepo.Repository       { return m.g }
func (m *fakeRepoManager) Problems(db dbx.DBTX) problemsrepo.Repository { return m.p }
