package http

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/cptracker/internal/common"
	"github.com/dmitrijs2005/cptracker/internal/dbx"
	"github.com/dmitrijs2005/cptracker/internal/logging"
	"github.com/dmitrijs2005/cptracker/internal/server/config"
	"github.com/dmitrijs2005/cptracker/internal/server/models"
	goalsrepo "github.com/dmitrijs2005/cptracker/internal/server/repositories/goals"
	problemsrepo "github.com/dmitrijs2005/cptracker/internal/server/repositories/problems"
	usersrepo "github.com/dmitrijs2005/cptracker/internal/server/repositories/users"
	"github.com/dmitrijs2005/cptracker/internal/server/services"
)

const testSecret = "test-secret"

type fakeUsersRepo struct {
	users []*models.User

	createErr error
	updateErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.users = append(f.users, u)
	return u, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return f.find(func(u *models.User) bool { return u.ID == id })
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return f.find(func(u *models.User) bool { return u.Username == username })
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.find(func(u *models.User) bool { return u.Email == email })
}

func (f *fakeUsersRepo) Update(ctx context.Context, u *models.User) (*models.User, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for i, existing := range f.users {
		if existing.ID == u.ID {
			f.users[i] = u
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) find(match func(*models.User) bool) (*models.User, error) {
	for _, u := range f.users {
		if match(u) {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

type fakeGoalsRepo struct {
	goals []*models.Goal

	createErr error
}

func (f *fakeGoalsRepo) Create(ctx context.Context, g *models.Goal) (*models.Goal, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.goals = append(f.goals, g)
	return g, nil
}

func (f *fakeGoalsRepo) ListByUser(ctx context.Context, userID string) ([]*models.Goal, error) {
	out := []*models.Goal{}
	for _, g := range f.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGoalsRepo) GetByID(ctx context.Context, id, userID string) (*models.Goal, error) {
	for _, g := range f.goals {
		if g.ID == id && g.UserID == userID {
			return g, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeGoalsRepo) Update(ctx context.Context, g *models.Goal) (*models.Goal, error) {
	for i, existing := range f.goals {
		if existing.ID == g.ID && existing.UserID == g.UserID {
			f.goals[i] = g
			return g, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeGoalsRepo) Increment(ctx context.Context, id, userID string) (*models.Goal, error) {
	for _, g := range f.goals {
		if g.ID == id && g.UserID == userID {
			g.CurrentCount++
			return g, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeGoalsRepo) Delete(ctx context.Context, id, userID string) error {
	for i, g := range f.goals {
		if g.ID == id && g.UserID == userID {
			f.goals = append(f.goals[:i], f.goals[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

type fakeProblemsRepo struct {
	problems []*models.Problem

	listErr error
}

func (f *fakeProblemsRepo) Create(ctx context.Context, p *models.Problem) (*models.Problem, error) {
	f.problems = append(f.problems, p)
	return p, nil
}

func (f *fakeProblemsRepo) List(ctx context.Context) ([]*models.Problem, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.problems, nil
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

type testEnv struct {
	server *HTTPServer
	mock   sqlmock.Sqlmock
	users  *fakeUsersRepo
	goals  *fakeGoalsRepo
	probs  *fakeProblemsRepo
}

// newTestEnv wires an HTTPServer over in-memory repositories. The sqlmock
// handle only sees transaction boundaries; all statements go to the fakes.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	rm := &fakeRepoManager{u: &fakeUsersRepo{}, g: &fakeGoalsRepo{}, p: &fakeProblemsRepo{}}
	cfg := &config.Config{SecretKey: testSecret, TokenValidityDuration: time.Hour}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	us := services.NewUserService(db, rm, cfg)
	gs := services.NewGoalService(db, rm)
	ps := services.NewProblemService(db, rm)

	return &testEnv{
		server: NewHTTPServer(":0", logger, us, gs, ps, testSecret),
		mock:   mock,
		users:  rm.u,
		goals:  rm.g,
		probs:  rm.p,
	}
}
