// Package repomanager wires repository constructors to a database handle and
// owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/cptracker/internal/dbx"
	"github.com/dmitrijs2005/cptracker/internal/server/repositories/goals"
	"github.com/dmitrijs2005/cptracker/internal/server/repositories/problems"
	"github.com/dmitrijs2005/cptracker/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Goals(db dbx.DBTX) goals.Repository
	Problems(db dbx.DBTX) problems.Repository
}
