// Package seeder loads users, sectors and checklist templates from a YAML
// fixture into an empty or partially seeded database.
package seeder

import (
	"context"

	"github.com/heartmarshall/rondaflow-backend/internal/domain"
)

// UserRepo is implemented by user.Repo.
type UserRepo interface {
	Create(ctx context.Context, u domain.User) (*domain.User, error)
}

// SectorRepo is implemented by sector.Repo.
type SectorRepo interface {
	List(ctx context.Context) ([]domain.Sector, error)
	Create(ctx context.Context, s domain.Sector) (*domain.Sector, error)
}

// TemplateRepo is implemented by template.Repo.
type TemplateRepo interface {
	List(ctx context.Context) ([]domain.ChecklistTemplate, error)
	Create(ctx context.Context, tpl domain.ChecklistTemplate) (*domain.ChecklistTemplate, error)
}

// TxManager runs fn inside a database transaction.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Repos bundles the persistence the pipeline writes to.
type Repos struct {
	Users     UserRepo
	Sectors   SectorRepo
	Templates TemplateRepo
	Tx        TxManager
}
