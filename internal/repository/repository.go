package repository

import (
	"context"

	"film-server/planner/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgxpool.Pool / pgx.Tx the read repositories need.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SceneRepository is the read-only scene store.
type SceneRepository interface {
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]models.Scene, error)
}

// LocationRepository lists the named locations of a project, in declaration
// order. Slugline matching happens in the planner, not here.
type LocationRepository interface {
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]models.Location, error)
}

// CrewRepository is the read-only crew directory.
type CrewRepository interface {
	ListAssignedRoles(ctx context.Context, projectID uuid.UUID, categories []models.RoleCategory) ([]models.Role, error)
	ListCharacterAssignments(ctx context.Context, projectID uuid.UUID, characters []string) ([]models.CharacterAssignment, error)
}

// PlanRepository persists a finalized plan. ReplacePlan is a destructive
// replace-all write: existing shoot days of the project, their scene links and
// crew calls are removed in the same transaction that inserts the new plan.
type PlanRepository interface {
	ReplacePlan(ctx context.Context, projectID uuid.UUID, days []models.ProposedDay, calls [][]models.CrewCall) error
}
