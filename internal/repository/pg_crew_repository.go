package repository

import (
	"context"
	"fmt"

	"film-server/planner/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var _ CrewRepository = (*pgCrewRepository)(nil)

type pgCrewRepository struct {
	db     DBTX
	logger *zap.Logger
}

func NewPgCrewRepository(db DBTX, logger *zap.Logger) CrewRepository {
	return &pgCrewRepository{
		db:     db,
		logger: logger.Named("PgCrewRepo"),
	}
}

const listAssignedRolesQuery = `
SELECT id, project_id, category, title, user_id
FROM crew_roles
WHERE project_id = $1 AND category = ANY($2) AND user_id IS NOT NULL
ORDER BY category, title, id`

// ListAssignedRoles returns the project's filled roles in the given
// categories. Unfilled positions are excluded: nobody can be called for them.
func (r *pgCrewRepository) ListAssignedRoles(ctx context.Context, projectID uuid.UUID, categories []models.RoleCategory) ([]models.Role, error) {
	cats := make([]string, len(categories))
	for i, c := range categories {
		cats[i] = string(c)
	}

	rows, err := r.db.Query(ctx, listAssignedRolesQuery, projectID, cats)
	if err != nil {
		r.logger.Error("Failed to list crew roles", zap.Error(err), zap.String("projectID", projectID.String()))
		return nil, fmt.Errorf("failed to list crew roles for project %s: %w", projectID, err)
	}
	defer rows.Close()

	var roles []models.Role
	for rows.Next() {
		var (
			role     models.Role
			category string
			userID   *uuid.UUID
		)
		if err := rows.Scan(&role.ID, &role.ProjectID, &category, &role.Title, &userID); err != nil {
			return nil, fmt.Errorf("failed to scan crew role row: %w", err)
		}
		role.Category = models.RoleCategory(category)
		if userID != nil {
			role.AssignedUserID = *userID
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read crew role rows: %w", err)
	}

	r.logger.Debug("Crew roles listed", zap.String("projectID", projectID.String()), zap.Int("count", len(roles)))
	return roles, nil
}

const listCharacterAssignmentsQuery = `
SELECT character_name, actor_user_id
FROM character_assignments
WHERE project_id = $1 AND character_name = ANY($2)`

// ListCharacterAssignments resolves character names to cast actors. Characters
// without an assignment are simply absent from the result.
func (r *pgCrewRepository) ListCharacterAssignments(ctx context.Context, projectID uuid.UUID, characters []string) ([]models.CharacterAssignment, error) {
	if len(characters) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, listCharacterAssignmentsQuery, projectID, characters)
	if err != nil {
		r.logger.Error("Failed to list character assignments", zap.Error(err), zap.String("projectID", projectID.String()))
		return nil, fmt.Errorf("failed to list character assignments for project %s: %w", projectID, err)
	}
	defer rows.Close()

	var assignments []models.CharacterAssignment
	for rows.Next() {
		var a models.CharacterAssignment
		if err := rows.Scan(&a.Character, &a.ActorUserID); err != nil {
			return nil, fmt.Errorf("failed to scan character assignment row: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read character assignment rows: %w", err)
	}

	return assignments, nil
}
