package repository

import (
	"context"
	"fmt"

	"film-server/planner/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var _ LocationRepository = (*pgLocationRepository)(nil)

type pgLocationRepository struct {
	db     DBTX
	logger *zap.Logger
}

func NewPgLocationRepository(db DBTX, logger *zap.Logger) LocationRepository {
	return &pgLocationRepository{
		db:     db,
		logger: logger.Named("PgLocationRepo"),
	}
}

const listLocationsQuery = `
SELECT id, project_id, name, address, city
FROM locations
WHERE project_id = $1
ORDER BY created_at, id`

// ListByProject returns the project's locations in declaration order, which
// the slugline matcher relies on for its first-match-wins rule.
func (r *pgLocationRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]models.Location, error) {
	rows, err := r.db.Query(ctx, listLocationsQuery, projectID)
	if err != nil {
		r.logger.Error("Failed to list locations", zap.Error(err), zap.String("projectID", projectID.String()))
		return nil, fmt.Errorf("failed to list locations for project %s: %w", projectID, err)
	}
	defer rows.Close()

	var locations []models.Location
	for rows.Next() {
		var loc models.Location
		if err := rows.Scan(&loc.ID, &loc.ProjectID, &loc.Name, &loc.Address, &loc.City); err != nil {
			return nil, fmt.Errorf("failed to scan location row: %w", err)
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read location rows: %w", err)
	}

	r.logger.Debug("Locations listed", zap.String("projectID", projectID.String()), zap.Int("count", len(locations)))
	return locations, nil
}
