package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"film-server/planner/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Compile-time check to ensure implementation satisfies the interface.
var _ SceneRepository = (*pgSceneRepository)(nil)

type pgSceneRepository struct {
	db     DBTX
	logger *zap.Logger
}

func NewPgSceneRepository(db DBTX, logger *zap.Logger) SceneRepository {
	return &pgSceneRepository{
		db:     db,
		logger: logger.Named("PgSceneRepo"),
	}
}

const listScenesQuery = `
SELECT id, project_id, scene_number, title, slugline, int_ext, day_night,
       estimated_minutes, priority, characters
FROM scenes
WHERE project_id = $1
ORDER BY scene_number, id`

// ListByProject loads all scenes of a project in a stable order. Duration and
// priority defaults are applied here so the planner core only ever sees
// normalized values.
func (r *pgSceneRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]models.Scene, error) {
	rows, err := r.db.Query(ctx, listScenesQuery, projectID)
	if err != nil {
		r.logger.Error("Failed to list scenes", zap.Error(err), zap.String("projectID", projectID.String()))
		return nil, fmt.Errorf("failed to list scenes for project %s: %w", projectID, err)
	}
	defer rows.Close()

	var scenes []models.Scene
	for rows.Next() {
		var (
			sc        models.Scene
			intExt    string
			dayNight  string
			estimated *int
			priority  *string
		)
		if err := rows.Scan(&sc.ID, &sc.ProjectID, &sc.SceneNumber, &sc.Title, &sc.Slugline,
			&intExt, &dayNight, &estimated, &priority, &sc.Characters); err != nil {
			return nil, fmt.Errorf("failed to scan scene row: %w", err)
		}
		sc.IntExt = models.ParseIntExt(intExt)
		sc.DayNight = models.ParseDayNight(dayNight)
		sc.EstimatedMinutes = models.DefaultSceneMinutes
		if estimated != nil && *estimated > 0 {
			sc.EstimatedMinutes = *estimated
		}
		sc.Priority = parsePriority(priority)
		scenes = append(scenes, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read scene rows: %w", err)
	}

	r.logger.Debug("Scenes listed", zap.String("projectID", projectID.String()), zap.Int("count", len(scenes)))
	return scenes, nil
}

// parsePriority interprets the free-form priority string the breakdown tool
// stores. Anything that does not parse as an integer counts as 0.
func parsePriority(raw *string) int {
	if raw == nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(*raw))
	if err != nil {
		return 0
	}
	return n
}
