package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"film-server/planner/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var _ PlanRepository = (*pgPlanRepository)(nil)

type pgPlanRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewPgPlanRepository creates the plan write store. It takes the pool rather
// than DBTX because ReplacePlan owns its transaction.
func NewPgPlanRepository(pool *pgxpool.Pool, logger *zap.Logger) PlanRepository {
	return &pgPlanRepository{
		pool:   pool,
		logger: logger.Named("PgPlanRepo"),
	}
}

const deleteShootDaysQuery = `DELETE FROM shoot_days WHERE project_id = $1`

const insertShootDayQuery = `
INSERT INTO shoot_days (id, project_id, shoot_date, call_time, good_weather, location_summary, forecast)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const insertShootDaySceneQuery = `
INSERT INTO shoot_day_scenes (shoot_day_id, scene_id, start_time, position)
VALUES ($1, $2, $3, $4)`

const insertCrewCallQuery = `
INSERT INTO crew_calls (shoot_day_id, role_id, call_time)
VALUES ($1, $2, $3)`

// ReplacePlan replaces the project's persisted shoot days with the supplied
// plan in one transaction. calls is parallel to days: calls[i] are the crew
// calls of days[i]. Scene links cascade-delete with their day.
func (r *pgPlanRepository) ReplacePlan(ctx context.Context, projectID uuid.UUID, days []models.ProposedDay, calls [][]models.CrewCall) error {
	if len(calls) != len(days) {
		return fmt.Errorf("crew call list length %d does not match day count %d", len(calls), len(days))
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin plan transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, deleteShootDaysQuery, projectID); err != nil {
		r.logger.Error("Failed to delete existing shoot days", zap.Error(err), zap.String("projectID", projectID.String()))
		return fmt.Errorf("failed to delete existing shoot days: %w", err)
	}

	for i, day := range days {
		dayID := uuid.New()

		var forecast []byte
		if day.Forecast != nil {
			forecast, err = json.Marshal(day.Forecast)
			if err != nil {
				return fmt.Errorf("failed to marshal forecast for day %d: %w", i, err)
			}
		}

		if _, err := tx.Exec(ctx, insertShootDayQuery,
			dayID, projectID, day.Date, day.CallTime, day.IsGoodWeather, day.LocationSummary, forecast,
		); err != nil {
			return fmt.Errorf("failed to insert shoot day %d: %w", i, err)
		}

		for pos, sc := range day.Scenes {
			if _, err := tx.Exec(ctx, insertShootDaySceneQuery, dayID, sc.ID, day.SceneTimes[pos], pos); err != nil {
				return fmt.Errorf("failed to insert scene link for day %d: %w", i, err)
			}
		}

		for _, call := range calls[i] {
			if _, err := tx.Exec(ctx, insertCrewCallQuery, dayID, call.RoleID, call.CallTime); err != nil {
				return fmt.Errorf("failed to insert crew call for day %d: %w", i, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit plan transaction: %w", err)
	}

	r.logger.Info("Shooting plan replaced",
		zap.String("projectID", projectID.String()),
		zap.Int("days", len(days)))
	return nil
}
