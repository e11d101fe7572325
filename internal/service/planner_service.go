package service

import (
	"context"
	"fmt"
	"time"

	"film-server/planner/internal/messaging"
	"film-server/planner/internal/models"
	"film-server/planner/internal/planner"
	"film-server/planner/internal/repository"
	"film-server/planner/internal/weather"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PlannerService is the planner's application surface: a read-only preview
// and a destructive commit.
type PlannerService interface {
	// BuildPlan computes a draft shooting plan for a project. Side-effect-free
	// apart from outbound weather lookups, so it is safe to call repeatedly
	// for what-if previews.
	BuildPlan(ctx context.Context, projectID uuid.UUID, startDate time.Time) (*planner.PlanResult, error)
	// CommitPlan replaces the project's persisted shoot days with the given
	// plan and derives the crew calls for each day. All-or-nothing.
	CommitPlan(ctx context.Context, projectID uuid.UUID, days []models.ProposedDay) error
}

var _ PlannerService = (*plannerService)(nil)

type plannerService struct {
	scenes    repository.SceneRepository
	locations repository.LocationRepository
	crew      repository.CrewRepository
	plans     repository.PlanRepository
	oracle    weather.Oracle
	publisher messaging.PlanEventPublisher
	strategy  planner.Strategy
	logger    *zap.Logger
}

func NewPlannerService(
	scenes repository.SceneRepository,
	locations repository.LocationRepository,
	crew repository.CrewRepository,
	plans repository.PlanRepository,
	oracle weather.Oracle,
	publisher messaging.PlanEventPublisher,
	logger *zap.Logger,
) PlannerService {
	return &plannerService{
		scenes:    scenes,
		locations: locations,
		crew:      crew,
		plans:     plans,
		oracle:    oracle,
		publisher: publisher,
		strategy:  planner.GreedyScorer{},
		logger:    logger.Named("PlannerService"),
	}
}

func (s *plannerService) BuildPlan(ctx context.Context, projectID uuid.UUID, startDate time.Time) (*planner.PlanResult, error) {
	scenes, err := s.scenes.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load scenes: %w", err)
	}
	if len(scenes) == 0 {
		return nil, models.ErrNothingToPlan
	}

	locations, err := s.locations.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load locations: %w", err)
	}

	index := planner.NewLocationIndex(locations)
	gate := weather.NewGate(s.oracle, locations, s.logger)
	driver := planner.NewDriver(s.strategy, gate, index, s.logger)

	result := driver.Plan(ctx, scenes, startDate)

	s.logger.Info("Plan built",
		zap.String("projectID", projectID.String()),
		zap.Int("scenes", len(scenes)),
		zap.Int("days", len(result.Days)),
		zap.Int("unplanned", len(result.UnplannedScenes)))
	return result, nil
}

func (s *plannerService) CommitPlan(ctx context.Context, projectID uuid.UUID, days []models.ProposedDay) error {
	if len(days) == 0 {
		return models.ErrEmptyPlan
	}

	scenes, err := s.scenes.ListByProject(ctx, projectID)
	if err != nil {
		return fmt.Errorf("failed to load scenes: %w", err)
	}
	byID := make(map[uuid.UUID]models.Scene, len(scenes))
	for _, sc := range scenes {
		byID[sc.ID] = sc
	}

	// Rehydrate: commit payloads carry scene ids and times, not full scenes.
	// Crew derivation needs the character lists, so each day's scenes are
	// replaced with the project's own records.
	for i := range days {
		if len(days[i].Scenes) != len(days[i].SceneTimes) {
			return fmt.Errorf("day %d has %d scenes but %d scene times: %w",
				i, len(days[i].Scenes), len(days[i].SceneTimes), models.ErrInvalidPlan)
		}
		for j, sc := range days[i].Scenes {
			full, ok := byID[sc.ID]
			if !ok {
				return fmt.Errorf("day %d scene %s: %w", i, sc.ID, models.ErrUnknownScene)
			}
			days[i].Scenes[j] = full
		}
	}

	categories := append(models.AlwaysCalledCategories(), models.RoleCategoryActor)
	roles, err := s.crew.ListAssignedRoles(ctx, projectID, categories)
	if err != nil {
		return fmt.Errorf("failed to load crew roles: %w", err)
	}

	characters := collectCharacters(days)
	var assignments []models.CharacterAssignment
	if len(characters) > 0 {
		assignments, err = s.crew.ListCharacterAssignments(ctx, projectID, characters)
		if err != nil {
			return fmt.Errorf("failed to load character assignments: %w", err)
		}
	}

	calls := planner.DeriveCrewCalls(days, roles, assignments)

	if err := s.plans.ReplacePlan(ctx, projectID, days, calls); err != nil {
		return fmt.Errorf("failed to persist plan: %w", err)
	}

	event := messaging.PlanCommittedEvent{
		ProjectID:   projectID,
		DayCount:    len(days),
		FirstDay:    days[0].Date.Format("2006-01-02"),
		LastDay:     days[len(days)-1].Date.Format("2006-01-02"),
		CommittedAt: time.Now(),
	}
	if err := s.publisher.PublishPlanCommitted(ctx, event); err != nil {
		// The plan is already persisted; a lost event only delays
		// notifications, so it does not fail the commit.
		s.logger.Warn("Failed to publish plan committed event",
			zap.Error(err), zap.String("projectID", projectID.String()))
	}

	s.logger.Info("Plan committed",
		zap.String("projectID", projectID.String()),
		zap.Int("days", len(days)))
	return nil
}

func collectCharacters(days []models.ProposedDay) []string {
	seen := make(map[string]struct{})
	var out []string
	for i := range days {
		for _, ch := range days[i].Characters() {
			if _, ok := seen[ch]; ok {
				continue
			}
			seen[ch] = struct{}{}
			out = append(out, ch)
		}
	}
	return out
}
